package models

import (
	"time"
)

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Username               string    `json:"username" db:"username"`
	FirstName              string    `json:"firstName" db:"first_name"`
	LastName               string    `json:"lastName" db:"last_name"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	Role                   string    `json:"role" db:"role"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
}

type Category struct {
	CategoryID  string    `json:"categoryId" db:"category_id"`
	Title       string    `json:"title" db:"title"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description" db:"description"`
	IsPublished bool      `json:"isPublished" db:"is_published"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Location struct {
	LocationID  string    `json:"locationId" db:"location_id"`
	Name        string    `json:"name" db:"name"`
	IsPublished bool      `json:"isPublished" db:"is_published"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Post is a row of posts. The fields after CreatedAt are filled by joins
// when the post is read and are never written back.
type Post struct {
	PostID      string    `json:"postId" db:"post_id"`
	Title       string    `json:"title" db:"title"`
	Text        string    `json:"text" db:"text"`
	PubDate     time.Time `json:"pubDate" db:"pub_date"`
	Image       string    `json:"image" db:"image"`
	IsPublished bool      `json:"isPublished" db:"is_published"`
	AuthorID    string    `json:"authorId" db:"author_id"`
	LocationID  *string   `json:"locationId" db:"location_id"`
	CategoryID  *string   `json:"categoryId" db:"category_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	AuthorUsername      string  `json:"authorUsername" db:"author_username"`
	CategoryTitle       *string `json:"categoryTitle" db:"category_title"`
	CategorySlug        *string `json:"categorySlug" db:"category_slug"`
	CategoryIsPublished *bool   `json:"-" db:"category_is_published"`
	LocationName        *string `json:"locationName" db:"location_name"`
	CommentCount        int     `json:"commentCount" db:"comment_count"`
}

type Comment struct {
	CommentID      string    `json:"commentId" db:"comment_id"`
	Text           string    `json:"text" db:"text"`
	PostID         string    `json:"postId" db:"post_id"`
	AuthorID       string    `json:"authorId" db:"author_id"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	AuthorUsername string    `json:"authorUsername" db:"author_username"`
}
