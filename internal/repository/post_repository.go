package repository

import (
	"blogicum/internal/models"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

// PostFilter narrows a post listing. Empty fields do not filter. When
// PublishedAt is set only posts published as of that moment match: the
// post and its category are published and pub_date is not later than it.
type PostFilter struct {
	AuthorID    string
	CategoryID  string
	PublishedAt *time.Time
}

func (f PostFilter) where() (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if f.AuthorID != "" {
		args = append(args, f.AuthorID)
		conditions = append(conditions, fmt.Sprintf("p.author_id = $%d", len(args)))
	}

	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		conditions = append(conditions, fmt.Sprintf("p.category_id = $%d", len(args)))
	}

	if f.PublishedAt != nil {
		args = append(args, *f.PublishedAt)
		conditions = append(conditions,
			"p.is_published = TRUE",
			"c.is_published = TRUE",
			fmt.Sprintf("p.pub_date <= $%d", len(args)),
		)
	}

	if len(conditions) == 0 {
		return "", args
	}

	return "\n\tWHERE " + strings.Join(conditions, " AND "), args
}

const postSelect = `
	SELECT p.post_id, p.title, p.text, p.pub_date, p.image, p.is_published,
		p.author_id, p.location_id, p.category_id, p.created_at,
		u.username AS author_username,
		c.title AS category_title,
		c.slug AS category_slug,
		c.is_published AS category_is_published,
		l.name AS location_name,
		COUNT(cm.comment_id) AS comment_count
	FROM posts p
	JOIN users u ON u.user_id = p.author_id
	LEFT JOIN categories c ON c.category_id = p.category_id
	LEFT JOIN locations l ON l.location_id = p.location_id
	LEFT JOIN comments cm ON cm.post_id = p.post_id`

const postGroupBy = `
	GROUP BY p.post_id, u.username, c.title, c.slug, c.is_published, l.name`

const postOrderBy = `
	ORDER BY p.pub_date DESC, p.title ASC`

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts
		(post_id, title, text, pub_date, image, is_published, author_id, location_id, category_id, created_at)
		VALUES
		(:post_id, :title, :text, :pub_date, :image, :is_published, :author_id, :location_id, :category_id, :created_at)
	`

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	post.CreatedAt = time.Now()

	if _, err := r.DB.NamedExecContext(ctx, query, post); err != nil {
		return wrapError("ошибка при создании поста", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := postSelect + `
	WHERE p.post_id = $1` + postGroupBy

	var post models.Post
	err := r.DB.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %s: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

// List returns one page of the posts matching filter, newest publication
// date first and title ascending on ties, each with its comment count.
func (r *PostRepositoryImpl) List(ctx context.Context, filter PostFilter, limit, offset int) ([]models.Post, error) {
	where, args := filter.where()
	args = append(args, limit, offset)

	query := postSelect + where + postGroupBy + postOrderBy +
		fmt.Sprintf("\n\tLIMIT $%d OFFSET $%d", len(args)-1, len(args))

	posts := []models.Post{}
	if err := r.DB.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Count(ctx context.Context, filter PostFilter) (int, error) {
	where, args := filter.where()

	query := `
	SELECT COUNT(*)
	FROM posts p
	LEFT JOIN categories c ON c.category_id = p.category_id` + where

	var count int
	if err := r.DB.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов: %w", err)
	}

	return count, nil
}

// Update rewrites the editable fields. The author is part of the match so
// a post owned by someone else reports ErrNotFound.
func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			title = :title,
			text = :text,
			pub_date = :pub_date,
			is_published = :is_published,
			location_id = :location_id,
			category_id = :category_id
		WHERE post_id = :post_id AND author_id = :author_id
	`

	result, err := r.DB.NamedExecContext(ctx, query, post)
	if err != nil {
		return wrapError("ошибка при обновлении поста", err)
	}

	return checkAffected(result, "пост не найден или у вас нет прав на его изменение")
}

func (r *PostRepositoryImpl) UpdateImage(ctx context.Context, postID, authorID, image string) error {
	query := `UPDATE posts SET image = $1 WHERE post_id = $2 AND author_id = $3`

	result, err := r.DB.ExecContext(ctx, query, image, postID, authorID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении изображения поста: %w", err)
	}

	return checkAffected(result, "пост не найден или у вас нет прав на его изменение")
}

// Delete removes the post; its comments go with it through the foreign key.
func (r *PostRepositoryImpl) Delete(ctx context.Context, postID, authorID string) error {
	query := `DELETE FROM posts WHERE post_id = $1 AND author_id = $2`

	result, err := r.DB.ExecContext(ctx, query, postID, authorID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	return checkAffected(result, "пост не найден или у вас нет прав на его удаление")
}
