package service

import (
	"blogicum/internal/models"
	"blogicum/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = repository.ErrNotFound
	ErrForbidden    = errors.New("доступ запрещен")
	ErrUnauthorized = errors.New("требуется аутентификация")
	ErrInvalidPage  = errors.New("неверный номер страницы")
)

// Viewer is the identity a request is served for. The zero value is an
// anonymous visitor.
type Viewer struct {
	UserID   string
	Username string
	Role     string
}

func (v Viewer) IsAuthenticated() bool {
	return v.UserID != ""
}

func (v Viewer) IsAdmin() bool {
	return v.IsAuthenticated() && v.Role == models.RoleAdmin
}

type viewerKey struct{}

func WithViewer(ctx context.Context, viewer Viewer) context.Context {
	return context.WithValue(ctx, viewerKey{}, viewer)
}

func ViewerFromContext(ctx context.Context) Viewer {
	viewer, _ := ctx.Value(viewerKey{}).(Viewer)
	return viewer
}

// CanModify reports whether viewer may edit or delete an entity written by
// authorID.
func CanModify(viewer Viewer, authorID string) bool {
	return viewer.IsAuthenticated() && viewer.UserID == authorID
}

// IsVisible reports whether post is published as of now: its own flag,
// its category's flag and a publication date that has come.
func IsVisible(post *models.Post, now time.Time) bool {
	if post == nil || !post.IsPublished {
		return false
	}
	if post.CategoryIsPublished == nil || !*post.CategoryIsPublished {
		return false
	}
	return !post.PubDate.After(now)
}

// CanView reports whether viewer may open post: authors always see their
// own posts, everybody else only published ones.
func CanView(viewer Viewer, post *models.Post, now time.Time) bool {
	return CanModify(viewer, post.AuthorID) || IsVisible(post, now)
}

func PublishedFilter(now time.Time) repository.PostFilter {
	return repository.PostFilter{PublishedAt: &now}
}

func CategoryFilter(categoryID string, now time.Time) repository.PostFilter {
	filter := PublishedFilter(now)
	filter.CategoryID = categoryID
	return filter
}

// ProfileFilter selects the posts of owner that viewer may list.
func ProfileFilter(viewer Viewer, owner *models.User, now time.Time) repository.PostFilter {
	if CanModify(viewer, owner.UserID) {
		return repository.PostFilter{AuthorID: owner.UserID}
	}

	filter := PublishedFilter(now)
	filter.AuthorID = owner.UserID
	return filter
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
