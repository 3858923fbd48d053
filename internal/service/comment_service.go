package service

import (
	"blogicum/internal/models"
	"blogicum/internal/repository"
	"context"
	"fmt"
	"time"
)

type CommentService interface {
	AddComment(ctx context.Context, viewer Viewer, postID, text string) (*models.Comment, error)
	UpdateComment(ctx context.Context, viewer Viewer, postID, commentID, text string) (*models.Comment, error)
	DeleteComment(ctx context.Context, viewer Viewer, postID, commentID string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	now         func() time.Time
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		now:         time.Now,
	}
}

// AddComment stores a comment of viewer under a post the viewer can see.
// Author and post come from the caller's identity and the route only.
func (c *commentService) AddComment(ctx context.Context, viewer Viewer, postID, text string) (*models.Comment, error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrUnauthorized
	}

	if !validID(postID) {
		return nil, fmt.Errorf("пост с ID %s: %w", postID, ErrNotFound)
	}

	post, err := c.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !CanView(viewer, post, c.now()) {
		return nil, fmt.Errorf("пост с ID %s: %w", postID, ErrNotFound)
	}

	comment := &models.Comment{
		Text:           text,
		PostID:         post.PostID,
		AuthorID:       viewer.UserID,
		AuthorUsername: viewer.Username,
	}

	if err := c.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (c *commentService) ownComment(ctx context.Context, viewer Viewer, postID, commentID string) (*models.Comment, error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrUnauthorized
	}

	if !validID(commentID) {
		return nil, fmt.Errorf("комментарий с ID %s: %w", commentID, ErrNotFound)
	}

	comment, err := c.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if comment.PostID != postID {
		return nil, fmt.Errorf("комментарий с ID %s: %w", commentID, ErrNotFound)
	}

	if !CanModify(viewer, comment.AuthorID) {
		return nil, fmt.Errorf("комментарий с ID %s: %w", commentID, ErrForbidden)
	}

	return comment, nil
}

func (c *commentService) UpdateComment(ctx context.Context, viewer Viewer, postID, commentID, text string) (*models.Comment, error) {
	comment, err := c.ownComment(ctx, viewer, postID, commentID)
	if err != nil {
		return nil, err
	}

	comment.Text = text

	if err := c.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (c *commentService) DeleteComment(ctx context.Context, viewer Viewer, postID, commentID string) error {
	comment, err := c.ownComment(ctx, viewer, postID, commentID)
	if err != nil {
		return err
	}

	return c.commentRepo.Delete(ctx, comment.CommentID, viewer.UserID)
}
