package repository

import (
	"blogicum/internal/models"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

const commentSelect = `
	SELECT cm.comment_id, cm.text, cm.post_id, cm.author_id, cm.created_at,
		u.username AS author_username
	FROM comments cm
	JOIN users u ON u.user_id = cm.author_id`

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (comment_id, text, post_id, author_id, created_at)
		VALUES (:comment_id, :text, :post_id, :author_id, :created_at)
	`

	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}

	comment.CreatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, comment); err != nil {
		return wrapError("ошибка при создании комментария", err)
	}

	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	query := commentSelect + `
	WHERE cm.comment_id = $1`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("комментарий с ID %s: %w", commentID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении комментария: %w", err)
	}

	return &comment, nil
}

// ListByPost returns the comments of a post, oldest first.
func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	query := commentSelect + `
	WHERE cm.post_id = $1
	ORDER BY cm.created_at`

	comments := []models.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, postID); err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	query := `
		UPDATE comments SET text = :text
		WHERE comment_id = :comment_id AND author_id = :author_id
	`

	result, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении комментария: %w", err)
	}

	return checkAffected(result, "комментарий не найден или у вас нет прав на его изменение")
}

func (r *commentRepository) Delete(ctx context.Context, commentID, authorID string) error {
	query := `DELETE FROM comments WHERE comment_id = $1 AND author_id = $2`

	result, err := r.db.ExecContext(ctx, query, commentID, authorID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментария: %w", err)
	}

	return checkAffected(result, "комментарий не найден или у вас нет прав на его удаление")
}
