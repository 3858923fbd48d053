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

type categoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (category_id, title, slug, description, is_published, created_at)
		VALUES (:category_id, :title, :slug, :description, :is_published, :created_at)
	`

	if category.CategoryID == "" {
		category.CategoryID = uuid.New().String()
	}

	category.CreatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, category); err != nil {
		return wrapError("ошибка при создании категории", err)
	}

	return nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	query := `
		SELECT category_id, title, slug, description, is_published, created_at
		FROM categories
		WHERE slug = $1
	`

	var category models.Category
	err := r.db.GetContext(ctx, &category, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("категория %s: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении категории: %w", err)
	}

	return &category, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	query := `
		UPDATE categories SET
			title = :title,
			slug = :slug,
			description = :description,
			is_published = :is_published
		WHERE category_id = :category_id
	`

	result, err := r.db.NamedExecContext(ctx, query, category)
	if err != nil {
		return wrapError("ошибка при обновлении категории", err)
	}

	return checkAffected(result, "категория не найдена")
}

// Delete removes the category. Its posts stay and lose the reference
// through ON DELETE SET NULL.
func (r *categoryRepository) Delete(ctx context.Context, slug string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE slug = $1`, slug)
	if err != nil {
		return fmt.Errorf("ошибка при удалении категории: %w", err)
	}

	return checkAffected(result, "категория не найдена")
}
