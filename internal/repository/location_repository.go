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

type locationRepository struct {
	db *sqlx.DB
}

func NewLocationRepository(db *sqlx.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, location *models.Location) error {
	query := `
		INSERT INTO locations (location_id, name, is_published, created_at)
		VALUES (:location_id, :name, :is_published, :created_at)
	`

	if location.LocationID == "" {
		location.LocationID = uuid.New().String()
	}

	location.CreatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, location); err != nil {
		return wrapError("ошибка при создании местоположения", err)
	}

	return nil
}

func (r *locationRepository) GetByID(ctx context.Context, locationID string) (*models.Location, error) {
	query := `SELECT location_id, name, is_published, created_at FROM locations WHERE location_id = $1`

	var location models.Location
	err := r.db.GetContext(ctx, &location, query, locationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("местоположение %s: %w", locationID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении местоположения: %w", err)
	}

	return &location, nil
}

func (r *locationRepository) Update(ctx context.Context, location *models.Location) error {
	query := `
		UPDATE locations SET name = :name, is_published = :is_published
		WHERE location_id = :location_id
	`

	result, err := r.db.NamedExecContext(ctx, query, location)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении местоположения: %w", err)
	}

	return checkAffected(result, "местоположение не найдено")
}

func (r *locationRepository) Delete(ctx context.Context, locationID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE location_id = $1`, locationID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении местоположения: %w", err)
	}

	return checkAffected(result, "местоположение не найдено")
}
