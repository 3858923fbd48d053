package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrNotFound         = errors.New("не найдено")
	ErrConflict         = errors.New("запись уже существует")
	ErrInvalidReference = errors.New("ссылка на несуществующую запись")
)

// PostgreSQL error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// wrapError attaches the action to err and maps constraint violations
// onto the package sentinels.
func wrapError(action string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%s: %w", action, ErrConflict)
		case pqForeignKeyViolation:
			return fmt.Errorf("%s: %w", action, ErrInvalidReference)
		}
	}
	return fmt.Errorf("%s: %w", action, err)
}

func checkAffected(result interface{ RowsAffected() (int64, error) }, what string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}

	return nil
}
