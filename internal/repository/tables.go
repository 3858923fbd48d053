package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// blogTables is fixed so the names can be interpolated into SQL safely.
var blogTables = []string{"users", "categories", "locations", "posts", "comments"}

type tablesRepository struct {
	db *sqlx.DB
}

func NewTablesRepository(db *sqlx.DB) TablesRepository {
	return &tablesRepository{db: db}
}

func (r *tablesRepository) CountRows(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(blogTables))

	for _, table := range blogTables {
		var count int
		if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM `+table); err != nil {
			return nil, fmt.Errorf("ошибка при подсчёте строк таблицы %s: %w", table, err)
		}
		counts[table] = count
	}

	return counts, nil
}
