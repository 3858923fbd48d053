package service

import (
	"blogicum/internal/repository"
	"context"
)

type TablesService interface {
	CountRows(ctx context.Context) (map[string]int, error)
}

type tablesService struct {
	tablesRepo repository.TablesRepository
}

func NewTablesService(tablesRepo repository.TablesRepository) TablesService {
	return &tablesService{tablesRepo: tablesRepo}
}

func (t *tablesService) CountRows(ctx context.Context) (map[string]int, error) {
	return t.tablesRepo.CountRows(ctx)
}
