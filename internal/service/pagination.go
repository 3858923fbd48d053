package service

import (
	"blogicum/internal/models"
	"fmt"
)

type PostPage struct {
	Posts      []models.Post `json:"posts"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	Total      int           `json:"total"`
	TotalPages int           `json:"totalPages"`
}

// pageOffset validates page against the listing size. Page 1 always
// exists, even for an empty listing.
func pageOffset(page, limit, total int) (int, int, error) {
	totalPages := (total + limit - 1) / limit
	if page < 1 || (page > totalPages && page != 1) {
		return 0, totalPages, fmt.Errorf("страница %d: %w", page, ErrInvalidPage)
	}
	return (page - 1) * limit, totalPages, nil
}
