package domain

import (
	"context"
	"errors"
)

var ErrCategoryNotFound = errors.New("category not found")

// Category groups questions under a label such as "Science"
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryRepository defines read access to categories
type CategoryRepository interface {
	// List retrieves every category ordered by id
	List(ctx context.Context) ([]Category, error)

	// GetByID retrieves a category by its ID
	GetByID(ctx context.Context, id int) (*Category, error)
}

// CategoryTypes returns the labels of categories in order
func CategoryTypes(categories []Category) []string {
	types := make([]string, 0, len(categories))
	for _, c := range categories {
		types = append(types, c.Type)
	}
	return types
}

// CategoryMap indexes category labels by id
func CategoryMap(categories []Category) map[int]string {
	m := make(map[int]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
