// Package repository holds the gorm queries behind the site's pages. Lookups
// return apperror.ErrNotFound instead of gorm.ErrRecordNotFound so controllers
// can map it to a 404 without knowing about the ORM.
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cppla/blogsite/apperror"
)

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Page selects a window of a listing. A zero Size means no limit.
type Page struct {
	Number int
	Size   int
}

func (p Page) apply(q *gorm.DB) *gorm.DB {
	if p.Size <= 0 {
		return q
	}
	n := p.Number
	if n < 1 {
		n = 1
	}
	return q.Offset((n - 1) * p.Size).Limit(p.Size)
}

func lookupErr(err error, resource string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(resource, id)
	}
	return fmt.Errorf("load %s %v: %w", resource, id, err)
}
