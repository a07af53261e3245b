// Package repository runs the gorm queries behind the menu API.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateTitle = errors.New("duplicate title")
)

// NotFoundError reports which entity of the hierarchy is missing.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicateTitleError is returned when a title collides within its table.
type DuplicateTitleError struct {
	Entity string
}

func (e *DuplicateTitleError) Error() string {
	return e.Entity + " with this title already exists"
}

func (e *DuplicateTitleError) Is(target error) bool {
	return target == ErrDuplicateTitle
}

const (
	entityMenu    = "menu"
	entitySubmenu = "submenu"
	entityDish    = "dish"
)

// Repository wraps the gorm handle shared by all entities.
type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) conn(ctx context.Context) (*gorm.DB, error) {
	if r == nil || r.db == nil {
		return nil, gorm.ErrInvalidDB
	}
	return r.db.WithContext(ctx), nil
}

func translate(entity string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &DuplicateTitleError{Entity: entity}
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &NotFoundError{Entity: entity}
	default:
		return fmt.Errorf("%s query: %w", entity, err)
	}
}

// changes collects the non-nil fields of a partial update.
func changes(title, description *string) map[string]any {
	updates := map[string]any{}
	if title != nil {
		updates["title"] = *title
	}
	if description != nil {
		updates["description"] = *description
	}
	return updates
}
