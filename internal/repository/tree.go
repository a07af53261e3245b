package repository

import (
	"context"

	"gorm.io/gorm"

	"menuapp/models"
)

// Tree loads every menu with its submenus and their dishes.
func (r *Repository) Tree(ctx context.Context) ([]models.Menu, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	menus := []models.Menu{}
	err = db.
		Preload("Submenus", func(tx *gorm.DB) *gorm.DB { return tx.Order("submenus.title") }).
		Preload("Submenus.Dishes", func(tx *gorm.DB) *gorm.DB { return tx.Order("dishes.title") }).
		Order("menus.title").
		Find(&menus).Error
	if err != nil {
		return nil, translate(entityMenu, err)
	}
	return menus, nil
}
