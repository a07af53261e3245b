package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"menuapp/models"
)

// SubmenuSummary is a submenu with its live dish count.
type SubmenuSummary struct {
	ID          uuid.UUID
	Title       string
	Description string
	MenuID      uuid.UUID
	DishesCount int64
}

// SubmenuPatch holds the fields of a partial submenu update.
type SubmenuPatch struct {
	Title       *string
	Description *string
}

func submenuSummaries(db *gorm.DB, menuID uuid.UUID) *gorm.DB {
	return db.Model(&models.Submenu{}).
		Select("submenus.id, submenus.title, submenus.description, submenus.menu_id, COUNT(dishes.id) AS dishes_count").
		Joins("LEFT JOIN dishes ON dishes.submenu_id = submenus.id").
		Where("submenus.menu_id = ?", menuID).
		Group("submenus.id, submenus.title, submenus.description, submenus.menu_id")
}

func (r *Repository) ListSubmenus(ctx context.Context, menuID uuid.UUID) ([]SubmenuSummary, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	summaries := []SubmenuSummary{}
	if err := submenuSummaries(db, menuID).Order("submenus.title").Scan(&summaries).Error; err != nil {
		return nil, translate(entitySubmenu, err)
	}
	return summaries, nil
}

func (r *Repository) GetSubmenu(ctx context.Context, menuID, id uuid.UUID) (SubmenuSummary, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return SubmenuSummary{}, err
	}

	var summary SubmenuSummary
	res := submenuSummaries(db, menuID).Where("submenus.id = ?", id).Scan(&summary)
	if res.Error != nil {
		return SubmenuSummary{}, translate(entitySubmenu, res.Error)
	}
	if res.RowsAffected == 0 {
		return SubmenuSummary{}, &NotFoundError{Entity: entitySubmenu}
	}
	return summary, nil
}

// CreateSubmenu attaches a new submenu to an existing menu.
func (r *Repository) CreateSubmenu(ctx context.Context, menuID uuid.UUID, submenu *models.Submenu) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Menu{}).Where("id = ?", menuID).Count(&count).Error; err != nil {
			return translate(entityMenu, err)
		}
		if count == 0 {
			return &NotFoundError{Entity: entityMenu}
		}
		submenu.MenuID = menuID
		return translate(entitySubmenu, tx.Omit("Dishes").Create(submenu).Error)
	})
}

func (r *Repository) UpdateSubmenu(ctx context.Context, menuID, id uuid.UUID, patch SubmenuPatch) (SubmenuSummary, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return SubmenuSummary{}, err
	}

	var submenu models.Submenu
	if err := db.Take(&submenu, "id = ? AND menu_id = ?", id, menuID).Error; err != nil {
		return SubmenuSummary{}, translate(entitySubmenu, err)
	}

	if updates := changes(patch.Title, patch.Description); len(updates) > 0 {
		if err := db.Model(&submenu).Updates(updates).Error; err != nil {
			return SubmenuSummary{}, translate(entitySubmenu, err)
		}
	}
	return r.GetSubmenu(ctx, menuID, id)
}

// DeleteSubmenu removes the submenu and its dishes.
func (r *Repository) DeleteSubmenu(ctx context.Context, menuID, id uuid.UUID) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Submenu{}).Where("id = ? AND menu_id = ?", id, menuID).Count(&count).Error; err != nil {
			return translate(entitySubmenu, err)
		}
		if count == 0 {
			return &NotFoundError{Entity: entitySubmenu}
		}
		if err := tx.Where("submenu_id = ?", id).Delete(&models.Dish{}).Error; err != nil {
			return translate(entityDish, err)
		}
		return translate(entitySubmenu, tx.Where("id = ?", id).Delete(&models.Submenu{}).Error)
	})
}
