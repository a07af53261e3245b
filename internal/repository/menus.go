package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"menuapp/models"
)

// MenuSummary is a menu with counts computed from the live rows.
type MenuSummary struct {
	ID            uuid.UUID
	Title         string
	Description   string
	SubmenusCount int64
	DishesCount   int64
}

// MenuPatch holds the fields of a partial menu update.
type MenuPatch struct {
	Title       *string
	Description *string
}

func menuSummaries(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Menu{}).
		Select("menus.id, menus.title, menus.description, " +
			"COUNT(DISTINCT submenus.id) AS submenus_count, COUNT(dishes.id) AS dishes_count").
		Joins("LEFT JOIN submenus ON submenus.menu_id = menus.id").
		Joins("LEFT JOIN dishes ON dishes.submenu_id = submenus.id").
		Group("menus.id, menus.title, menus.description")
}

func (r *Repository) ListMenus(ctx context.Context) ([]MenuSummary, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	summaries := []MenuSummary{}
	if err := menuSummaries(db).Order("menus.title").Scan(&summaries).Error; err != nil {
		return nil, translate(entityMenu, err)
	}
	return summaries, nil
}

func (r *Repository) GetMenu(ctx context.Context, id uuid.UUID) (MenuSummary, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return MenuSummary{}, err
	}

	var summary MenuSummary
	res := menuSummaries(db).Where("menus.id = ?", id).Scan(&summary)
	if res.Error != nil {
		return MenuSummary{}, translate(entityMenu, res.Error)
	}
	if res.RowsAffected == 0 {
		return MenuSummary{}, &NotFoundError{Entity: entityMenu}
	}
	return summary, nil
}

func (r *Repository) CreateMenu(ctx context.Context, menu *models.Menu) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}
	return translate(entityMenu, db.Omit("Submenus").Create(menu).Error)
}

func (r *Repository) UpdateMenu(ctx context.Context, id uuid.UUID, patch MenuPatch) (MenuSummary, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return MenuSummary{}, err
	}

	var menu models.Menu
	if err := db.Take(&menu, "id = ?", id).Error; err != nil {
		return MenuSummary{}, translate(entityMenu, err)
	}

	if updates := changes(patch.Title, patch.Description); len(updates) > 0 {
		if err := db.Model(&menu).Updates(updates).Error; err != nil {
			return MenuSummary{}, translate(entityMenu, err)
		}
	}
	return r.GetMenu(ctx, id)
}

// DeleteMenu removes the menu together with its submenus and their dishes.
func (r *Repository) DeleteMenu(ctx context.Context, id uuid.UUID) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		submenuIDs := tx.Model(&models.Submenu{}).Select("id").Where("menu_id = ?", id)
		if err := tx.Where("submenu_id IN (?)", submenuIDs).Delete(&models.Dish{}).Error; err != nil {
			return translate(entityDish, err)
		}
		if err := tx.Where("menu_id = ?", id).Delete(&models.Submenu{}).Error; err != nil {
			return translate(entitySubmenu, err)
		}
		res := tx.Where("id = ?", id).Delete(&models.Menu{})
		if res.Error != nil {
			return translate(entityMenu, res.Error)
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Entity: entityMenu}
		}
		return nil
	})
}
