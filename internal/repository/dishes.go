package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"menuapp/models"
)

// DishPatch holds the fields of a partial dish update.
type DishPatch struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
	Discount    *int
}

// dishesOf scopes the dishes table to one submenu of one menu.
func dishesOf(db *gorm.DB, menuID, submenuID uuid.UUID) *gorm.DB {
	return db.Model(&models.Dish{}).
		Joins("JOIN submenus ON submenus.id = dishes.submenu_id").
		Where("dishes.submenu_id = ? AND submenus.menu_id = ?", submenuID, menuID)
}

func (r *Repository) ListDishes(ctx context.Context, menuID, submenuID uuid.UUID) ([]models.Dish, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	dishes := []models.Dish{}
	if err := dishesOf(db, menuID, submenuID).Order("dishes.title").Find(&dishes).Error; err != nil {
		return nil, translate(entityDish, err)
	}
	return dishes, nil
}

func (r *Repository) GetDish(ctx context.Context, menuID, submenuID, id uuid.UUID) (models.Dish, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return models.Dish{}, err
	}

	var dish models.Dish
	if err := dishesOf(db, menuID, submenuID).Where("dishes.id = ?", id).Take(&dish).Error; err != nil {
		return models.Dish{}, translate(entityDish, err)
	}
	return dish, nil
}

// CreateDish attaches a new dish to a submenu of the given menu.
func (r *Repository) CreateDish(ctx context.Context, menuID, submenuID uuid.UUID, dish *models.Dish) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Submenu{}).Where("id = ? AND menu_id = ?", submenuID, menuID).Count(&count).Error; err != nil {
			return translate(entitySubmenu, err)
		}
		if count == 0 {
			return &NotFoundError{Entity: entitySubmenu}
		}
		dish.SubmenuID = submenuID
		return translate(entityDish, tx.Create(dish).Error)
	})
}

func (r *Repository) UpdateDish(ctx context.Context, menuID, submenuID, id uuid.UUID, patch DishPatch) (models.Dish, error) {
	dish, err := r.GetDish(ctx, menuID, submenuID, id)
	if err != nil {
		return models.Dish{}, err
	}

	updates := changes(patch.Title, patch.Description)
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Discount != nil {
		updates["discount"] = *patch.Discount
	}
	if len(updates) == 0 {
		return dish, nil
	}

	db, err := r.conn(ctx)
	if err != nil {
		return models.Dish{}, err
	}
	if err := db.Model(&models.Dish{ID: id}).Updates(updates).Error; err != nil {
		return models.Dish{}, translate(entityDish, err)
	}
	return r.GetDish(ctx, menuID, submenuID, id)
}

func (r *Repository) DeleteDish(ctx context.Context, menuID, submenuID, id uuid.UUID) error {
	if _, err := r.GetDish(ctx, menuID, submenuID, id); err != nil {
		return err
	}

	db, err := r.conn(ctx)
	if err != nil {
		return err
	}
	return translate(entityDish, db.Where("id = ?", id).Delete(&models.Dish{}).Error)
}
