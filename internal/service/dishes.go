package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"menuapp/internal/cache"
	"menuapp/internal/repository"
	"menuapp/models"
)

// DishIn is the body of a dish creation request.
type DishIn struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Discount    int             `json:"discount"`
}

func (s *Service) ListDishes(ctx context.Context, menuID, submenuID uuid.UUID) ([]DishOut, error) {
	return cached(ctx, s, cache.DishesKey(menuID, submenuID), func() ([]DishOut, error) {
		rows, err := s.repo.ListDishes(ctx, menuID, submenuID)
		if err != nil {
			return nil, err
		}
		out := make([]DishOut, 0, len(rows))
		for _, row := range rows {
			out = append(out, dishOut(row))
		}
		return out, nil
	})
}

func (s *Service) GetDish(ctx context.Context, menuID, submenuID, id uuid.UUID) (DishOut, error) {
	return cached(ctx, s, cache.DishKey(menuID, submenuID, id), func() (DishOut, error) {
		row, err := s.repo.GetDish(ctx, menuID, submenuID, id)
		if err != nil {
			return DishOut{}, err
		}
		return dishOut(row), nil
	})
}

// dishParents lists the keys whose counts include the dishes of a submenu.
func dishParents(menuID, submenuID uuid.UUID) []string {
	return []string{
		cache.MenusKey,
		cache.MenuKey(menuID),
		cache.SubmenusKey(menuID),
		cache.SubmenuKey(menuID, submenuID),
		cache.DishesKey(menuID, submenuID),
		cache.TreeKey,
	}
}

func (s *Service) CreateDish(ctx context.Context, menuID, submenuID uuid.UUID, in DishIn) (DishOut, error) {
	dish := models.Dish{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Discount:    in.Discount,
	}
	if err := s.repo.CreateDish(ctx, menuID, submenuID, &dish); err != nil {
		return DishOut{}, err
	}
	s.invalidate(ctx, dishParents(menuID, submenuID))
	return dishOut(dish), nil
}

func (s *Service) UpdateDish(ctx context.Context, menuID, submenuID, id uuid.UUID, patch repository.DishPatch) (DishOut, error) {
	row, err := s.repo.UpdateDish(ctx, menuID, submenuID, id, patch)
	if err != nil {
		return DishOut{}, err
	}
	s.invalidate(ctx, []string{
		cache.DishesKey(menuID, submenuID),
		cache.DishKey(menuID, submenuID, id),
		cache.TreeKey,
	})
	return dishOut(row), nil
}

func (s *Service) DeleteDish(ctx context.Context, menuID, submenuID, id uuid.UUID) error {
	if err := s.repo.DeleteDish(ctx, menuID, submenuID, id); err != nil {
		return err
	}
	s.invalidate(ctx, append(dishParents(menuID, submenuID), cache.DishKey(menuID, submenuID, id)))
	return nil
}
