package service

import (
	"github.com/google/uuid"

	"menuapp/internal/repository"
	"menuapp/models"
)

type MenuOut struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	SubmenusCount int64     `json:"submenus_count"`
	DishesCount   int64     `json:"dishes_count"`
}

type SubmenuOut struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DishesCount int64     `json:"dishes_count"`
}

// DishOut carries the discounted price; Discount is the percentage applied.
type DishOut struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Discount    int       `json:"discount"`
}

type TreeSubmenu struct {
	SubmenuOut
	Dishes []DishOut `json:"dishes"`
}

type TreeMenu struct {
	MenuOut
	Submenus []TreeSubmenu `json:"submenus"`
}

func menuOut(m repository.MenuSummary) MenuOut {
	return MenuOut{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		SubmenusCount: m.SubmenusCount,
		DishesCount:   m.DishesCount,
	}
}

func submenuOut(s repository.SubmenuSummary) SubmenuOut {
	return SubmenuOut{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		DishesCount: s.DishesCount,
	}
}

func dishOut(d models.Dish) DishOut {
	return DishOut{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Price:       d.CurrentPrice().StringFixed(2),
		Discount:    d.Discount,
	}
}

func treeOut(menus []models.Menu) []TreeMenu {
	tree := make([]TreeMenu, 0, len(menus))
	for _, m := range menus {
		node := TreeMenu{
			MenuOut: MenuOut{
				ID:            m.ID,
				Title:         m.Title,
				Description:   m.Description,
				SubmenusCount: int64(len(m.Submenus)),
			},
			Submenus: make([]TreeSubmenu, 0, len(m.Submenus)),
		}
		for _, s := range m.Submenus {
			sub := TreeSubmenu{
				SubmenuOut: SubmenuOut{
					ID:          s.ID,
					Title:       s.Title,
					Description: s.Description,
					DishesCount: int64(len(s.Dishes)),
				},
				Dishes: make([]DishOut, 0, len(s.Dishes)),
			}
			for _, d := range s.Dishes {
				sub.Dishes = append(sub.Dishes, dishOut(d))
			}
			node.DishesCount += sub.DishesCount
			node.Submenus = append(node.Submenus, sub)
		}
		tree = append(tree, node)
	}
	return tree
}
