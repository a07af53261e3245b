package service

import (
	"context"

	"github.com/google/uuid"

	"menuapp/internal/cache"
	"menuapp/internal/repository"
	"menuapp/models"
)

// SubmenuIn is the body of a submenu creation request.
type SubmenuIn struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Service) ListSubmenus(ctx context.Context, menuID uuid.UUID) ([]SubmenuOut, error) {
	return cached(ctx, s, cache.SubmenusKey(menuID), func() ([]SubmenuOut, error) {
		rows, err := s.repo.ListSubmenus(ctx, menuID)
		if err != nil {
			return nil, err
		}
		out := make([]SubmenuOut, 0, len(rows))
		for _, row := range rows {
			out = append(out, submenuOut(row))
		}
		return out, nil
	})
}

func (s *Service) GetSubmenu(ctx context.Context, menuID, id uuid.UUID) (SubmenuOut, error) {
	return cached(ctx, s, cache.SubmenuKey(menuID, id), func() (SubmenuOut, error) {
		row, err := s.repo.GetSubmenu(ctx, menuID, id)
		if err != nil {
			return SubmenuOut{}, err
		}
		return submenuOut(row), nil
	})
}

func (s *Service) CreateSubmenu(ctx context.Context, menuID uuid.UUID, in SubmenuIn) (SubmenuOut, error) {
	submenu := models.Submenu{Title: in.Title, Description: in.Description}
	if err := s.repo.CreateSubmenu(ctx, menuID, &submenu); err != nil {
		return SubmenuOut{}, err
	}
	s.invalidate(ctx, []string{
		cache.MenusKey,
		cache.MenuKey(menuID),
		cache.SubmenusKey(menuID),
		cache.TreeKey,
	})
	return SubmenuOut{ID: submenu.ID, Title: submenu.Title, Description: submenu.Description}, nil
}

func (s *Service) UpdateSubmenu(ctx context.Context, menuID, id uuid.UUID, patch repository.SubmenuPatch) (SubmenuOut, error) {
	row, err := s.repo.UpdateSubmenu(ctx, menuID, id, patch)
	if err != nil {
		return SubmenuOut{}, err
	}
	s.invalidate(ctx, []string{
		cache.SubmenusKey(menuID),
		cache.SubmenuKey(menuID, id),
		cache.TreeKey,
	})
	return submenuOut(row), nil
}

func (s *Service) DeleteSubmenu(ctx context.Context, menuID, id uuid.UUID) error {
	if err := s.repo.DeleteSubmenu(ctx, menuID, id); err != nil {
		return err
	}
	s.invalidate(ctx, []string{
		cache.MenusKey,
		cache.MenuKey(menuID),
		cache.SubmenusKey(menuID),
		cache.TreeKey,
	}, cache.SubmenuKey(menuID, id))
	return nil
}
