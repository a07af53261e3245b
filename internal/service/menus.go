package service

import (
	"context"

	"github.com/google/uuid"

	"menuapp/internal/cache"
	"menuapp/internal/repository"
	"menuapp/models"
)

// MenuIn is the body of a menu creation request.
type MenuIn struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Service) ListMenus(ctx context.Context) ([]MenuOut, error) {
	return cached(ctx, s, cache.MenusKey, func() ([]MenuOut, error) {
		rows, err := s.repo.ListMenus(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]MenuOut, 0, len(rows))
		for _, row := range rows {
			out = append(out, menuOut(row))
		}
		return out, nil
	})
}

func (s *Service) GetMenu(ctx context.Context, id uuid.UUID) (MenuOut, error) {
	return cached(ctx, s, cache.MenuKey(id), func() (MenuOut, error) {
		row, err := s.repo.GetMenu(ctx, id)
		if err != nil {
			return MenuOut{}, err
		}
		return menuOut(row), nil
	})
}

func (s *Service) CreateMenu(ctx context.Context, in MenuIn) (MenuOut, error) {
	menu := models.Menu{Title: in.Title, Description: in.Description}
	if err := s.repo.CreateMenu(ctx, &menu); err != nil {
		return MenuOut{}, err
	}
	s.invalidate(ctx, []string{cache.MenusKey, cache.TreeKey})
	return MenuOut{ID: menu.ID, Title: menu.Title, Description: menu.Description}, nil
}

func (s *Service) UpdateMenu(ctx context.Context, id uuid.UUID, patch repository.MenuPatch) (MenuOut, error) {
	row, err := s.repo.UpdateMenu(ctx, id, patch)
	if err != nil {
		return MenuOut{}, err
	}
	s.invalidate(ctx, []string{cache.MenusKey, cache.MenuKey(id), cache.TreeKey})
	return menuOut(row), nil
}

func (s *Service) DeleteMenu(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteMenu(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, []string{cache.MenusKey, cache.TreeKey}, cache.MenuKey(id))
	return nil
}
