package service

import (
	"context"

	"menuapp/internal/cache"
)

// Tree returns every menu with its submenus and dishes nested inside.
func (s *Service) Tree(ctx context.Context) ([]TreeMenu, error) {
	return cached(ctx, s, cache.TreeKey, func() ([]TreeMenu, error) {
		menus, err := s.repo.Tree(ctx)
		if err != nil {
			return nil, err
		}
		return treeOut(menus), nil
	})
}
