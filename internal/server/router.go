package server

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"menuapp/internal/handlers"
	applog "menuapp/internal/log"
)

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", requestIDHeader},
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func newRouter(origins []string) http.Handler {
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(recovery(), requestContext(), requestLogger(), corsMiddleware(origins))

	applog.Debug(context.Background(), "registering http routes")
	router.GET("/healthz", handlers.Health)
	router.GET("/menu", handlers.MenuPage)

	api := router.Group("/api/v1")
	api.GET("/healthchecker", handlers.HealthChecker)
	api.GET("/tree", handlers.Tree)
	api.POST("/import", handlers.Import)

	api.GET("/menus", handlers.ListMenus)
	api.POST("/menus", handlers.CreateMenu)
	api.GET("/menus/:menu_id", handlers.GetMenu)
	api.PATCH("/menus/:menu_id", handlers.UpdateMenu)
	api.DELETE("/menus/:menu_id", handlers.DeleteMenu)

	api.GET("/menus/:menu_id/submenus", handlers.ListSubmenus)
	api.POST("/menus/:menu_id/submenus", handlers.CreateSubmenu)
	api.GET("/menus/:menu_id/submenus/:submenu_id", handlers.GetSubmenu)
	api.PATCH("/menus/:menu_id/submenus/:submenu_id", handlers.UpdateSubmenu)
	api.DELETE("/menus/:menu_id/submenus/:submenu_id", handlers.DeleteSubmenu)

	api.GET("/menus/:menu_id/submenus/:submenu_id/dishes", handlers.ListDishes)
	api.POST("/menus/:menu_id/submenus/:submenu_id/dishes", handlers.CreateDish)
	api.GET("/menus/:menu_id/submenus/:submenu_id/dishes/:dish_id", handlers.GetDish)
	api.PATCH("/menus/:menu_id/submenus/:submenu_id/dishes/:dish_id", handlers.UpdateDish)
	api.DELETE("/menus/:menu_id/submenus/:submenu_id/dishes/:dish_id", handlers.DeleteDish)

	for _, route := range router.Routes() {
		applog.Debug(context.Background(), "route registered", "method", route.Method, "path", route.Path)
	}
	return stripTrailingSlash(router)
}
