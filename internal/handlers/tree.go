package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	applog "menuapp/internal/log"
	"menuapp/internal/views/pages"
)

// Tree returns every menu with nested submenus and dishes.
func Tree(c *gin.Context) {
	if !ready(c) {
		return
	}
	out, err := menus.Tree(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// MenuPage renders the tree as HTML.
func MenuPage(c *gin.Context) {
	if !ready(c) {
		return
	}
	out, err := menus.Tree(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := pages.MenuTree(out).Render(c.Request.Context(), c.Writer); err != nil {
		applog.Error(c.Request.Context(), "failed to render menu page", "error", err)
	}
}
