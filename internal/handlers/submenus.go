package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"menuapp/internal/repository"
	"menuapp/internal/service"
)

type submenuCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type submenuUpdateRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description"`
}

func ListSubmenus(c *gin.Context) {
	if !ready(c) {
		return
	}
	menuID, ok := pathID(c, "menu_id", "menu")
	if !ok {
		return
	}
	out, err := menus.ListSubmenus(c.Request.Context(), menuID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func CreateSubmenu(c *gin.Context) {
	if !ready(c) {
		return
	}
	menuID, ok := pathID(c, "menu_id", "menu")
	if !ok {
		return
	}
	var req submenuCreateRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := menus.CreateSubmenu(c.Request.Context(), menuID, service.SubmenuIn{Title: req.Title, Description: req.Description})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// submenuPath parses the menu and submenu ids of a nested route.
func submenuPath(c *gin.Context) (menuID, submenuID uuid.UUID, ok bool) {
	if menuID, ok = pathID(c, "menu_id", "menu"); !ok {
		return
	}
	submenuID, ok = pathID(c, "submenu_id", "submenu")
	return
}

func GetSubmenu(c *gin.Context) {
	if !ready(c) {
		return
	}
	menuID, submenuID, ok := submenuPath(c)
	if !ok {
		return
	}
	out, err := menus.GetSubmenu(c.Request.Context(), menuID, submenuID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func UpdateSubmenu(c *gin.Context) {
	if !ready(c) {
		return
	}
	menuID, submenuID, ok := submenuPath(c)
	if !ok {
		return
	}
	var req submenuUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := menus.UpdateSubmenu(c.Request.Context(), menuID, submenuID, repository.SubmenuPatch{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func DeleteSubmenu(c *gin.Context) {
	if !ready(c) {
		return
	}
	menuID, submenuID, ok := submenuPath(c)
	if !ok {
		return
	}
	if err := menus.DeleteSubmenu(c.Request.Context(), menuID, submenuID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "The submenu has been deleted"})
}
