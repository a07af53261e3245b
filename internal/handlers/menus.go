package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menuapp/internal/repository"
	"menuapp/internal/service"
)

type menuCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type menuUpdateRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description"`
}

func ListMenus(c *gin.Context) {
	if !ready(c) {
		return
	}
	out, err := menus.ListMenus(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func CreateMenu(c *gin.Context) {
	if !ready(c) {
		return
	}
	var req menuCreateRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := menus.CreateMenu(c.Request.Context(), service.MenuIn{Title: req.Title, Description: req.Description})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func GetMenu(c *gin.Context) {
	if !ready(c) {
		return
	}
	menuID, ok := pathID(c, "menu_id", "menu")
	if !ok {
		return
	}
	out, err := menus.GetMenu(c.Request.Context(), menuID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func UpdateMenu(c *gin.Context) {
	if !ready(c) {
		return
	}
	menuID, ok := pathID(c, "menu_id", "menu")
	if !ok {
		return
	}
	var req menuUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := menus.UpdateMenu(c.Request.Context(), menuID, repository.MenuPatch{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func DeleteMenu(c *gin.Context) {
	if !ready(c) {
		return
	}
	menuID, ok := pathID(c, "menu_id", "menu")
	if !ok {
		return
	}
	if err := menus.DeleteMenu(c.Request.Context(), menuID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "The menu has been deleted"})
}
