package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"menuapp/internal/repository"
	"menuapp/internal/service"
)

type dishCreateRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Discount    *int             `json:"discount" binding:"omitempty,min=0,max=100"`
}

type dishUpdateRequest struct {
	Title       *string          `json:"title" binding:"omitempty,min=1"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Discount    *int             `json:"discount" binding:"omitempty,min=0,max=100"`
}

func validPrice(c *gin.Context, price *decimal.Decimal) bool {
	if price != nil && price.IsNegative() {
		respondDetail(c, http.StatusBadRequest, "price must not be negative")
		return false
	}
	return true
}

func dishPath(c *gin.Context) (menuID, submenuID, dishID uuid.UUID, ok bool) {
	if menuID, submenuID, ok = submenuPath(c); !ok {
		return
	}
	dishID, ok = pathID(c, "dish_id", "dish")
	return
}

func ListDishes(c *gin.Context) {
	if !ready(c) {
		return
	}
	menuID, submenuID, ok := submenuPath(c)
	if !ok {
		return
	}
	out, err := menus.ListDishes(c.Request.Context(), menuID, submenuID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func CreateDish(c *gin.Context) {
	if !ready(c) {
		return
	}
	menuID, submenuID, ok := submenuPath(c)
	if !ok {
		return
	}
	var req dishCreateRequest
	if !bindJSON(c, &req) || !validPrice(c, req.Price) {
		return
	}
	in := service.DishIn{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
	}
	if req.Discount != nil {
		in.Discount = *req.Discount
	}
	out, err := menus.CreateDish(c.Request.Context(), menuID, submenuID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func GetDish(c *gin.Context) {
	if !ready(c) {
		return
	}
	menuID, submenuID, dishID, ok := dishPath(c)
	if !ok {
		return
	}
	out, err := menus.GetDish(c.Request.Context(), menuID, submenuID, dishID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func UpdateDish(c *gin.Context) {
	if !ready(c) {
		return
	}
	menuID, submenuID, dishID, ok := dishPath(c)
	if !ok {
		return
	}
	var req dishUpdateRequest
	if !bindJSON(c, &req) || !validPrice(c, req.Price) {
		return
	}
	out, err := menus.UpdateDish(c.Request.Context(), menuID, submenuID, dishID, repository.DishPatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Discount:    req.Discount,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func DeleteDish(c *gin.Context) {
	if !ready(c) {
		return
	}
	menuID, submenuID, dishID, ok := dishPath(c)
	if !ok {
		return
	}
	if err := menus.DeleteDish(c.Request.Context(), menuID, submenuID, dishID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "The dish has been deleted"})
}
