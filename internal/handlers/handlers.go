package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"menuapp/internal/importer"
	applog "menuapp/internal/log"
	"menuapp/internal/repository"
	"menuapp/internal/service"
)

// Synchronizer runs one spreadsheet import on demand.
type Synchronizer interface {
	Sync(ctx context.Context) (importer.Result, error)
}

var (
	menus       *service.Service
	synchronize Synchronizer
)

// Configure wires the dependencies used by the HTTP handlers.
func Configure(svc *service.Service, sync Synchronizer) {
	menus = svc
	synchronize = sync
}

type detailResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func respondDetail(c *gin.Context, status int, detail string) {
	c.JSON(status, detailResponse{Detail: detail})
}

// respondError maps repository errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	var notFound *repository.NotFoundError
	var duplicate *repository.DuplicateTitleError
	switch {
	case errors.As(err, &notFound):
		respondDetail(c, http.StatusNotFound, notFound.Error())
	case errors.As(err, &duplicate):
		respondDetail(c, http.StatusConflict, duplicate.Error())
	default:
		applog.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		respondDetail(c, http.StatusInternalServerError, "internal server error")
	}
}

// pathID parses a UUID path parameter. Malformed ids can never match a row,
// so they are answered with the entity's 404.
func pathID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		applog.Debug(c.Request.Context(), "malformed id in path", "param", param, "value", c.Param(param))
		respondDetail(c, http.StatusNotFound, entity+" not found")
		return uuid.Nil, false
	}
	return id, true
}

func ready(c *gin.Context) bool {
	if menus == nil {
		applog.Error(c.Request.Context(), "menu service not configured")
		respondDetail(c, http.StatusServiceUnavailable, "service unavailable")
		return false
	}
	return true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		applog.Debug(c.Request.Context(), "invalid request body", "error", err)
		respondDetail(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
