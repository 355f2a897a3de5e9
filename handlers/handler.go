// Package handlers exposes the point-of-sale service over JSON HTTP.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/smartpos_backend/config"
	"github.com/mmdatafocus/smartpos_backend/pos"
	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc    *pos.Service
	logger *logrus.Logger
}

func New(svc *pos.Service, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = config.GetLogger()
	}
	return &Handler{svc: svc, logger: logger}
}

func errorStatus(err error) int {
	var ve *utils.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, utils.ErrNotLoggedIn):
		return http.StatusUnauthorized
	case errors.Is(err, utils.ErrSuperAdminOnly), errors.Is(err, utils.ErrForeignOrganization):
		return http.StatusForbidden
	case errors.Is(err, utils.ErrorRecordNotFound), errors.Is(err, utils.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, utils.ErrEmailAlreadyUsed), errors.Is(err, utils.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, utils.ErrNoOrganization),
		errors.Is(err, utils.ErrNoLocationAvailable),
		errors.Is(err, utils.ErrSelectLocationFirst),
		errors.Is(err, utils.ErrTableRequired),
		errors.Is(err, utils.ErrEmptyCart),
		errors.Is(err, utils.ErrInvalidAmount),
		errors.Is(err, utils.ErrUnsupportedSetting):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondError writes err as {"error": ...}, plus the failing fields for validation errors.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := errorStatus(err)
	body := gin.H{"error": err.Error()}
	var ve *utils.ValidationError
	if errors.As(err, &ve) {
		body["fields"] = ve.Fields
	}
	if status == http.StatusInternalServerError {
		body["error"] = "internal server error"
	}
	c.AbortWithStatusJSON(status, body)
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
}

func list[T any](fn func(context.Context) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := fn(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func create[In any, Out any](fn func(context.Context, *In) (Out, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input In
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, err)
			return
		}
		out, err := fn(c.Request.Context(), &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

func update[In any, Out any](fn func(context.Context, string, *In) (Out, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input In
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, err)
			return
		}
		out, err := fn(c.Request.Context(), c.Param("id"), &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func remove(fn func(context.Context, string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := fn(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// byId wraps single-record actions addressed only by the :id path parameter.
func byId[Out any](fn func(context.Context, string) (Out, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := fn(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
}
