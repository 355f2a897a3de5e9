package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/smartpos_backend/models"
)

type loginRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ctx := c.Request.Context()
	if _, err := h.svc.Login(ctx, req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.svc.Session(ctx))
}

func (h *Handler) RegisterOrganization(c *gin.Context) {
	var input models.NewRegistration
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	user, org, err := h.svc.Register(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "organization": org})
}

func (h *Handler) Logout(c *gin.Context) {
	h.svc.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (h *Handler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Session(c.Request.Context()))
}

type selectOrganizationRequest struct {
	OrganizationId string `json:"organizationId" binding:"required"`
}

func (h *Handler) SelectOrganization(c *gin.Context) {
	var req selectOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ctx := c.Request.Context()
	if err := h.svc.SelectOrganization(ctx, req.OrganizationId); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.svc.Session(ctx))
}

// selectLocationRequest takes a location id, or "all" for the whole organization.
type selectLocationRequest struct {
	LocationId string `json:"locationId"`
}

func (h *Handler) SelectLocation(c *gin.Context) {
	var req selectLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ctx := c.Request.Context()
	if err := h.svc.SelectLocation(ctx, req.LocationId); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.svc.Session(ctx))
}

func (h *Handler) Settings(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Settings(c.Request.Context()))
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var settings models.AppSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.svc.UpdateSettings(c.Request.Context(), settings)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
