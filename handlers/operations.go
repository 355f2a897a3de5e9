package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/pos"
	"github.com/shopspring/decimal"
)

type stockRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

type amountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) SetStock(c *gin.Context) {
	var req stockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ing, err := h.svc.SetStock(c.Request.Context(), c.Param("id"), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ing)
}

func (h *Handler) Restock(c *gin.Context) {
	h.moveStock(c, h.svc.Restock)
}

func (h *Handler) RecordWaste(c *gin.Context) {
	h.moveStock(c, h.svc.RecordWaste)
}

func (h *Handler) moveStock(c *gin.Context, move func(context.Context, string, decimal.Decimal) (pos.StockMovement, error)) {
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	movement, err := move(c.Request.Context(), c.Param("id"), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movement)
}

type tableStatusRequest struct {
	Status models.TableStatus `json:"status" binding:"required"`
}

func (h *Handler) SetTableStatus(c *gin.Context) {
	var req tableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	table, err := h.svc.SetTableStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}
