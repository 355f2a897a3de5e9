package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/smartpos_backend/pos"
	"github.com/mmdatafocus/smartpos_backend/reports"
)

func (h *Handler) Cart(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Cart(c.Request.Context()))
}

type addToCartRequest struct {
	ProductId string `json:"productId" binding:"required"`
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cart, err := h.svc.AddToCart(c.Request.Context(), req.ProductId)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

type cartQuantityRequest struct {
	Delta int `json:"delta"`
}

// UpdateCartQuantity adds delta to a line; lines that reach zero are dropped.
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	var req cartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.svc.UpdateCartQuantity(c.Request.Context(), c.Param("productId"), req.Delta))
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.RemoveFromCart(c.Request.Context(), c.Param("productId")))
}

func (h *Handler) ClearCart(c *gin.Context) {
	h.svc.ClearCart(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (h *Handler) Checkout(c *gin.Context) {
	var input pos.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	receipt, err := h.svc.Checkout(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

func (h *Handler) FinancialSummary(c *gin.Context) {
	summary, err := h.svc.FinancialSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ExportLedger streams the scoped ledger as an XLSX download.
func (h *Handler) ExportLedger(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.svc.ExportLedger(c.Request.Context(), &buf); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="ledger.xlsx"`)
	c.Data(http.StatusOK, reports.XLSXContentType, buf.Bytes())
}
