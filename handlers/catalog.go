package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/smartpos_backend/pos"
)

// Products accepts ?search= and ?category= filters.
func (h *Handler) Products(c *gin.Context) {
	var filter pos.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, err)
		return
	}
	products, err := h.svc.Products(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) ImportTemplateGroup(c *gin.Context) {
	products, err := h.svc.ImportTemplateGroup(c.Request.Context(), c.Param("group"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, products)
}

// UploadTemplates reads an XLSX workbook from the multipart field "file".
func (h *Handler) UploadTemplates(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		badRequest(c, err)
		return
	}
	if header.Size == 0 {
		badRequest(c, errors.New("empty upload"))
		return
	}
	file, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	templates, err := h.svc.ImportTemplatesXLSX(c.Request.Context(), file)
	if err != nil {
		if errorStatus(err) == http.StatusInternalServerError {
			// anything the service does not classify is an unreadable workbook
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, templates)
}
