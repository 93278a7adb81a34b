package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omerorhan/stay-pricing/internal/service"
	"github.com/omerorhan/stay-pricing/internal/storage"
)

// Quoter is the part of the quote service the handlers use.
type Quoter interface {
	Quote(ctx context.Context, req service.StayRequest) *service.QuoteReport
	Catalogue(ctx context.Context) service.Catalogue
}

type Handler struct {
	quoter   Quoter
	importer storage.Importer
	sheet    string
}

func NewHandler(quoter Quoter) *Handler {
	return &Handler{quoter: quoter, sheet: storage.DefaultSheet}
}

// WithImporter enables rate table uploads into importer under sheet.
func (h *Handler) WithImporter(importer storage.Importer, sheet string) *Handler {
	h.importer = importer
	if sheet != "" {
		h.sheet = sheet
	}
	return h
}

type quoteResponse struct {
	*service.QuoteReport
	HTML string `json:"html"`
}

// --------------------------------------------------
// Price a stay
// --------------------------------------------------
func (h *Handler) Quote(c *gin.Context) {
	var form quoteForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or guest count format."})
		return
	}

	req, err := form.stayRequest()
	if err != nil {
		var ferr *formError
		if errors.As(err, &ferr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ferr.message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	report := h.quoter.Quote(c.Request.Context(), req)

	status := http.StatusOK
	switch report.Status {
	case service.StatusInvalid:
		status = http.StatusUnprocessableEntity
	case service.StatusFailed:
		status = http.StatusInternalServerError
	}
	c.JSON(status, quoteResponse{QuoteReport: report, HTML: report.HTML()})
}

// --------------------------------------------------
// Regions, hotels and categories for the form selects
// --------------------------------------------------
func (h *Handler) Hotels(c *gin.Context) {
	cat := h.quoter.Catalogue(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"regions": cat.Regions(),
		"hotels":  cat,
	})
}

// --------------------------------------------------
// Replace the rate table with an uploaded workbook
// --------------------------------------------------
func (h *Handler) UploadRates(c *gin.Context) {
	if h.importer == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "rate source does not accept uploads"})
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	sheet := c.DefaultPostForm("sheet", h.sheet)
	rows, err := storage.ReadRows(file, sheet)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.importer.ImportRows(c.Request.Context(), sheet, rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sheet": sheet,
		"rows":  len(rows),
	})
}
