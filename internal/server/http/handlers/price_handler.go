package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/adolfokaiser/precios-api/internal/domain/errors"
	"github.com/adolfokaiser/precios-api/internal/server/http/dto"
)

// PriceHandler manages price ledger endpoints.
type PriceHandler struct {
	facade PriceFacade
}

// NewPriceHandler constructs PriceHandler.
func NewPriceHandler(facade PriceFacade) *PriceHandler {
	return &PriceHandler{facade: facade}
}

// Create handles POST /prices.
func (h *PriceHandler) Create(c *gin.Context) {
	var req dto.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	record, err := h.facade.CreatePrice(c.Request.Context(), req.Fields(), CurrentSubject(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPriceResponse(*record))
}

// List handles GET /prices.
func (h *PriceHandler) List(c *gin.Context) {
	var query dto.PriceListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	records, total, err := h.facade.ListPrices(c.Request.Context(), query.Filter(), query.Page, query.Limit)
	if err != nil {
		if errors.Is(err, domainErrors.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	items := make([]dto.PriceResponse, 0, len(records))
	for _, record := range records {
		items = append(items, dto.NewPriceResponse(record))
	}

	c.JSON(http.StatusOK, dto.PriceListResponse{Items: items, Page: query.Page, Limit: query.Limit, Total: total})
}

// Get handles GET /prices/:id.
func (h *PriceHandler) Get(c *gin.Context) {
	id, ok := priceID(c)
	if !ok {
		return
	}

	record, err := h.facade.Price(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.NewPriceResponse(*record))
}

// Update handles PUT /prices/:id with full-replace semantics.
func (h *PriceHandler) Update(c *gin.Context) {
	id, ok := priceID(c)
	if !ok {
		return
	}

	var req dto.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	record, err := h.facade.UpdatePrice(c.Request.Context(), id, req.Fields(), CurrentSubject(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
		case errors.Is(err, domainErrors.ErrValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewPriceResponse(*record))
}

// Delete handles DELETE /prices/:id.
func (h *PriceHandler) Delete(c *gin.Context) {
	id, ok := priceID(c)
	if !ok {
		return
	}

	if err := h.facade.DeletePrice(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

func priceID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid price id"})
		return 0, false
	}
	return id, true
}
