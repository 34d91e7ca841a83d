package dto

import (
	"time"

	"github.com/adolfokaiser/precios-api/internal/domain/model"
)

const dateLayout = "2006-01-02"

// PriceRequest is the caller-supplied portion of a price record, shared by
// create and full-replace update.
type PriceRequest struct {
	StationID string  `json:"station_id" binding:"required,min=3,max=20"`
	Date      string  `json:"date" binding:"required,datetime=2006-01-02"`
	Product   string  `json:"product" binding:"required,oneof=Regular Premium Diesel"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	Currency  string  `json:"currency"`
	Notes     *string `json:"notes"`
}

// Fields converts the request into domain fields. Binding has already
// checked the date format, so the parse cannot fail here.
func (r PriceRequest) Fields() model.PriceFields {
	date, _ := time.Parse(dateLayout, r.Date)
	return model.PriceFields{
		StationID: r.StationID,
		Date:      date,
		Product:   model.FuelProduct(r.Product),
		Price:     r.Price,
		Currency:  r.Currency,
		Notes:     r.Notes,
	}
}

// PriceResponse is the wire view of a stored price record.
type PriceResponse struct {
	ID        int64     `json:"id"`
	StationID string    `json:"station_id"`
	Date      string    `json:"date"`
	Product   string    `json:"product"`
	Price     float64   `json:"price"`
	Currency  string    `json:"currency"`
	Notes     *string   `json:"notes"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPriceResponse maps a domain record to its wire view.
func NewPriceResponse(record model.PriceRecord) PriceResponse {
	return PriceResponse{
		ID:        record.ID,
		StationID: record.StationID,
		Date:      record.Date.Format(dateLayout),
		Product:   string(record.Product),
		Price:     record.Price,
		Currency:  record.Currency,
		Notes:     record.Notes,
		CreatedBy: record.CreatedBy,
		CreatedAt: record.CreatedAt,
	}
}

// PriceListQuery carries listing filters and pagination.
type PriceListQuery struct {
	StationID string `form:"station_id"`
	DateFrom  string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo    string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	Q         string `form:"q"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
}

// Filter converts the query into a domain filter.
func (q PriceListQuery) Filter() model.PriceFilter {
	filter := model.PriceFilter{StationID: q.StationID, Query: q.Q}
	if q.DateFrom != "" {
		from, _ := time.Parse(dateLayout, q.DateFrom)
		filter.DateFrom = &from
	}
	if q.DateTo != "" {
		to, _ := time.Parse(dateLayout, q.DateTo)
		filter.DateTo = &to
	}
	return filter
}

// PriceListResponse is one page of records plus pagination metadata.
type PriceListResponse struct {
	Items []PriceResponse `json:"items"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Total int             `json:"total"`
}
