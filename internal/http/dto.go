package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kasirpos/kasirpos/internal/apperr"
	"github.com/kasirpos/kasirpos/internal/model"
)

type createProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Stock    int     `json:"stock" validate:"gte=0"`
	Category string  `json:"category" validate:"required"`
	Barcode  *string `json:"barcode"`
	Image    *string `json:"image"`
}

type updateProductRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock    *int     `json:"stock" validate:"omitempty,gte=0"`
	Category *string  `json:"category"`
	Barcode  *string  `json:"barcode"`
	Image    *string  `json:"image"`
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type checkoutItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=1"`
}

type checkoutRequest struct {
	Items         []checkoutItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod model.PaymentMethod   `json:"paymentMethod" validate:"required,enum"`
	CustomerName  *string               `json:"customerName"`
	CashierName   string                `json:"cashierName" validate:"required"`
}

type loginRequest struct {
	Username string     `json:"username" validate:"required"`
	Password string     `json:"password" validate:"required"`
	Role     model.Role `json:"role" validate:"required,enum"`
}

type deleteProductResponse struct {
	Deleted bool `json:"deleted"`
}

// decodeJSON unmarshals a request body, reporting malformed payloads as
// validation failures rather than internal errors.
func decodeJSON[T any](r *http.Request) (T, error) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		return v, apperr.ValidationErr.WrapParent(err).WithMsg("malformed request body")
	}
	return v, nil
}

// parseDateRange reads the start/end query params (YYYY-MM-DD). Absent
// params default to the last 30 days, matching the report screen.
func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -30)
	end := now

	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return time.Time{}, time.Time{}, apperr.InvalidDateRangeErr.WrapParent(err).WithMsg("start must be formatted YYYY-MM-DD")
		}
		start = parsed
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return time.Time{}, time.Time{}, apperr.InvalidDateRangeErr.WrapParent(err).WithMsg("end must be formatted YYYY-MM-DD")
		}
		end = parsed
	}

	return start, end, nil
}
