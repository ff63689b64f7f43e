package http

import (
	"net/http"

	"github.com/kasirpos/kasirpos/internal/service"
)

type checkoutHandler struct {
	s   *Service
	svc service.CheckoutService
}

func newCheckoutHandler(s *Service, svc service.CheckoutService) *checkoutHandler {
	return &checkoutHandler{s: s, svc: svc}
}

func (h *checkoutHandler) checkout(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[checkoutRequest](r)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}
	if err := h.s.validator.Validate(req); err != nil {
		h.s.writeError(w, r, err)
		return
	}

	cart := make([]service.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		cart = append(cart, service.CartLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	txn, err := h.svc.Checkout(r.Context(), service.CheckoutParams{
		Cart:          cart,
		PaymentMethod: req.PaymentMethod,
		CustomerName:  req.CustomerName,
		CashierName:   req.CashierName,
	})
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	h.s.writeJSON(w, r, http.StatusCreated, txn)
}
