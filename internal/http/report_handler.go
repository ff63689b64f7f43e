package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kasirpos/kasirpos/internal/apperr"
	"github.com/kasirpos/kasirpos/internal/config"
	"github.com/kasirpos/kasirpos/internal/export"
	"github.com/kasirpos/kasirpos/internal/service"
)

const defaultTopProducts = 10

type reportHandler struct {
	s        *Service
	svc      service.ReportService
	storeCfg config.Store
}

func newReportHandler(s *Service, svc service.ReportService, storeCfg config.Store) *reportHandler {
	return &reportHandler{s: s, svc: svc, storeCfg: storeCfg}
}

func (h *reportHandler) listTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.svc.ListTransactions(r.Context())
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	h.s.writeJSON(w, r, http.StatusOK, transactions)
}

func (h *reportHandler) receipt(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "transactionID"))
	if err != nil {
		h.s.writeError(w, r, apperr.ValidationErr.WrapParent(err).WithMsg("transaction id must be a valid UUID"))
		return
	}

	txn, err := h.svc.GetTransaction(r.Context(), id)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	receipt := export.Receipt(txn, h.storeCfg)
	h.s.writeBlob(w, r, "text/plain; charset=utf-8", "", []byte(receipt))
}

func (h *reportHandler) salesReport(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseDateRange(r)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	result, err := h.svc.SalesReport(r.Context(), start, end)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	h.s.writeJSON(w, r, http.StatusOK, result)
}

func (h *reportHandler) salesExport(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseDateRange(r)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	result, err := h.svc.SalesReport(r.Context(), start, end)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	body, err := export.SalesCSV(result.Transactions)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	filename := fmt.Sprintf("laporan-penjualan-%s-%s.csv",
		start.Format(time.DateOnly), end.Format(time.DateOnly))
	h.s.writeBlob(w, r, "text/csv; charset=utf-8", filename, body)
}

func (h *reportHandler) productReport(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseDateRange(r)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	limit := defaultTopProducts
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.s.writeError(w, r, apperr.ValidationErr.WithMsg("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	result, err := h.svc.ProductReport(r.Context(), start, end, limit)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	h.s.writeJSON(w, r, http.StatusOK, result)
}

func (h *reportHandler) productExport(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseDateRange(r)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	result, err := h.svc.ProductReport(r.Context(), start, end, defaultTopProducts)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	body, err := export.ProductsCSV(result.Top)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	filename := fmt.Sprintf("laporan-produk-%s-%s.csv",
		start.Format(time.DateOnly), end.Format(time.DateOnly))
	h.s.writeBlob(w, r, "text/csv; charset=utf-8", filename, body)
}
