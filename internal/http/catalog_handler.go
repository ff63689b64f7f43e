package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kasirpos/kasirpos/internal/apperr"
	"github.com/kasirpos/kasirpos/internal/service"
)

type catalogHandler struct {
	s   *Service
	svc service.CatalogService
}

func newCatalogHandler(s *Service, svc service.CatalogService) *catalogHandler {
	return &catalogHandler{s: s, svc: svc}
}

func (h *catalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	h.s.writeJSON(w, r, http.StatusOK, products)
}

func (h *catalogHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[createProductRequest](r)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}
	if err := h.s.validator.Validate(req); err != nil {
		h.s.writeError(w, r, err)
		return
	}

	product, err := h.svc.CreateProduct(r.Context(), service.CreateProductParams{
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
		Barcode:  req.Barcode,
		Image:    req.Image,
	})
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	h.s.writeJSON(w, r, http.StatusCreated, product)
}

func (h *catalogHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		h.s.writeError(w, r, apperr.ValidationErr.WrapParent(err).WithMsg("product id must be a valid UUID"))
		return
	}

	req, err := decodeJSON[updateProductRequest](r)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}
	if err := h.s.validator.Validate(req); err != nil {
		h.s.writeError(w, r, err)
		return
	}

	product, err := h.svc.UpdateProduct(r.Context(), id, service.UpdateProductParams{
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
		Barcode:  req.Barcode,
		Image:    req.Image,
	})
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	h.s.writeJSON(w, r, http.StatusOK, product)
}

func (h *catalogHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		h.s.writeError(w, r, apperr.ValidationErr.WrapParent(err).WithMsg("product id must be a valid UUID"))
		return
	}

	deleted, err := h.svc.DeleteProduct(r.Context(), id)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	h.s.writeJSON(w, r, http.StatusOK, deleteProductResponse{Deleted: deleted})
}

func (h *catalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	h.s.writeJSON(w, r, http.StatusOK, categories)
}

func (h *catalogHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[createCategoryRequest](r)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}
	if err := h.s.validator.Validate(req); err != nil {
		h.s.writeError(w, r, err)
		return
	}

	category, err := h.svc.CreateCategory(r.Context(), req.Name)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	h.s.writeJSON(w, r, http.StatusCreated, category)
}
