package http

import (
	"net/http"

	"github.com/kasirpos/kasirpos/internal/service"
)

type sessionHandler struct {
	s   *Service
	svc service.SessionService
}

func newSessionHandler(s *Service, svc service.SessionService) *sessionHandler {
	return &sessionHandler{s: s, svc: svc}
}

func (h *sessionHandler) login(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[loginRequest](r)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}
	if err := h.s.validator.Validate(req); err != nil {
		h.s.writeError(w, r, err)
		return
	}

	session, err := h.svc.Login(r.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	h.s.writeJSON(w, r, http.StatusOK, session)
}

func (h *sessionHandler) current(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.Current(r.Context())
	if err != nil {
		h.s.writeError(w, r, err)
		return
	}

	h.s.writeJSON(w, r, http.StatusOK, session)
}

func (h *sessionHandler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		h.s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
