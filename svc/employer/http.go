package employer

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/jobportal/pkg/logger"
	"github.com/dmitrymomot/jobportal/pkg/response"
	"github.com/dmitrymomot/jobportal/pkg/session"
	"github.com/dmitrymomot/jobportal/pkg/validator"
	"github.com/dmitrymomot/jobportal/svc/account"
)

type Handler struct {
	svc *Service
	log *slog.Logger
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{svc: svc, log: log.With(logger.Component("employer"))}
}

// Routes mounts /employer/profile behind the employer role check.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/employer", func(r chi.Router) {
		r.Use(account.RequireRole(msgUnauthorized, account.RoleEmployer))
		r.Get("/profile", h.getProfile)
		r.Put("/profile", h.updateProfile)
	})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	u, _ := session.UserFromContext(r.Context())

	details, err := h.svc.Profile(r.Context(), u)
	if err != nil {
		h.fail(w, r, err, msgLoadFailed)
		return
	}
	response.Success(w, http.StatusOK, "", details)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var in UpdateInput
	if err := response.Decode(r, &in); err != nil {
		response.Fail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	u, _ := session.UserFromContext(r.Context())
	if err := h.svc.Update(r.Context(), u, in); err != nil {
		h.fail(w, r, err, msgUpdateFailed)
		return
	}
	response.Success(w, http.StatusOK, msgUpdated, nil)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, generic string) {
	if ve := validator.Extract(err); ve != nil {
		response.ValidationFailed(w, ve)
		return
	}

	switch {
	case errors.Is(err, ErrNotEmployer):
		response.Fail(w, http.StatusForbidden, msgUnauthorized)
	case errors.Is(err, ErrProfileNotFound):
		response.Fail(w, http.StatusNotFound, msgProfileNotFound)
	default:
		h.log.ErrorContext(r.Context(), generic, logger.Error(err))
		response.Fail(w, http.StatusInternalServerError, generic)
	}
}
