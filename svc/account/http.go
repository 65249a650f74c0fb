package account

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/jobportal/pkg/logger"
	"github.com/dmitrymomot/jobportal/pkg/response"
	"github.com/dmitrymomot/jobportal/pkg/session"
	"github.com/dmitrymomot/jobportal/pkg/validator"
)

// Handler exposes the account service over HTTP.
type Handler struct {
	svc      *Service
	sessions *session.Manager
	throttle func(http.Handler) http.Handler
	log      *slog.Logger
}

// NewHandler wires the handlers. throttle guards register and login; nil
// disables it.
func NewHandler(svc *Service, sessions *session.Manager, throttle func(http.Handler) http.Handler, log *slog.Logger) *Handler {
	if throttle == nil {
		throttle = func(next http.Handler) http.Handler { return next }
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{svc: svc, sessions: sessions, throttle: throttle, log: log.With(logger.Component("account"))}
}

// Routes mounts the account endpoints. The session middleware must already
// run on r.
func (h *Handler) Routes(r chi.Router) {
	r.With(h.throttle).Post("/register", h.register)
	r.With(h.throttle).Post("/login", h.login)
	r.Post("/logout", h.logout)
	r.With(h.sessions.RequireAuth).Get("/me", h.me)
}

// TooManyRequests is the rejection handler for the auth rate limiter.
func TooManyRequests(w http.ResponseWriter, _ *http.Request) {
	response.Fail(w, http.StatusTooManyRequests, msgTooManyRequests)
}

type roleBody struct {
	Role Role `json:"role"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var in RegisterInput
	if err := response.Decode(r, &in); err != nil {
		response.Fail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	res, err := h.svc.Register(r.Context(), in, session.ClientMetadataFromRequest(r))
	if err != nil {
		h.fail(w, r, err, msgRegistrationFailed)
		return
	}

	if err := h.sessions.Binder().Set(w, res.Token); err != nil {
		h.log.ErrorContext(r.Context(), "failed to set session cookie", logger.Error(err))
	}
	response.Success(w, http.StatusCreated, msgRegistered, roleBody{Role: res.Role})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var in LoginInput
	if err := response.Decode(r, &in); err != nil {
		response.Fail(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	res, err := h.svc.Login(r.Context(), in, session.ClientMetadataFromRequest(r))
	if err != nil {
		h.fail(w, r, err, msgLoginFailed)
		return
	}

	if err := h.sessions.Binder().Set(w, res.Token); err != nil {
		h.log.ErrorContext(r.Context(), "failed to set session cookie", logger.Error(err))
	}
	response.Success(w, http.StatusOK, msgLoggedIn, roleBody{Role: res.Role})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(w, r); err != nil {
		h.log.ErrorContext(r.Context(), "failed to invalidate session", logger.Error(err))
	}
	response.Success(w, http.StatusOK, msgLoggedOut, nil)
}

type meBody struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Username    string    `json:"userName"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	PhoneNumber *string   `json:"phoneNumber"`
	AvatarURL   *string   `json:"avatarUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Session     struct {
		UserAgent string    `json:"userAgent"`
		IP        string    `json:"ip"`
		ExpiresAt time.Time `json:"expiresAt"`
	} `json:"session"`
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	u, _ := session.UserFromContext(r.Context())

	body := meBody{
		ID:          u.ID,
		Name:        u.Name,
		Username:    u.Username,
		Email:       u.Email,
		Role:        Role(u.Role),
		PhoneNumber: u.PhoneNumber,
		AvatarURL:   u.AvatarURL,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
	body.Session.UserAgent = u.UserAgent
	body.Session.IP = u.IP
	body.Session.ExpiresAt = u.ExpiresAt

	response.Success(w, http.StatusOK, "", body)
}

// fail maps service errors to responses. Unexpected errors are logged and
// answered with the generic message.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, generic string) {
	if ve := validator.Extract(err); ve != nil {
		response.ValidationFailed(w, ve)
		return
	}

	switch {
	case errors.Is(err, ErrUsernameTaken):
		response.Fail(w, http.StatusConflict, msgUsernameTaken)
	case errors.Is(err, ErrEmailTaken):
		response.Fail(w, http.StatusConflict, msgEmailTaken)
	case errors.Is(err, ErrInvalidCredentials):
		response.Fail(w, http.StatusUnauthorized, msgInvalidCredentials)
	default:
		h.log.ErrorContext(r.Context(), generic, logger.Error(err))
		response.Fail(w, http.StatusInternalServerError, generic)
	}
}
