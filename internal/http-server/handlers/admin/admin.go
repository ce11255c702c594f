package admin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	req "polls-api/internal/lib/api/request"
	resp "polls-api/internal/lib/api/response"
	"polls-api/internal/lib/logger/sl"
	"polls-api/internal/service/admin"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=Service
type Service interface {
	Login(ctx context.Context, name, password, secret string) (token string, err error)
}

type Response struct {
	resp.Response
	Token string `json:"token,omitempty"`
}

type Admin struct {
	log     *slog.Logger
	service Service
	secret  string
}

func New(log *slog.Logger, service Service, secret string) *Admin {
	return &Admin{
		log:     log,
		service: service,
		secret:  secret,
	}
}

func (a *Admin) Register() func(r chi.Router) {
	return func(r chi.Router) {
		r.Post("/login", a.login)
	}
}

func (a *Admin) login(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.login"

	log := a.log.With(slog.String("op", op))

	var cred req.Credentials
	err := render.DecodeJSON(r.Body, &cred)
	if err != nil {
		log.Info("failed to decode request", sl.Error(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Err("invalid request body"))
		return
	}

	// Validate admin creds
	if cred.Name == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Err("invalid credentials: name is empty"))
		return
	}

	if cred.Password == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Err("invalid credentials: password is empty"))
		return
	}

	// Send to service layer
	token, err := a.service.Login(r.Context(), cred.Name, cred.Password, a.secret)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, resp.Err("invalid credentials"))
			return
		}
		log.Error("failed to log in", sl.Error(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, resp.Err("internal error"))
		return
	}

	// Write response
	render.JSON(w, r, Response{
		Response: resp.OK(),
		Token:    token,
	})
}
