package choice

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	req "polls-api/internal/lib/api/request"
	resp "polls-api/internal/lib/api/response"
	"polls-api/internal/lib/logger/sl"
	"polls-api/internal/service/poll"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=Service
type Service interface {
	Vote(ctx context.Context, choiceID int64) error
	RemoveChoice(ctx context.Context, id int64) error
}

type Choice struct {
	log     *slog.Logger
	service Service
	secret  string
}

func New(log *slog.Logger, service Service, secret string) *Choice {
	return &Choice{
		log:     log,
		service: service,
		secret:  secret,
	}
}

func (c *Choice) Register() func(r chi.Router) {
	return func(r chi.Router) {
		r.Post("/{id}/vote", c.vote)

		// Require auth
		r.Group(func(r chi.Router) {
			tokenAuth := jwtauth.New("HS256", []byte(c.secret), nil)
			r.Use(jwtauth.Verifier(tokenAuth))
			r.Use(jwtauth.Authenticator(tokenAuth))

			r.Delete("/{id}", c.remove)
		})
	}
}

func (c *Choice) vote(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.choice.vote"

	log := c.log.With(slog.String("op", op))

	id, err := req.IDParam(r)
	if err != nil {
		log.Info("failed to get \"id\" url param", sl.Error(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Err("invalid id"))
		return
	}

	err = c.service.Vote(r.Context(), id)
	if err != nil {
		if errors.Is(err, poll.ErrChoiceNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, resp.Err("choice not found"))
			return
		}
		log.Error("failed to vote", sl.Error(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, resp.Err("internal error"))
		return
	}

	render.JSON(w, r, resp.OK())
}

func (c *Choice) remove(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.choice.remove"

	log := c.log.With(slog.String("op", op))

	id, err := req.IDParam(r)
	if err != nil {
		log.Info("failed to get \"id\" url param", sl.Error(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Err("invalid id"))
		return
	}

	err = c.service.RemoveChoice(r.Context(), id)
	if err != nil {
		if errors.Is(err, poll.ErrChoiceNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, resp.Err("choice not found"))
			return
		}
		log.Error("failed to remove choice", sl.Error(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, resp.Err("internal error"))
		return
	}

	render.JSON(w, r, resp.OK())
}
