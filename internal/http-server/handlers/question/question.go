package question

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"polls-api/internal/domain/models"
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
	CreateQuestion(ctx context.Context, q models.Question) (models.Question, error)
	Question(ctx context.Context, id int64) (models.Question, error)
	Questions(ctx context.Context) ([]models.Question, error)
	Latest(ctx context.Context, limit int) ([]models.Question, error)
	RemoveQuestion(ctx context.Context, id int64) error
	AddChoice(ctx context.Context, c models.Choice) (models.Choice, error)
	Now() time.Time
}

// View is a question as listed to clients. PubDate is the sort key of the
// WasPublishedRecently column.
type View struct {
	models.Question
	WasPublishedRecently bool `json:"was_published_recently"`
}

type Response struct {
	resp.Response
	Question  *View          `json:"question,omitempty"`
	Questions []View         `json:"questions,omitempty"`
	Choice    *models.Choice `json:"choice,omitempty"`
}

type Question struct {
	log     *slog.Logger
	service Service
	secret  string
}

func New(log *slog.Logger, service Service, secret string) *Question {
	return &Question{
		log:     log,
		service: service,
		secret:  secret,
	}
}

func (q *Question) Register() func(r chi.Router) {
	return func(r chi.Router) {
		// Public routes
		r.Get("/", q.getAll)
		r.Get("/latest", q.getLatest)
		r.Get("/{id}", q.getByID)

		// Require auth
		r.Group(func(r chi.Router) {
			tokenAuth := jwtauth.New("HS256", []byte(q.secret), nil)
			r.Use(jwtauth.Verifier(tokenAuth))
			r.Use(jwtauth.Authenticator(tokenAuth))

			r.Post("/", q.create)
			r.Delete("/{id}", q.remove)
			r.Post("/{id}/choices", q.addChoice)
		})
	}
}

func (q *Question) getAll(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.question.getAll"

	log := q.log.With(slog.String("op", op))

	qs, err := q.service.Questions(r.Context())
	if err != nil {
		log.Error("failed to get questions", sl.Error(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, resp.Err("internal error"))
		return
	}

	render.JSON(w, r, Response{
		Response:  resp.OK(),
		Questions: q.views(qs),
	})
}

func (q *Question) getLatest(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.question.getLatest"

	log := q.log.With(slog.String("op", op))

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			log.Info("bad limit", slog.String("limit", raw))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Err("invalid limit"))
			return
		}
		limit = n
	}

	qs, err := q.service.Latest(r.Context(), limit)
	if err != nil {
		log.Error("failed to get latest questions", sl.Error(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, resp.Err("internal error"))
		return
	}

	render.JSON(w, r, Response{
		Response:  resp.OK(),
		Questions: q.views(qs),
	})
}

func (q *Question) getByID(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.question.getByID"

	log := q.log.With(slog.String("op", op))

	id, err := req.IDParam(r)
	if err != nil {
		log.Info("failed to get \"id\" url param", sl.Error(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Err("invalid id"))
		return
	}

	// Send to service layer
	question, err := q.service.Question(r.Context(), id)
	if err != nil {
		if errors.Is(err, poll.ErrQuestionNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, resp.Err("question not found"))
			return
		}
		log.Error("failed to get question", sl.Error(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, resp.Err("internal error"))
		return
	}

	view := q.view(question, q.service.Now())

	render.JSON(w, r, Response{
		Response: resp.OK(),
		Question: &view,
	})
}

func (q *Question) create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.question.create"

	log := q.log.With(slog.String("op", op))

	var body req.Question
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		log.Info("failed to decode request", sl.Error(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Err("invalid request body"))
		return
	}

	question := models.Question{
		QuestionText: body.QuestionText,
		Author:       body.Author,
	}
	if body.PubDate != nil {
		question.PubDate = *body.PubDate
	}

	// Send to service layer
	created, err := q.service.CreateQuestion(r.Context(), question)
	if err != nil {
		if errors.Is(err, poll.ErrInvalidQuestion) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Err(err.Error()))
			return
		}
		log.Error("failed to create question", sl.Error(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, resp.Err("internal error"))
		return
	}

	view := q.view(created, q.service.Now())

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, Response{
		Response: resp.OK(),
		Question: &view,
	})
}

func (q *Question) remove(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.question.remove"

	log := q.log.With(slog.String("op", op))

	id, err := req.IDParam(r)
	if err != nil {
		log.Info("failed to get \"id\" url param", sl.Error(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Err("invalid id"))
		return
	}

	err = q.service.RemoveQuestion(r.Context(), id)
	if err != nil {
		if errors.Is(err, poll.ErrQuestionNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, resp.Err("question not found"))
			return
		}
		log.Error("failed to remove question", sl.Error(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, resp.Err("internal error"))
		return
	}

	render.JSON(w, r, resp.OK())
}

func (q *Question) addChoice(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.question.addChoice"

	log := q.log.With(slog.String("op", op))

	id, err := req.IDParam(r)
	if err != nil {
		log.Info("failed to get \"id\" url param", sl.Error(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Err("invalid id"))
		return
	}

	var body req.Choice
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		log.Info("failed to decode request", sl.Error(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Err("invalid request body"))
		return
	}

	choice, err := q.service.AddChoice(r.Context(), models.Choice{QuestionID: id, ChoiceText: body.ChoiceText})
	if err != nil {
		switch {
		case errors.Is(err, poll.ErrInvalidChoice):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Err(err.Error()))
		case errors.Is(err, poll.ErrQuestionNotFound):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, resp.Err("question not found"))
		case errors.Is(err, poll.ErrChoiceExists):
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, resp.Err("choice already exists"))
		default:
			log.Error("failed to add choice", sl.Error(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Err("internal error"))
		}
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, Response{
		Response: resp.OK(),
		Choice:   &choice,
	})
}

func (q *Question) view(question models.Question, now time.Time) View {
	return View{
		Question:             question,
		WasPublishedRecently: question.WasPublishedRecentlyAt(now),
	}
}

// views evaluates recency for the whole listing against a single instant.
func (q *Question) views(qs []models.Question) []View {
	now := q.service.Now()

	views := make([]View, 0, len(qs))
	for _, question := range qs {
		views = append(views, q.view(question, now))
	}

	return views
}
