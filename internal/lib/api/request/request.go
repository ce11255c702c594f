package request

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

type Credentials struct {
	Name     string `json:"name,omitempty"`
	Password string `json:"password,omitempty"`
}

type Question struct {
	QuestionText string     `json:"question_text"`
	Author       string     `json:"author,omitempty"`
	PubDate      *time.Time `json:"pub_date,omitempty"`
}

type Choice struct {
	ChoiceText string `json:"choice_text"`
}

// IDParam reads the "id" url param as a positive integer.
func IDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}

	return id, nil
}
