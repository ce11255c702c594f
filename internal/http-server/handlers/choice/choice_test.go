package choice_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"polls-api/internal/domain/models"
	"polls-api/internal/http-server/handlers/choice"
	"polls-api/internal/http-server/handlers/choice/mocks"
	"polls-api/internal/lib/jwt"
	"polls-api/internal/lib/logger/handlers/slogdiscard"
	"polls-api/internal/service/poll"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func serve(t *testing.T, svc choice.Service, method, target string, auth bool) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.Route("/choices", choice.New(slogdiscard.NewDiscardLogger(), svc, secret).Register())

	req := httptest.NewRequest(method, target, nil)
	if auth {
		token, err := jwt.NewToken(models.Admin{ID: 1}, time.Hour, secret)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	return rr
}

func TestVote(t *testing.T) {
	cases := []struct {
		name     string
		target   string
		err      error
		call     bool
		wantCode int
	}{
		{name: "counted", target: "/choices/1/vote", call: true, wantCode: http.StatusOK},
		{name: "unknown choice", target: "/choices/2/vote", err: poll.ErrChoiceNotFound, call: true, wantCode: http.StatusNotFound},
		{name: "storage failure", target: "/choices/3/vote", err: errors.New("locked"), call: true, wantCode: http.StatusInternalServerError},
		{name: "bad id", target: "/choices/-1/vote", wantCode: http.StatusBadRequest},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewService(t)
			if tc.call {
				svc.On("Vote", mock.Anything, mock.AnythingOfType("int64")).Return(tc.err).Once()
			}

			rr := serve(t, svc, http.MethodPost, tc.target, false)

			assert.Equal(t, tc.wantCode, rr.Code)
		})
	}
}

func TestRemove(t *testing.T) {
	svc := mocks.NewService(t)
	svc.On("RemoveChoice", mock.Anything, int64(4)).Return(nil).Once()
	svc.On("RemoveChoice", mock.Anything, int64(5)).Return(poll.ErrChoiceNotFound).Once()

	assert.Equal(t, http.StatusUnauthorized, serve(t, svc, http.MethodDelete, "/choices/4", false).Code)
	assert.Equal(t, http.StatusOK, serve(t, svc, http.MethodDelete, "/choices/4", true).Code)
	assert.Equal(t, http.StatusNotFound, serve(t, svc, http.MethodDelete, "/choices/5", true).Code)
}
