package poll

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"polls-api/internal/domain/models"
	"polls-api/internal/lib/logger/handlers/slogdiscard"
	"polls-api/internal/storage/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) *Service {
	t.Helper()

	st, err := sqlite.New(filepath.Join(t.TempDir(), "polls.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	s := New(slogdiscard.NewDiscardLogger(), st)
	s.now = func() time.Time { return fixedNow }

	return s
}

func TestService_CreateQuestionDefaults(t *testing.T) {
	s := newService(t)

	q, err := s.CreateQuestion(context.Background(), models.Question{QuestionText: "What's up?"})
	require.NoError(t, err)

	assert.NotZero(t, q.ID)
	assert.Equal(t, models.DefaultAuthor, q.Author)
	assert.True(t, fixedNow.Equal(q.PubDate))
	assert.True(t, q.WasPublishedRecentlyAt(s.Now()))
}

func TestService_CreateQuestionValidation(t *testing.T) {
	cases := []struct {
		name string
		q    models.Question
	}{
		{name: "empty text", q: models.Question{}},
		{name: "text too long", q: models.Question{QuestionText: strings.Repeat("q", 201)}},
		{name: "author too long", q: models.Question{QuestionText: "ok", Author: strings.Repeat("a", 201)}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s := newService(t)

			_, err := s.CreateQuestion(context.Background(), tc.q)
			require.ErrorIs(t, err, ErrInvalidQuestion)
		})
	}
}

func TestService_CreateQuestionMaxLengthCountsCharacters(t *testing.T) {
	s := newService(t)

	_, err := s.CreateQuestion(context.Background(), models.Question{
		QuestionText: strings.Repeat("ж", 200),
		Author:       strings.Repeat("é", 200),
	})
	require.NoError(t, err)
}

func TestService_QuestionWithChoices(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	q, err := s.CreateQuestion(ctx, models.Question{QuestionText: "Best gopher?"})
	require.NoError(t, err)

	_, err = s.AddChoice(ctx, models.Choice{QuestionID: q.ID, ChoiceText: "Blue"})
	require.NoError(t, err)
	_, err = s.AddChoice(ctx, models.Choice{QuestionID: q.ID, ChoiceText: "Pink", Votes: 10})
	require.NoError(t, err)

	got, err := s.Question(ctx, q.ID)
	require.NoError(t, err)
	require.Len(t, got.Choices, 2)
	assert.Equal(t, "Blue", got.Choices[0].ChoiceText)
	assert.Equal(t, 0, got.Choices[1].Votes)

	_, err = s.Question(ctx, q.ID+100)
	require.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestService_AddChoiceErrors(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	q, err := s.CreateQuestion(ctx, models.Question{QuestionText: "q"})
	require.NoError(t, err)
	other, err := s.CreateQuestion(ctx, models.Question{QuestionText: "other"})
	require.NoError(t, err)

	_, err = s.AddChoice(ctx, models.Choice{QuestionID: q.ID, ChoiceText: "same"})
	require.NoError(t, err)

	_, err = s.AddChoice(ctx, models.Choice{QuestionID: q.ID, ChoiceText: "same"})
	require.ErrorIs(t, err, ErrChoiceExists)

	_, err = s.AddChoice(ctx, models.Choice{QuestionID: other.ID, ChoiceText: "same"})
	require.NoError(t, err)

	_, err = s.AddChoice(ctx, models.Choice{QuestionID: 9999, ChoiceText: "x"})
	require.ErrorIs(t, err, ErrQuestionNotFound)

	_, err = s.AddChoice(ctx, models.Choice{QuestionID: q.ID, ChoiceText: strings.Repeat("c", 201)})
	require.ErrorIs(t, err, ErrInvalidChoice)

	_, err = s.AddChoice(ctx, models.Choice{ChoiceText: "no question"})
	require.ErrorIs(t, err, ErrInvalidChoice)
}

func TestService_LatestSkipsFuture(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	for i, offset := range []time.Duration{-3 * time.Hour, time.Hour, -time.Hour, -2 * time.Hour} {
		_, err := s.CreateQuestion(ctx, models.Question{
			QuestionText: "q" + string(rune('a'+i)),
			PubDate:      fixedNow.Add(offset),
		})
		require.NoError(t, err)
	}

	qs, err := s.Latest(ctx, 2)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "qc", qs[0].QuestionText)
	assert.Equal(t, "qd", qs[1].QuestionText)

	qs, err = s.Latest(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, qs, 3)

	all, err := s.Questions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestService_RemoveQuestionCascades(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	q, err := s.CreateQuestion(ctx, models.Question{QuestionText: "q"})
	require.NoError(t, err)
	c, err := s.AddChoice(ctx, models.Choice{QuestionID: q.ID, ChoiceText: "a"})
	require.NoError(t, err)

	require.NoError(t, s.RemoveQuestion(ctx, q.ID))
	require.ErrorIs(t, s.RemoveQuestion(ctx, q.ID), ErrQuestionNotFound)
	require.ErrorIs(t, s.Vote(ctx, c.ID), ErrChoiceNotFound)
}

func TestService_VoteAndRemoveChoice(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	q, err := s.CreateQuestion(ctx, models.Question{QuestionText: "q"})
	require.NoError(t, err)
	c, err := s.AddChoice(ctx, models.Choice{QuestionID: q.ID, ChoiceText: "a"})
	require.NoError(t, err)

	require.NoError(t, s.Vote(ctx, c.ID))

	got, err := s.Question(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Choices[0].Votes)

	require.NoError(t, s.RemoveChoice(ctx, c.ID))
	err = s.RemoveChoice(ctx, c.ID)
	assert.True(t, errors.Is(err, ErrChoiceNotFound))
}
