package admin

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"polls-api/internal/lib/logger/handlers/slogdiscard"
	"polls-api/internal/storage/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *Service {
	t.Helper()

	st, err := sqlite.New(filepath.Join(t.TempDir(), "polls.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return New(slogdiscard.NewDiscardLogger(), st, time.Hour)
}

func TestService_RegisterAndLogin(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	id, err := s.Register(ctx, "root", "hunter2")
	require.NoError(t, err)
	assert.NotZero(t, id)

	token, err := s.Login(ctx, "root", "hunter2", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestService_RegisterDuplicate(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "root", "hunter2")
	require.NoError(t, err)

	_, err = s.Register(ctx, "root", "other")
	require.ErrorIs(t, err, ErrAdminExists)
}

func TestService_LoginFails(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "root", "hunter2")
	require.NoError(t, err)

	_, err = s.Login(ctx, "root", "wrong", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(ctx, "nobody", "hunter2", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
