package authorize

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aruizdev/fisioclinic_backend/pkg/reqctx"
)

type stubClaims struct {
	userID uuid.UUID
}

func (s stubClaims) GetUserID() uuid.UUID     { return s.userID }
func (s stubClaims) GetSessionID() *uuid.UUID { return nil }
func (s stubClaims) GetTokenType() string     { return "access" }
func (s stubClaims) IsExpired() bool          { return false }

func TestSubjectFromContext(t *testing.T) {
	userID := uuid.MustParse("0190a000-0000-7000-8000-000000000042")

	t.Run("claims stored via reqctx are visible", func(t *testing.T) {
		ctx := reqctx.WithClaims(context.Background(), stubClaims{userID: userID})

		subject, err := SubjectFromContext(ctx)
		require.NoError(t, err)
		assert.Equal(t, GroupSubject(userID.String()), subject)
	})

	t.Run("empty context", func(t *testing.T) {
		_, err := SubjectFromContext(context.Background())
		assert.ErrorIs(t, err, ErrNoSubjectInContext)
	})

	t.Run("nil user id", func(t *testing.T) {
		ctx := reqctx.WithClaims(context.Background(), stubClaims{})
		_, err := SubjectFromContext(ctx)
		assert.ErrorIs(t, err, ErrNoSubjectInContext)
	})
}

func TestMustSubjectFromContext(t *testing.T) {
	t.Run("panics without claims", func(t *testing.T) {
		assert.Panics(t, func() {
			MustSubjectFromContext(context.Background())
		})
	})

	t.Run("returns subject with claims", func(t *testing.T) {
		userID := uuid.MustParse("0190a000-0000-7000-8000-000000000043")
		ctx := reqctx.WithClaims(context.Background(), stubClaims{userID: userID})

		assert.Equal(t, GroupSubject(userID.String()), MustSubjectFromContext(ctx))
	})
}
