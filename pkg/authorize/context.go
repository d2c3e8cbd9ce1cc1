package authorize

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/pkg/reqctx"
)

var ErrNoSubjectInContext = errors.New("no subject found in context")

// SubjectFromContext builds the casbin subject from the claims the auth
// middleware stored via reqctx.WithClaims.
func SubjectFromContext(ctx context.Context) (GroupSubject, error) {
	userID, ok := reqctx.UserIDFromContext(ctx)
	if !ok || userID == uuid.Nil {
		return "", ErrNoSubjectInContext
	}
	return GroupSubject(userID.String()), nil
}

// MustSubjectFromContext extracts the subject or panics. Use only behind the
// auth middleware.
func MustSubjectFromContext(ctx context.Context) GroupSubject {
	subject, err := SubjectFromContext(ctx)
	if err != nil {
		panic(err)
	}
	return subject
}
