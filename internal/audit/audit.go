// Package audit records every mutating operation as an AuditLog row. Writes
// are best-effort: a failed audit write is logged and never fails the
// mutation it describes.
package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aruizdev/fisioclinic_backend/internal/actor"
	"github.com/aruizdev/fisioclinic_backend/internal/repo"
)

// Recorder writes audit entries.
type Recorder interface {
	Record(ctx context.Context, a actor.Actor, action, entity string, entityID uuid.UUID, metadata map[string]any)
}

type recorder struct {
	db     *repo.Client
	logger *slog.Logger
}

func New(db *repo.Client, logger *slog.Logger) Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &recorder{db: db, logger: logger}
}

func (r *recorder) Record(ctx context.Context, a actor.Actor, action, entity string, entityID uuid.UUID, metadata map[string]any) {
	// Detach from request cancellation so a late write still lands.
	ctx = context.WithoutCancel(ctx)

	c := r.db.AuditLog.Create().
		SetActorUserID(a.UserID).
		SetActorKind(string(a.Kind)).
		SetAction(action).
		SetEntity(entity).
		SetEntityID(entityID)

	if a.ClinicID != uuid.Nil {
		c = c.SetClinicID(a.ClinicID)
	}
	if len(metadata) > 0 {
		c = c.SetMetadata(metadata)
	}

	if _, err := c.Save(ctx); err != nil {
		r.logger.Warn("audit write failed",
			"action", action,
			"entity", entity,
			"entity_id", entityID,
			"error", err,
		)
		return
	}

	r.logger.Info("audit",
		"action", action,
		"entity", entity,
		"entity_id", entityID,
		"actor_kind", string(a.Kind),
		"actor_user_id", a.UserID,
	)
}
