package app

import (
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/aruizdev/fisioclinic_backend/config"
	"github.com/aruizdev/fisioclinic_backend/internal/audit"
	"github.com/aruizdev/fisioclinic_backend/internal/repo"
	"github.com/aruizdev/fisioclinic_backend/internal/service/activity"
	"github.com/aruizdev/fisioclinic_backend/internal/service/appointment"
	"github.com/aruizdev/fisioclinic_backend/internal/service/auth"
	"github.com/aruizdev/fisioclinic_backend/internal/service/calendar"
	"github.com/aruizdev/fisioclinic_backend/internal/service/clinic"
	"github.com/aruizdev/fisioclinic_backend/internal/service/notification"
	"github.com/aruizdev/fisioclinic_backend/internal/service/patient"
	"github.com/aruizdev/fisioclinic_backend/internal/service/physiotherapist"
	"github.com/aruizdev/fisioclinic_backend/internal/service/user"
	"github.com/aruizdev/fisioclinic_backend/pkg/authorize"
	"github.com/aruizdev/fisioclinic_backend/pkg/lock"
	pasetotoken "github.com/aruizdev/fisioclinic_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuditRecorder,
		ProvideUserService,
		ProvideAuthService,
		ProvideClinicService,
		ProvidePatientService,
		ProvidePhysiotherapistService,
		ProvideAppointmentService,
		ProvideActivityService,
		ProvideCalendarService,
		ProvideNotificationService,
	),
)

func ProvideAuditRecorder(db *repo.Client) audit.Recorder {
	return audit.New(db, slog.Default())
}

func ProvideUserService(db *repo.Client, authz authorize.IAuthorization) user.Service {
	return user.New(db, authz)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, cfg)
}

func ProvideClinicService(db *repo.Client) clinic.Service {
	return clinic.New(db)
}

func ProvidePatientService(db *repo.Client, auditor audit.Recorder) patient.Service {
	return patient.New(db, auditor)
}

func ProvidePhysiotherapistService(db *repo.Client, auditor audit.Recorder) physiotherapist.Service {
	return physiotherapist.New(db, auditor)
}

func ProvideAppointmentService(db *repo.Client, locker lock.Locker, auditor audit.Recorder, nc *nats.Conn) appointment.Service {
	return appointment.New(db, locker, auditor, nc)
}

func ProvideActivityService(db *repo.Client, locker lock.Locker, auditor audit.Recorder, nc *nats.Conn) activity.Service {
	return activity.New(db, locker, auditor, nc)
}

func ProvideCalendarService(db *repo.Client) calendar.Service {
	return calendar.New(db, slog.Default())
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}
