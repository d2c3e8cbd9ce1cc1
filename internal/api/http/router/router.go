package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/aruizdev/fisioclinic_backend/config"
	"github.com/aruizdev/fisioclinic_backend/internal/api/http/handler"
	"github.com/aruizdev/fisioclinic_backend/internal/api/http/middleware"
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
	pasetotoken "github.com/aruizdev/fisioclinic_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	DB              *repo.Client
	UserSvc         user.Service
	AuthSvc         auth.Service
	ClinicSvc       clinic.Service
	PatientSvc      patient.Service
	PhysioSvc       physiotherapist.Service
	AppointmentSvc  appointment.Service
	ActivitySvc     activity.Service
	CalendarSvc     calendar.Service
	NotificationSvc notification.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	resolveActor := middleware.ResolveActor(r.p.DB)
	clinicScope := middleware.ClinicScope(r.p.DB)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	clinicH := handler.NewClinicHandler(r.p.ClinicSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	physioH := handler.NewPhysiotherapistHandler(r.p.PhysioSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	activityH := handler.NewActivityHandler(r.p.ActivitySvc)
	calendarH := handler.NewCalendarHandler(r.p.CalendarSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, resolveActor, clinicScope, requirePerm)
	r.registerClinicRoutes(api, clinicH, authRequired, resolveActor)
	r.registerPatientRoutes(api, patientH, authRequired, resolveActor, clinicScope, requirePerm)
	r.registerPhysiotherapistRoutes(api, physioH, authRequired, resolveActor, clinicScope, requirePerm)
	r.registerAppointmentRoutes(api, appointmentH, authRequired, resolveActor, clinicScope, requirePerm)
	r.registerActivityRoutes(api, activityH, authRequired, resolveActor, clinicScope, requirePerm)
	r.registerCalendarRoutes(api, calendarH, authRequired, resolveActor, clinicScope, requirePerm)
	r.registerNotificationRoutes(api, notificationH, authRequired, resolveActor)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
