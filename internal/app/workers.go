package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/aruizdev/fisioclinic_backend/internal/repo"
	entassign "github.com/aruizdev/fisioclinic_backend/internal/repo/activityassignment"
	entbooking "github.com/aruizdev/fisioclinic_backend/internal/repo/activitybooking"
	entappt "github.com/aruizdev/fisioclinic_backend/internal/repo/appointment"
	entpatient "github.com/aruizdev/fisioclinic_backend/internal/repo/patient"
	entphysio "github.com/aruizdev/fisioclinic_backend/internal/repo/physiotherapist"
	"github.com/aruizdev/fisioclinic_backend/internal/service/activity"
	"github.com/aruizdev/fisioclinic_backend/internal/service/appointment"
	"github.com/aruizdev/fisioclinic_backend/internal/service/notification"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	NC       *nats.Conn
	DB       *repo.Client
	NotifSvc notification.Service
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startNotificationWorker(p.NC, p.DB, p.NotifSvc)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// notification_worker
// ---------------------------------------------------------------------------

// startNotificationWorker turns scheduling events into in-app notifications.
// Every handler is best-effort: a failed lookup logs and drops the event.
func startNotificationWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service) {
	_, err := nc.Subscribe(appointment.SubjectCreated, func(msg *nats.Msg) {
		apptID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}
		ctx := context.Background()

		appt, err := db.Appointment.Query().
			Where(entappt.ID(apptID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: appointment not found", "id", apptID, "err", err)
			return
		}

		data := map[string]any{"appointment_id": appt.ID.String()}
		notifyPhysio(ctx, db, notifSvc, appt.PhysiotherapistID, "appointment_created", "New appointment scheduled", data)
		notifyPatient(ctx, db, notifSvc, appt.PatientID, "appointment_created", "Your appointment is scheduled", data)
	})
	if err != nil {
		slog.Error("notification_worker: subscribe appointment.created failed", "err", err)
	}

	_, err = nc.Subscribe(appointment.SubjectCancelled, func(msg *nats.Msg) {
		apptID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}
		ctx := context.Background()

		appt, err := db.Appointment.Query().
			Where(entappt.ID(apptID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: appointment not found", "id", apptID, "err", err)
			return
		}

		data := map[string]any{"appointment_id": appt.ID.String()}
		notifyPhysio(ctx, db, notifSvc, appt.PhysiotherapistID, "appointment_cancelled", "Appointment cancelled", data)
		notifyPatient(ctx, db, notifSvc, appt.PatientID, "appointment_cancelled", "Your appointment was cancelled", data)
	})
	if err != nil {
		slog.Error("notification_worker: subscribe appointment.cancelled failed", "err", err)
	}

	_, err = nc.Subscribe(activity.SubjectBookingCreated, func(msg *nats.Msg) {
		bookingID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}
		ctx := context.Background()

		booking, err := db.ActivityBooking.Query().
			Where(entbooking.ID(bookingID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: booking not found", "id", bookingID, "err", err)
			return
		}

		// Fan out to every practitioner leading the activity.
		assignments, err := db.ActivityAssignment.Query().
			Where(
				entassign.ActivityID(booking.ActivityID),
				entassign.IsActive(true),
			).
			All(ctx)
		if err != nil {
			slog.Warn("notification_worker: list assignments failed", "activity_id", booking.ActivityID, "err", err)
			return
		}

		data := map[string]any{
			"booking_id":  booking.ID.String(),
			"activity_id": booking.ActivityID.String(),
		}
		for _, as := range assignments {
			notifyPhysio(ctx, db, notifSvc, as.PhysiotherapistID, "booking_created", "New group session booking", data)
		}
	})
	if err != nil {
		slog.Error("notification_worker: subscribe booking.created failed", "err", err)
	}

	slog.Info("notification_worker: started")
}

func notifyPhysio(ctx context.Context, db *repo.Client, notifSvc notification.Service, physioID uuid.UUID, typ, title string, data map[string]any) {
	p, err := db.Physiotherapist.Query().
		Where(entphysio.ID(physioID)).
		Only(ctx)
	if err != nil {
		slog.Warn("notification_worker: physiotherapist not found", "id", physioID, "err", err)
		return
	}
	if _, err := notifSvc.Create(ctx, notification.CreateRequest{
		UserID: p.UserID,
		Type:   typ,
		Title:  title,
		Data:   data,
	}); err != nil {
		slog.Warn("notification_worker: create notification failed", "err", err)
	}
}

func notifyPatient(ctx context.Context, db *repo.Client, notifSvc notification.Service, patientID uuid.UUID, typ, title string, data map[string]any) {
	p, err := db.Patient.Query().
		Where(entpatient.ID(patientID)).
		Only(ctx)
	if err != nil {
		slog.Warn("notification_worker: patient not found", "id", patientID, "err", err)
		return
	}
	// Patients without a linked account have nowhere to receive in-app
	// notifications.
	if p.UserID == nil {
		return
	}
	if _, err := notifSvc.Create(ctx, notification.CreateRequest{
		UserID: *p.UserID,
		Type:   typ,
		Title:  title,
		Data:   data,
	}); err != nil {
		slog.Warn("notification_worker: create notification failed", "err", err)
	}
}
