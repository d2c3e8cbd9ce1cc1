// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/aruizdev/fisioclinic_backend/internal/repo/activity"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/activityassignment"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/activitybooking"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/activityschedule"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/appointment"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/auditlog"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/availability"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/clinic"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/notification"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/patient"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/physiotherapist"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/user"
	"github.com/aruizdev/fisioclinic_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityMixin := schema.Activity{}.Mixin()
	activityMixinFields0 := activityMixin[0].Fields()
	_ = activityMixinFields0
	activityMixinFields1 := activityMixin[1].Fields()
	_ = activityMixinFields1
	activityFields := schema.Activity{}.Fields()
	_ = activityFields
	// activityDescCreatedAt is the schema descriptor for created_at field.
	activityDescCreatedAt := activityMixinFields1[0].Descriptor()
	// activity.DefaultCreatedAt holds the default value on creation for the created_at field.
	activity.DefaultCreatedAt = activityDescCreatedAt.Default.(func() time.Time)
	// activityDescUpdatedAt is the schema descriptor for updated_at field.
	activityDescUpdatedAt := activityMixinFields1[1].Descriptor()
	// activity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	activity.DefaultUpdatedAt = activityDescUpdatedAt.Default.(func() time.Time)
	// activity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	activity.UpdateDefaultUpdatedAt = activityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// activityDescName is the schema descriptor for name field.
	activityDescName := activityFields[2].Descriptor()
	// activity.NameValidator is a validator for the "name" field. It is called by the builders before save.
	activity.NameValidator = func() func(string) error {
		validators := activityDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// activityDescMaxParticipants is the schema descriptor for max_participants field.
	activityDescMaxParticipants := activityFields[6].Descriptor()
	// activity.MaxParticipantsValidator is a validator for the "max_participants" field. It is called by the builders before save.
	activity.MaxParticipantsValidator = activityDescMaxParticipants.Validators[0].(func(int) error)
	// activityDescDurationMinutes is the schema descriptor for duration_minutes field.
	activityDescDurationMinutes := activityFields[7].Descriptor()
	// activity.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	activity.DurationMinutesValidator = func() func(int) error {
		validators := activityDescDurationMinutes.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(duration_minutes int) error {
			for _, fn := range fns {
				if err := fn(duration_minutes); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// activityDescLocation is the schema descriptor for location field.
	activityDescLocation := activityFields[9].Descriptor()
	// activity.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	activity.LocationValidator = activityDescLocation.Validators[0].(func(string) error)
	// activityDescIsActive is the schema descriptor for is_active field.
	activityDescIsActive := activityFields[10].Descriptor()
	// activity.DefaultIsActive holds the default value on creation for the is_active field.
	activity.DefaultIsActive = activityDescIsActive.Default.(bool)
	// activityDescID is the schema descriptor for id field.
	activityDescID := activityMixinFields0[0].Descriptor()
	// activity.DefaultID holds the default value on creation for the id field.
	activity.DefaultID = activityDescID.Default.(func() uuid.UUID)
	activityassignmentMixin := schema.ActivityAssignment{}.Mixin()
	activityassignmentMixinFields0 := activityassignmentMixin[0].Fields()
	_ = activityassignmentMixinFields0
	activityassignmentMixinFields1 := activityassignmentMixin[1].Fields()
	_ = activityassignmentMixinFields1
	activityassignmentFields := schema.ActivityAssignment{}.Fields()
	_ = activityassignmentFields
	// activityassignmentDescCreatedAt is the schema descriptor for created_at field.
	activityassignmentDescCreatedAt := activityassignmentMixinFields1[0].Descriptor()
	// activityassignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	activityassignment.DefaultCreatedAt = activityassignmentDescCreatedAt.Default.(func() time.Time)
	// activityassignmentDescIsActive is the schema descriptor for is_active field.
	activityassignmentDescIsActive := activityassignmentFields[4].Descriptor()
	// activityassignment.DefaultIsActive holds the default value on creation for the is_active field.
	activityassignment.DefaultIsActive = activityassignmentDescIsActive.Default.(bool)
	// activityassignmentDescID is the schema descriptor for id field.
	activityassignmentDescID := activityassignmentMixinFields0[0].Descriptor()
	// activityassignment.DefaultID holds the default value on creation for the id field.
	activityassignment.DefaultID = activityassignmentDescID.Default.(func() uuid.UUID)
	activitybookingMixin := schema.ActivityBooking{}.Mixin()
	activitybookingMixinFields0 := activitybookingMixin[0].Fields()
	_ = activitybookingMixinFields0
	activitybookingMixinFields1 := activitybookingMixin[1].Fields()
	_ = activitybookingMixinFields1
	activitybookingFields := schema.ActivityBooking{}.Fields()
	_ = activitybookingFields
	// activitybookingDescCreatedAt is the schema descriptor for created_at field.
	activitybookingDescCreatedAt := activitybookingMixinFields1[0].Descriptor()
	// activitybooking.DefaultCreatedAt holds the default value on creation for the created_at field.
	activitybooking.DefaultCreatedAt = activitybookingDescCreatedAt.Default.(func() time.Time)
	// activitybookingDescUpdatedAt is the schema descriptor for updated_at field.
	activitybookingDescUpdatedAt := activitybookingMixinFields1[1].Descriptor()
	// activitybooking.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	activitybooking.DefaultUpdatedAt = activitybookingDescUpdatedAt.Default.(func() time.Time)
	// activitybooking.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	activitybooking.UpdateDefaultUpdatedAt = activitybookingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// activitybookingDescID is the schema descriptor for id field.
	activitybookingDescID := activitybookingMixinFields0[0].Descriptor()
	// activitybooking.DefaultID holds the default value on creation for the id field.
	activitybooking.DefaultID = activitybookingDescID.Default.(func() uuid.UUID)
	activityscheduleMixin := schema.ActivitySchedule{}.Mixin()
	activityscheduleMixinFields0 := activityscheduleMixin[0].Fields()
	_ = activityscheduleMixinFields0
	activityscheduleMixinFields1 := activityscheduleMixin[1].Fields()
	_ = activityscheduleMixinFields1
	activityscheduleFields := schema.ActivitySchedule{}.Fields()
	_ = activityscheduleFields
	// activityscheduleDescCreatedAt is the schema descriptor for created_at field.
	activityscheduleDescCreatedAt := activityscheduleMixinFields1[0].Descriptor()
	// activityschedule.DefaultCreatedAt holds the default value on creation for the created_at field.
	activityschedule.DefaultCreatedAt = activityscheduleDescCreatedAt.Default.(func() time.Time)
	// activityscheduleDescUpdatedAt is the schema descriptor for updated_at field.
	activityscheduleDescUpdatedAt := activityscheduleMixinFields1[1].Descriptor()
	// activityschedule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	activityschedule.DefaultUpdatedAt = activityscheduleDescUpdatedAt.Default.(func() time.Time)
	// activityschedule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	activityschedule.UpdateDefaultUpdatedAt = activityscheduleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// activityscheduleDescStartTime is the schema descriptor for start_time field.
	activityscheduleDescStartTime := activityscheduleFields[2].Descriptor()
	// activityschedule.StartTimeValidator is a validator for the "start_time" field. It is called by the builders before save.
	activityschedule.StartTimeValidator = func() func(string) error {
		validators := activityscheduleDescStartTime.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(start_time string) error {
			for _, fn := range fns {
				if err := fn(start_time); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// activityscheduleDescEndTime is the schema descriptor for end_time field.
	activityscheduleDescEndTime := activityscheduleFields[3].Descriptor()
	// activityschedule.EndTimeValidator is a validator for the "end_time" field. It is called by the builders before save.
	activityschedule.EndTimeValidator = func() func(string) error {
		validators := activityscheduleDescEndTime.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(end_time string) error {
			for _, fn := range fns {
				if err := fn(end_time); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// activityscheduleDescIsActive is the schema descriptor for is_active field.
	activityscheduleDescIsActive := activityscheduleFields[6].Descriptor()
	// activityschedule.DefaultIsActive holds the default value on creation for the is_active field.
	activityschedule.DefaultIsActive = activityscheduleDescIsActive.Default.(bool)
	// activityscheduleDescID is the schema descriptor for id field.
	activityscheduleDescID := activityscheduleMixinFields0[0].Descriptor()
	// activityschedule.DefaultID holds the default value on creation for the id field.
	activityschedule.DefaultID = activityscheduleDescID.Default.(func() uuid.UUID)
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogMixinFields1 := auditlogMixin[1].Fields()
	_ = auditlogMixinFields1
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields1[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescActorKind is the schema descriptor for actor_kind field.
	auditlogDescActorKind := auditlogFields[2].Descriptor()
	// auditlog.ActorKindValidator is a validator for the "actor_kind" field. It is called by the builders before save.
	auditlog.ActorKindValidator = func() func(string) error {
		validators := auditlogDescActorKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(actor_kind string) error {
			for _, fn := range fns {
				if err := fn(actor_kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[3].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = func() func(string) error {
		validators := auditlogDescAction.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(action string) error {
			for _, fn := range fns {
				if err := fn(action); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// auditlogDescEntity is the schema descriptor for entity field.
	auditlogDescEntity := auditlogFields[4].Descriptor()
	// auditlog.EntityValidator is a validator for the "entity" field. It is called by the builders before save.
	auditlog.EntityValidator = func() func(string) error {
		validators := auditlogDescEntity.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(entity string) error {
			for _, fn := range fns {
				if err := fn(entity); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// auditlogDescID is the schema descriptor for id field.
	auditlogDescID := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultID holds the default value on creation for the id field.
	auditlog.DefaultID = auditlogDescID.Default.(func() uuid.UUID)
	availabilityMixin := schema.Availability{}.Mixin()
	availabilityMixinFields0 := availabilityMixin[0].Fields()
	_ = availabilityMixinFields0
	availabilityMixinFields1 := availabilityMixin[1].Fields()
	_ = availabilityMixinFields1
	availabilityFields := schema.Availability{}.Fields()
	_ = availabilityFields
	// availabilityDescCreatedAt is the schema descriptor for created_at field.
	availabilityDescCreatedAt := availabilityMixinFields1[0].Descriptor()
	// availability.DefaultCreatedAt holds the default value on creation for the created_at field.
	availability.DefaultCreatedAt = availabilityDescCreatedAt.Default.(func() time.Time)
	// availabilityDescUpdatedAt is the schema descriptor for updated_at field.
	availabilityDescUpdatedAt := availabilityMixinFields1[1].Descriptor()
	// availability.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	availability.DefaultUpdatedAt = availabilityDescUpdatedAt.Default.(func() time.Time)
	// availability.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	availability.UpdateDefaultUpdatedAt = availabilityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// availabilityDescStartTime is the schema descriptor for start_time field.
	availabilityDescStartTime := availabilityFields[3].Descriptor()
	// availability.StartTimeValidator is a validator for the "start_time" field. It is called by the builders before save.
	availability.StartTimeValidator = func() func(string) error {
		validators := availabilityDescStartTime.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(start_time string) error {
			for _, fn := range fns {
				if err := fn(start_time); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// availabilityDescEndTime is the schema descriptor for end_time field.
	availabilityDescEndTime := availabilityFields[4].Descriptor()
	// availability.EndTimeValidator is a validator for the "end_time" field. It is called by the builders before save.
	availability.EndTimeValidator = func() func(string) error {
		validators := availabilityDescEndTime.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(end_time string) error {
			for _, fn := range fns {
				if err := fn(end_time); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// availabilityDescIsActive is the schema descriptor for is_active field.
	availabilityDescIsActive := availabilityFields[5].Descriptor()
	// availability.DefaultIsActive holds the default value on creation for the is_active field.
	availability.DefaultIsActive = availabilityDescIsActive.Default.(bool)
	// availabilityDescID is the schema descriptor for id field.
	availabilityDescID := availabilityMixinFields0[0].Descriptor()
	// availability.DefaultID holds the default value on creation for the id field.
	availability.DefaultID = availabilityDescID.Default.(func() uuid.UUID)
	clinicMixin := schema.Clinic{}.Mixin()
	clinicMixinFields0 := clinicMixin[0].Fields()
	_ = clinicMixinFields0
	clinicMixinFields1 := clinicMixin[1].Fields()
	_ = clinicMixinFields1
	clinicFields := schema.Clinic{}.Fields()
	_ = clinicFields
	// clinicDescCreatedAt is the schema descriptor for created_at field.
	clinicDescCreatedAt := clinicMixinFields1[0].Descriptor()
	// clinic.DefaultCreatedAt holds the default value on creation for the created_at field.
	clinic.DefaultCreatedAt = clinicDescCreatedAt.Default.(func() time.Time)
	// clinicDescUpdatedAt is the schema descriptor for updated_at field.
	clinicDescUpdatedAt := clinicMixinFields1[1].Descriptor()
	// clinic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clinic.DefaultUpdatedAt = clinicDescUpdatedAt.Default.(func() time.Time)
	// clinic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clinic.UpdateDefaultUpdatedAt = clinicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clinicDescName is the schema descriptor for name field.
	clinicDescName := clinicFields[0].Descriptor()
	// clinic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	clinic.NameValidator = func() func(string) error {
		validators := clinicDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicDescSlug is the schema descriptor for slug field.
	clinicDescSlug := clinicFields[1].Descriptor()
	// clinic.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	clinic.SlugValidator = func() func(string) error {
		validators := clinicDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicDescPhone is the schema descriptor for phone field.
	clinicDescPhone := clinicFields[3].Descriptor()
	// clinic.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	clinic.PhoneValidator = clinicDescPhone.Validators[0].(func(string) error)
	// clinicDescCity is the schema descriptor for city field.
	clinicDescCity := clinicFields[5].Descriptor()
	// clinic.CityValidator is a validator for the "city" field. It is called by the builders before save.
	clinic.CityValidator = clinicDescCity.Validators[0].(func(string) error)
	// clinicDescIsActive is the schema descriptor for is_active field.
	clinicDescIsActive := clinicFields[6].Descriptor()
	// clinic.DefaultIsActive holds the default value on creation for the is_active field.
	clinic.DefaultIsActive = clinicDescIsActive.Default.(bool)
	// clinicDescID is the schema descriptor for id field.
	clinicDescID := clinicMixinFields0[0].Descriptor()
	// clinic.DefaultID holds the default value on creation for the id field.
	clinic.DefaultID = clinicDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[1].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = func() func(string) error {
		validators := notificationDescType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_type string) error {
			for _, fn := range fns {
				if err := fn(_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[5].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescFirstName is the schema descriptor for first_name field.
	patientDescFirstName := patientFields[2].Descriptor()
	// patient.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	patient.FirstNameValidator = func() func(string) error {
		validators := patientDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescLastName is the schema descriptor for last_name field.
	patientDescLastName := patientFields[3].Descriptor()
	// patient.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	patient.LastNameValidator = func() func(string) error {
		validators := patientDescLastName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(last_name string) error {
			for _, fn := range fns {
				if err := fn(last_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescPhone is the schema descriptor for phone field.
	patientDescPhone := patientFields[4].Descriptor()
	// patient.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	patient.PhoneValidator = patientDescPhone.Validators[0].(func(string) error)
	// patientDescIsActive is the schema descriptor for is_active field.
	patientDescIsActive := patientFields[7].Descriptor()
	// patient.DefaultIsActive holds the default value on creation for the is_active field.
	patient.DefaultIsActive = patientDescIsActive.Default.(bool)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	physiotherapistMixin := schema.Physiotherapist{}.Mixin()
	physiotherapistMixinFields0 := physiotherapistMixin[0].Fields()
	_ = physiotherapistMixinFields0
	physiotherapistMixinFields1 := physiotherapistMixin[1].Fields()
	_ = physiotherapistMixinFields1
	physiotherapistFields := schema.Physiotherapist{}.Fields()
	_ = physiotherapistFields
	// physiotherapistDescCreatedAt is the schema descriptor for created_at field.
	physiotherapistDescCreatedAt := physiotherapistMixinFields1[0].Descriptor()
	// physiotherapist.DefaultCreatedAt holds the default value on creation for the created_at field.
	physiotherapist.DefaultCreatedAt = physiotherapistDescCreatedAt.Default.(func() time.Time)
	// physiotherapistDescUpdatedAt is the schema descriptor for updated_at field.
	physiotherapistDescUpdatedAt := physiotherapistMixinFields1[1].Descriptor()
	// physiotherapist.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	physiotherapist.DefaultUpdatedAt = physiotherapistDescUpdatedAt.Default.(func() time.Time)
	// physiotherapist.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	physiotherapist.UpdateDefaultUpdatedAt = physiotherapistDescUpdatedAt.UpdateDefault.(func() time.Time)
	// physiotherapistDescSpecialty is the schema descriptor for specialty field.
	physiotherapistDescSpecialty := physiotherapistFields[2].Descriptor()
	// physiotherapist.SpecialtyValidator is a validator for the "specialty" field. It is called by the builders before save.
	physiotherapist.SpecialtyValidator = physiotherapistDescSpecialty.Validators[0].(func(string) error)
	// physiotherapistDescLicenseNumber is the schema descriptor for license_number field.
	physiotherapistDescLicenseNumber := physiotherapistFields[3].Descriptor()
	// physiotherapist.LicenseNumberValidator is a validator for the "license_number" field. It is called by the builders before save.
	physiotherapist.LicenseNumberValidator = physiotherapistDescLicenseNumber.Validators[0].(func(string) error)
	// physiotherapistDescIsActive is the schema descriptor for is_active field.
	physiotherapistDescIsActive := physiotherapistFields[5].Descriptor()
	// physiotherapist.DefaultIsActive holds the default value on creation for the is_active field.
	physiotherapist.DefaultIsActive = physiotherapistDescIsActive.Default.(bool)
	// physiotherapistDescID is the schema descriptor for id field.
	physiotherapistDescID := physiotherapistMixinFields0[0].Descriptor()
	// physiotherapist.DefaultID holds the default value on creation for the id field.
	physiotherapist.DefaultID = physiotherapistDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[2].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = func() func(string) error {
		validators := userDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[3].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = func() func(string) error {
		validators := userDescLastName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(last_name string) error {
			for _, fn := range fns {
				if err := fn(last_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[4].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[7].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
