// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivitiesColumns holds the columns for the "activities" table.
	ActivitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "physiotherapist_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 150},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"pilates", "yoga", "rehabilitation", "functional_training", "other"}, Default: "other"},
		{Name: "difficulty", Type: field.TypeEnum, Enums: []string{"beginner", "intermediate", "advanced"}, Default: "beginner"},
		{Name: "max_participants", Type: field.TypeInt},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "price_cents", Type: field.TypeInt64, Nullable: true},
		{Name: "location", Type: field.TypeString, Nullable: true, Size: 150},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// ActivitiesTable holds the schema information for the "activities" table.
	ActivitiesTable = &schema.Table{
		Name:       "activities",
		Columns:    ActivitiesColumns,
		PrimaryKey: []*schema.Column{ActivitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activity_clinic_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[4], ActivitiesColumns[14]},
			},
			{
				Name:    "activity_physiotherapist_id",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[5]},
			},
		},
	}
	// ActivityAssignmentsColumns holds the columns for the "activity_assignments" table.
	ActivityAssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "activity_id", Type: field.TypeUUID},
		{Name: "physiotherapist_id", Type: field.TypeUUID},
		{Name: "assigned_by", Type: field.TypeUUID, Nullable: true},
		{Name: "assigned_at", Type: field.TypeTime},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// ActivityAssignmentsTable holds the schema information for the "activity_assignments" table.
	ActivityAssignmentsTable = &schema.Table{
		Name:       "activity_assignments",
		Columns:    ActivityAssignmentsColumns,
		PrimaryKey: []*schema.Column{ActivityAssignmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activityassignment_activity_id_physiotherapist_id",
				Unique:  true,
				Columns: []*schema.Column{ActivityAssignmentsColumns[2], ActivityAssignmentsColumns[3]},
			},
			{
				Name:    "activityassignment_physiotherapist_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{ActivityAssignmentsColumns[3], ActivityAssignmentsColumns[6]},
			},
		},
	}
	// ActivityBookingsColumns holds the columns for the "activity_bookings" table.
	ActivityBookingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "activity_id", Type: field.TypeUUID},
		{Name: "schedule_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "session_date", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "attended", "cancelled", "no_show"}, Default: "confirmed"},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancelled_by", Type: field.TypeUUID, Nullable: true},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// ActivityBookingsTable holds the schema information for the "activity_bookings" table.
	ActivityBookingsTable = &schema.Table{
		Name:       "activity_bookings",
		Columns:    ActivityBookingsColumns,
		PrimaryKey: []*schema.Column{ActivityBookingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activitybooking_activity_id_session_date",
				Unique:  false,
				Columns: []*schema.Column{ActivityBookingsColumns[3], ActivityBookingsColumns[6]},
			},
			{
				Name:    "activitybooking_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{ActivityBookingsColumns[5], ActivityBookingsColumns[7]},
			},
			{
				Name:    "activitybooking_schedule_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityBookingsColumns[4]},
			},
		},
	}
	// ActivitySchedulesColumns holds the columns for the "activity_schedules" table.
	ActivitySchedulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "activity_id", Type: field.TypeUUID},
		{Name: "day_of_week", Type: field.TypeEnum, Enums: []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}},
		{Name: "start_time", Type: field.TypeString, Size: 5},
		{Name: "end_time", Type: field.TypeString, Size: 5},
		{Name: "start_date", Type: field.TypeTime, Nullable: true},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// ActivitySchedulesTable holds the schema information for the "activity_schedules" table.
	ActivitySchedulesTable = &schema.Table{
		Name:       "activity_schedules",
		Columns:    ActivitySchedulesColumns,
		PrimaryKey: []*schema.Column{ActivitySchedulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activityschedule_activity_id_day_of_week",
				Unique:  false,
				Columns: []*schema.Column{ActivitySchedulesColumns[3], ActivitySchedulesColumns[4]},
			},
		},
	}
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "physiotherapist_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "completed", "cancelled"}, Default: "pending"},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancelled_by", Type: field.TypeUUID, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_clinic_id_physiotherapist_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[4], AppointmentsColumns[6]},
			},
			{
				Name:    "appointment_clinic_id_patient_id",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[5]},
			},
			{
				Name:    "appointment_physiotherapist_id_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[8], AppointmentsColumns[6]},
			},
			{
				Name:    "appointment_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[5], AppointmentsColumns[8]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID, Nullable: true},
		{Name: "actor_user_id", Type: field.TypeUUID},
		{Name: "actor_kind", Type: field.TypeString, Size: 30},
		{Name: "action", Type: field.TypeString, Size: 60},
		{Name: "entity", Type: field.TypeString, Size: 60},
		{Name: "entity_id", Type: field.TypeUUID},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_clinic_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2], AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_entity_entity_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[6], AuditLogsColumns[7]},
			},
		},
	}
	// AvailabilitiesColumns holds the columns for the "availabilities" table.
	AvailabilitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "physiotherapist_id", Type: field.TypeUUID},
		{Name: "day_of_week", Type: field.TypeEnum, Enums: []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}},
		{Name: "start_time", Type: field.TypeString, Size: 5},
		{Name: "end_time", Type: field.TypeString, Size: 5},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// AvailabilitiesTable holds the schema information for the "availabilities" table.
	AvailabilitiesTable = &schema.Table{
		Name:       "availabilities",
		Columns:    AvailabilitiesColumns,
		PrimaryKey: []*schema.Column{AvailabilitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "availability_physiotherapist_id_day_of_week",
				Unique:  true,
				Columns: []*schema.Column{AvailabilitiesColumns[4], AvailabilitiesColumns[5]},
			},
			{
				Name:    "availability_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{AvailabilitiesColumns[3]},
			},
		},
	}
	// ClinicsColumns holds the columns for the "clinics" table.
	ClinicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// ClinicsTable holds the schema information for the "clinics" table.
	ClinicsTable = &schema.Table{
		Name:       "clinics",
		Columns:    ClinicsColumns,
		PrimaryKey: []*schema.Column{ClinicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clinic_slug",
				Unique:  false,
				Columns: []*schema.Column{ClinicsColumns[5]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString, Size: 60},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_is_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[7]},
			},
			{
				Name:    "notification_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[1]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[4]},
			},
			{
				Name:    "patient_user_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[5]},
			},
		},
	}
	// PhysiotherapistsColumns holds the columns for the "physiotherapists" table.
	PhysiotherapistsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "specialty", Type: field.TypeString, Nullable: true, Size: 150},
		{Name: "license_number", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// PhysiotherapistsTable holds the schema information for the "physiotherapists" table.
	PhysiotherapistsTable = &schema.Table{
		Name:       "physiotherapists",
		Columns:    PhysiotherapistsColumns,
		PrimaryKey: []*schema.Column{PhysiotherapistsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "physiotherapist_clinic_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{PhysiotherapistsColumns[4], PhysiotherapistsColumns[9]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"patient", "practitioner", "clinic_admin", "super_admin"}},
		{Name: "clinic_id", Type: field.TypeUUID, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
			{
				Name:    "user_clinic_id_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[10], UsersColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivitiesTable,
		ActivityAssignmentsTable,
		ActivityBookingsTable,
		ActivitySchedulesTable,
		AppointmentsTable,
		AuditLogsTable,
		AvailabilitiesTable,
		ClinicsTable,
		NotificationsTable,
		PatientsTable,
		PhysiotherapistsTable,
		UsersTable,
	}
)

func init() {
}
