package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // run, trigger, start, stop, etc.

	// Scheduling lifecycle actions
	ActionBook     Action = "book"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionBook: {}, ActionCancel: {}, ActionComplete: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser        Resource = "user"
	ResourceAuthSession Resource = "auth_session"

	// Clinic (tenant management)
	ResourceClinic Resource = "clinic"

	// People
	ResourcePatient         Resource = "patient"
	ResourcePhysiotherapist Resource = "physiotherapist"

	// Scheduling
	ResourceAvailability    Resource = "availability"
	ResourceAppointment     Resource = "appointment"
	ResourceActivity        Resource = "activity"
	ResourceActivitySchedule Resource = "activity_schedule"
	ResourceActivityBooking Resource = "activity_booking"
	ResourceCalendar        Resource = "calendar"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {},
	ResourceClinic: {},
	ResourcePatient: {}, ResourcePhysiotherapist: {},
	ResourceAvailability: {}, ResourceAppointment: {},
	ResourceActivity: {}, ResourceActivitySchedule: {}, ResourceActivityBooking: {},
	ResourceCalendar: {},
	ResourceSystem:  {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RolePlatformSuperAdmin Role = "role:platform:superadmin"

	// Clinic roles (domain = clinic:<uuid>)
	RoleClinicOwner   Role = "role:clinic:owner"
	RoleClinicAdmin   Role = "role:clinic:admin"
	RoleClinicPhysio  Role = "role:clinic:physio"
	RoleClinicPatient Role = "role:clinic:patient"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RolePlatformSuperAdmin: {},
	RoleClinicOwner:        {},
	RoleClinicAdmin:        {},
	RoleClinicPhysio:       {},
	RoleClinicPatient:      {},
	RoleUserSelf:           {},
}

// Display names for admin UIs
var RoleDisplayNames = map[Role]string{
	RolePlatformSuperAdmin: "Platform super admin",
	RoleClinicOwner:        "Clinic owner",
	RoleClinicAdmin:        "Clinic admin",
	RoleClinicPhysio:       "Physiotherapist",
	RoleClinicPatient:      "Patient",
	RoleUserSelf:           "Self",
}

// User role strings (stored in DB users.role column)
const (
	UserRolePatient     = "patient"
	UserRolePractitioner = "practitioner"
	UserRoleClinicAdmin = "clinic_admin"
	UserRoleSuperAdmin  = "super_admin"
)

// UserRoleToRBACRole maps DB role values to Casbin roles
var UserRoleToRBACRole = map[string]Role{
	UserRolePatient:      RoleClinicPatient,
	UserRolePractitioner: RoleClinicPhysio,
	UserRoleClinicAdmin:  RoleClinicAdmin,
	UserRoleSuperAdmin:   RolePlatformSuperAdmin,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixClinic Domain = "clinic:"
	DomainPrefixUser   Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// Domain builders (typed, safe)
func ClinicDomain(clinicID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixClinic, clinicID))
}

func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	switch {
	case len(s) > len(DomainPrefixClinic) && s[:len(DomainPrefixClinic)] == string(DomainPrefixClinic):
		return reUUID.MatchString(s[len(DomainPrefixClinic):])
	case len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser):
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	default:
		return false
	}
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
