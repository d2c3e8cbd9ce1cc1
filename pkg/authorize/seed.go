package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RolePlatformSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Clinic-level policies (domain: clinic:*)
	clinicPolicies := []PermissionPolicy{
		// Owner: full control within the clinic
		{RoleClinicOwner, WildcardDomain, WildcardResource, ActionManage, EffectAllow},
		{RoleClinicOwner, WildcardDomain, ResourceRBAC, ActionGrant, EffectAllow},
		{RoleClinicOwner, WildcardDomain, ResourceRBAC, ActionRevoke, EffectAllow},

		// Admin: manage scheduling and people but not RBAC
		{RoleClinicAdmin, WildcardDomain, ResourcePatient, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourcePhysiotherapist, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceAvailability, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceAppointment, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceActivity, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceActivitySchedule, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceActivityBooking, ActionManage, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceCalendar, ActionRead, EffectAllow},
		{RoleClinicAdmin, WildcardDomain, ResourceAudit, ActionRead, EffectAllow},

		// Physio: own availability and calendar, appointments they run
		{RoleClinicPhysio, WildcardDomain, ResourceAvailability, ActionManage, EffectAllow},
		{RoleClinicPhysio, WildcardDomain, ResourceCalendar, ActionRead, EffectAllow},
		{RoleClinicPhysio, WildcardDomain, ResourceAppointment, ActionBook, EffectAllow},
		{RoleClinicPhysio, WildcardDomain, ResourceAppointment, ActionRead, EffectAllow},
		{RoleClinicPhysio, WildcardDomain, ResourceAppointment, ActionUpdate, EffectAllow},
		{RoleClinicPhysio, WildcardDomain, ResourceAppointment, ActionCancel, EffectAllow},
		{RoleClinicPhysio, WildcardDomain, ResourceAppointment, ActionComplete, EffectAllow},
		{RoleClinicPhysio, WildcardDomain, ResourceAppointment, ActionList, EffectAllow},
		{RoleClinicPhysio, WildcardDomain, ResourceActivity, ActionRead, EffectAllow},
		{RoleClinicPhysio, WildcardDomain, ResourceActivity, ActionList, EffectAllow},
		{RoleClinicPhysio, WildcardDomain, ResourceActivityBooking, ActionRead, EffectAllow},
		{RoleClinicPhysio, WildcardDomain, ResourceActivityBooking, ActionList, EffectAllow},
		{RoleClinicPhysio, WildcardDomain, ResourceActivityBooking, ActionUpdate, EffectAllow},
		{RoleClinicPhysio, WildcardDomain, ResourcePatient, ActionRead, EffectAllow},
		{RoleClinicPhysio, WildcardDomain, ResourcePatient, ActionList, EffectAllow},

		// Patient: book and read own things; ownership is enforced in the
		// service layer on top of these coarse grants
		{RoleClinicPatient, WildcardDomain, ResourcePhysiotherapist, ActionRead, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourcePhysiotherapist, ActionList, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceActivity, ActionRead, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceActivity, ActionList, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceActivitySchedule, ActionRead, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceAppointment, ActionBook, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceAppointment, ActionRead, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceAppointment, ActionList, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceAppointment, ActionCancel, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceActivityBooking, ActionBook, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceActivityBooking, ActionRead, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceActivityBooking, ActionCancel, EffectAllow},
		{RoleClinicPatient, WildcardDomain, ResourceCalendar, ActionRead, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, clinicPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignClinicRole assigns a clinic role to a user for a specific clinic.
// Valid roles: RoleClinicOwner, RoleClinicAdmin, RoleClinicPhysio, RoleClinicPatient.
func AssignClinicRole(ctx context.Context, auth IAuthorization, userID, clinicID string, role Role) error {
	switch role {
	case RoleClinicOwner, RoleClinicAdmin, RoleClinicPhysio, RoleClinicPatient:
		// valid clinic roles
	default:
		return ErrInvalidArgs
	}

	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// RemoveClinicRole removes a clinic role from a user for a specific clinic.
func RemoveClinicRole(ctx context.Context, auth IAuthorization, userID, clinicID string, role Role) error {
	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// GetClinicRoles returns all roles a user has in a specific clinic.
func GetClinicRoles(ctx context.Context, auth IAuthorization, userID, clinicID string) ([]Role, error) {
	domain := ClinicDomain(clinicID)
	subject := GroupSubject(userID)

	return auth.GetRolesForUserInDomain(ctx, subject, domain)
}

// AssignSuperAdminRole grants the platform superadmin role.
// Assign with caution; there is intentionally no programmatic bulk path.
func AssignSuperAdminRole(ctx context.Context, auth IAuthorization, userID string) error {
	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, RolePlatformSuperAdmin, DomainSys)
	return err
}
