package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		// Valid domains
		{"sys domain", DomainSys, true},
		{"wildcard domain", WildcardDomain, true},
		{"valid clinic domain", Domain("clinic:550e8400-e29b-41d4-a716-446655440000"), true},
		{"valid user domain", Domain("user:550e8400-e29b-41d4-a716-446655440000"), true},

		// Invalid domains
		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"clinic without uuid", Domain("clinic:"), false},
		{"clinic with invalid uuid", Domain("clinic:invalid-uuid"), false},
		{"user without uuid", Domain("user:"), false},
		{"user with invalid uuid", Domain("user:not-a-uuid"), false},
		{"unknown prefix", Domain("unknown:550e8400-e29b-41d4-a716-446655440000"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestClinicDomain(t *testing.T) {
	clinicID := "550e8400-e29b-41d4-a716-446655440000"
	expected := Domain("clinic:550e8400-e29b-41d4-a716-446655440000")

	result := ClinicDomain(clinicID)
	if result != expected {
		t.Errorf("ClinicDomain(%q) = %q, want %q", clinicID, result, expected)
	}
}

func TestUserDomain(t *testing.T) {
	userID := "550e8400-e29b-41d4-a716-446655440000"
	expected := Domain("user:550e8400-e29b-41d4-a716-446655440000")

	result := UserDomain(userID)
	if result != expected {
		t.Errorf("UserDomain(%q) = %q, want %q", userID, result, expected)
	}
}

func TestKnownActions(t *testing.T) {
	// Verify all expected actions are in the known map
	expectedActions := []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
		ActionManage, ActionExecute,
		ActionBook, ActionCancel, ActionComplete,
		ActionGrant, ActionRevoke,
	}

	for _, action := range expectedActions {
		if _, ok := KnownActions[action]; !ok {
			t.Errorf("Expected action %q to be in KnownActions", action)
		}
	}
}

func TestKnownResources(t *testing.T) {
	// Verify all expected resources are in the known map
	expectedResources := []Resource{
		ResourceUser, ResourceAuthSession,
		ResourceClinic,
		ResourcePatient, ResourcePhysiotherapist,
		ResourceAvailability, ResourceAppointment,
		ResourceActivity, ResourceActivitySchedule, ResourceActivityBooking,
		ResourceCalendar,
		ResourceSystem, ResourceAudit, ResourceRBAC,
	}

	for _, resource := range expectedResources {
		if _, ok := KnownResources[resource]; !ok {
			t.Errorf("Expected resource %q to be in KnownResources", resource)
		}
	}
}

func TestKnownRoles(t *testing.T) {
	// Verify all expected roles are in the known map
	expectedRoles := []Role{
		RolePlatformSuperAdmin,
		RoleClinicOwner, RoleClinicAdmin, RoleClinicPhysio, RoleClinicPatient,
		RoleUserSelf,
	}

	for _, role := range expectedRoles {
		if _, ok := KnownRoles[role]; !ok {
			t.Errorf("Expected role %q to be in KnownRoles", role)
		}
	}
}

func TestUserRoleToRBACRole(t *testing.T) {
	tests := []struct {
		dbRole string
		want   Role
	}{
		{UserRolePatient, RoleClinicPatient},
		{UserRolePractitioner, RoleClinicPhysio},
		{UserRoleClinicAdmin, RoleClinicAdmin},
		{UserRoleSuperAdmin, RolePlatformSuperAdmin},
	}

	for _, tt := range tests {
		got, ok := UserRoleToRBACRole[tt.dbRole]
		if !ok {
			t.Errorf("Expected DB role %q to be mapped", tt.dbRole)
			continue
		}
		if got != tt.want {
			t.Errorf("UserRoleToRBACRole[%q] = %q, want %q", tt.dbRole, got, tt.want)
		}
	}
}
