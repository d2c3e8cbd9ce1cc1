package actor

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	clinicA = uuid.New()
	clinicB = uuid.New()
)

func TestParseKind(t *testing.T) {
	for _, s := range []string{"patient", "practitioner", "clinic_admin", "super_admin"} {
		k, err := ParseKind(s)
		require.NoError(t, err, s)
		assert.Equal(t, Kind(s), k)
	}

	_, err := ParseKind("doctor")
	assert.Error(t, err)
	_, err = ParseKind("")
	assert.Error(t, err)
}

func TestKindPredicates(t *testing.T) {
	p := Patient(uuid.New(), uuid.New(), clinicA)
	pr := Practitioner(uuid.New(), uuid.New(), clinicA)
	ad := ClinicAdmin(uuid.New(), clinicA)
	sa := SuperAdmin(uuid.New())

	assert.False(t, p.IsStaff())
	assert.True(t, pr.IsStaff())
	assert.True(t, ad.IsStaff())
	assert.True(t, sa.IsStaff())

	assert.False(t, p.IsAdmin())
	assert.False(t, pr.IsAdmin())
	assert.True(t, ad.IsAdmin())
	assert.True(t, sa.IsAdmin())
}

func TestInClinic(t *testing.T) {
	ad := ClinicAdmin(uuid.New(), clinicA)
	assert.True(t, ad.InClinic(clinicA))
	assert.False(t, ad.InClinic(clinicB))

	// super admins cross clinic boundaries
	sa := SuperAdmin(uuid.New())
	assert.True(t, sa.InClinic(clinicA))
	assert.True(t, sa.InClinic(clinicB))
}

func TestCanViewPatientRecords(t *testing.T) {
	patientID := uuid.New()
	self := Patient(uuid.New(), patientID, clinicA)
	other := Patient(uuid.New(), uuid.New(), clinicA)
	pr := Practitioner(uuid.New(), uuid.New(), clinicA)
	foreignPr := Practitioner(uuid.New(), uuid.New(), clinicB)

	assert.True(t, CanViewPatientRecords(self, patientID, clinicA))
	assert.False(t, CanViewPatientRecords(other, patientID, clinicA))
	assert.True(t, CanViewPatientRecords(pr, patientID, clinicA))
	assert.False(t, CanViewPatientRecords(foreignPr, patientID, clinicA))
	assert.True(t, CanViewPatientRecords(SuperAdmin(uuid.New()), patientID, clinicA))
}

func TestCanViewPractitionerCalendar(t *testing.T) {
	prID := uuid.New()
	self := Practitioner(uuid.New(), prID, clinicA)
	colleague := Practitioner(uuid.New(), uuid.New(), clinicA)
	ad := ClinicAdmin(uuid.New(), clinicA)
	patient := Patient(uuid.New(), uuid.New(), clinicA)

	assert.True(t, CanViewPractitionerCalendar(self, prID, clinicA))
	assert.False(t, CanViewPractitionerCalendar(colleague, prID, clinicA))
	assert.True(t, CanViewPractitionerCalendar(ad, prID, clinicA))
	assert.False(t, CanViewPractitionerCalendar(patient, prID, clinicA))
}

func TestCanBookForPatient(t *testing.T) {
	patientID := uuid.New()
	self := Patient(uuid.New(), patientID, clinicA)
	other := Patient(uuid.New(), uuid.New(), clinicA)
	pr := Practitioner(uuid.New(), uuid.New(), clinicA)

	assert.True(t, CanBookForPatient(self, patientID, clinicA))
	assert.False(t, CanBookForPatient(self, patientID, clinicB), "patient cannot book in a foreign clinic")
	assert.False(t, CanBookForPatient(other, patientID, clinicA))
	assert.True(t, CanBookForPatient(pr, patientID, clinicA))
	assert.False(t, CanBookForPatient(pr, patientID, clinicB))
}

func TestCanCancelAppointment(t *testing.T) {
	patientID, prID := uuid.New(), uuid.New()
	owner := Patient(uuid.New(), patientID, clinicA)
	assigned := Practitioner(uuid.New(), prID, clinicA)
	colleague := Practitioner(uuid.New(), uuid.New(), clinicA)
	ad := ClinicAdmin(uuid.New(), clinicA)

	assert.True(t, CanCancelAppointment(owner, patientID, prID, clinicA))
	assert.True(t, CanCancelAppointment(assigned, patientID, prID, clinicA))
	assert.False(t, CanCancelAppointment(colleague, patientID, prID, clinicA))
	assert.True(t, CanCancelAppointment(ad, patientID, prID, clinicA))
}

func TestCanCompleteAppointmentOnlyAssignedPractitioner(t *testing.T) {
	prID := uuid.New()
	assigned := Practitioner(uuid.New(), prID, clinicA)
	ad := ClinicAdmin(uuid.New(), clinicA)
	sa := SuperAdmin(uuid.New())

	assert.True(t, CanCompleteAppointment(assigned, prID))
	assert.False(t, CanCompleteAppointment(ad, prID))
	assert.False(t, CanCompleteAppointment(sa, prID))
}

func TestCanManageActivities(t *testing.T) {
	pr := Practitioner(uuid.New(), uuid.New(), clinicA)
	ad := ClinicAdmin(uuid.New(), clinicA)

	assert.False(t, CanManageActivities(pr, clinicA))
	assert.True(t, CanManageActivities(ad, clinicA))
	assert.False(t, CanManageActivities(ad, clinicB))
}

func TestActorContextRoundTrip(t *testing.T) {
	a := ClinicAdmin(uuid.New(), clinicA)
	ctx := WithActor(context.Background(), a)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, a, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
	assert.Panics(t, func() { MustFromContext(context.Background()) })
}
