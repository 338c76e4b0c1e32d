package healthcare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/croft/pkg/healthcare"
)

func seededRegistry() *healthcare.Registry {
	r := healthcare.NewRegistry(nil)
	r.AddPatient(healthcare.Patient{ID: 1, Name: "Ada", Age: 36})
	r.AddPatient(healthcare.Patient{ID: 2, Name: "Grace", Age: 45})

	r.AddPrescription(healthcare.Prescription{ID: 10, PatientID: 1, Drug: "Ibuprofen", Dosage: "10mg"})
	r.AddPrescription(healthcare.Prescription{ID: 11, PatientID: 2, Drug: "Metformin", Dosage: "5mg"})
	r.AddPrescription(healthcare.Prescription{ID: 12, PatientID: 1, Drug: "Omeprazole", Dosage: "20mg"})
	r.RebuildIndex()
	return r
}

func TestRegistry_PrescriptionsFor(t *testing.T) {
	r := seededRegistry()

	got := r.PrescriptionsFor(1)
	require.Len(t, got, 2)
	// Log order is preserved inside the group.
	assert.Equal(t, 10, got[0].ID)
	assert.Equal(t, 12, got[1].ID)

	assert.Empty(t, r.PrescriptionsFor(999), "unknown patient yields an empty group")
}

func TestRegistry_IndexIsExplicit(t *testing.T) {
	r := seededRegistry()

	// A new prescription is invisible to the index until the caller rebuilds.
	r.AddPrescription(healthcare.Prescription{ID: 13, PatientID: 2, Drug: "Lisinopril", Dosage: "5mg"})
	assert.Len(t, r.PrescriptionsFor(2), 1)

	r.RebuildIndex()
	assert.Len(t, r.PrescriptionsFor(2), 2)
}

func TestRegistry_RemovePatientDoesNotCascade(t *testing.T) {
	r := seededRegistry()

	require.True(t, r.RemovePatient(1))
	_, ok := r.FindPatient(1)
	assert.False(t, ok)

	// No referential integrity: the prescriptions survive, and the index
	// still serves them until a rebuild of the prescription log happens.
	r.RebuildIndex()
	assert.Len(t, r.PrescriptionsFor(1), 2)
}

func TestRegistry_FindPatient(t *testing.T) {
	r := seededRegistry()

	p, ok := r.FindPatient(2)
	require.True(t, ok)
	assert.Equal(t, "Grace", p.Name)

	_, ok = r.FindPatient(42)
	assert.False(t, ok)
	assert.False(t, r.RemovePatient(42))
}

func TestRegistry_Seed(t *testing.T) {
	r := healthcare.NewRegistry(nil)
	r.Seed(8, 3)

	assert.Len(t, r.Patients(), 8)
	state := r.State().(healthcare.RegistryState)
	assert.Equal(t, 8, state.Patients)
	assert.Equal(t, len(r.Prescriptions()), state.Prescriptions)

	// Every indexed prescription must point at its group's patient.
	for _, p := range r.Patients() {
		for _, scrip := range r.PrescriptionsFor(p.ID) {
			assert.Equal(t, p.ID, scrip.PatientID)
		}
	}
}
