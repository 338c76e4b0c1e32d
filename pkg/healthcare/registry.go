package healthcare

import (
	"log/slog"

	"github.com/aretw0/introspection"
	"github.com/brianvoe/gofakeit/v6"

	"github.com/aretw0/croft/pkg/collection"
)

// Registry owns the patient and prescription logs and the derived
// patient-to-prescriptions index.
//
// The index reflects the prescription log only as of the last RebuildIndex
// call. Mutating the log and reading the index without rebuilding is a
// caller error; the registry does not auto-invalidate because the logs offer
// no change notifications.
type Registry struct {
	patients      *collection.Linear[Patient]
	prescriptions *collection.Linear[Prescription]
	byPatient     *collection.Grouping[int, Prescription]
	logger        *slog.Logger
}

// NewRegistry creates an empty registry with an unbuilt index.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		patients:      collection.NewLinear[Patient](),
		prescriptions: collection.NewLinear[Prescription](),
		byPatient:     collection.NewGrouping[int, Prescription](),
		logger:        logger,
	}
}

// AddPatient appends a patient to the log.
func (r *Registry) AddPatient(p Patient) {
	r.patients.Add(p)
}

// FindPatient returns the first patient with the given id.
func (r *Registry) FindPatient(id int) (Patient, bool) {
	return r.patients.FindFirst(func(p Patient) bool { return p.ID == id })
}

// RemovePatient removes the first patient with the given id and reports
// whether one existed. Their prescriptions stay in the log.
func (r *Registry) RemovePatient(id int) bool {
	return r.patients.RemoveFirst(func(p Patient) bool { return p.ID == id })
}

// Patients returns the patient log in insertion order.
func (r *Registry) Patients() []Patient {
	return r.patients.List()
}

// AddPrescription appends a prescription. The patient id is not checked
// against the patient log. Callers that care must FindPatient first.
//
// The index is stale afterwards until RebuildIndex.
func (r *Registry) AddPrescription(p Prescription) {
	r.prescriptions.Add(p)
}

// Prescriptions returns the full prescription log in insertion order.
func (r *Registry) Prescriptions() []Prescription {
	return r.prescriptions.List()
}

// RebuildIndex rebuilds the patient-to-prescriptions index from the current
// prescription log, replacing the old index wholesale.
func (r *Registry) RebuildIndex() {
	r.byPatient.Build(r.prescriptions.List(), func(p Prescription) int { return p.PatientID })
	r.logger.Debug("prescription index rebuilt",
		"prescriptions", r.prescriptions.Len(),
		"patients_indexed", r.byPatient.Groups(),
	)
}

// PrescriptionsFor returns the indexed prescriptions for a patient, in log
// order. An unknown patient yields an empty group, not an error. The result
// is only as fresh as the last RebuildIndex.
func (r *Registry) PrescriptionsFor(patientID int) []Prescription {
	return r.byPatient.Lookup(patientID)
}

// Seed fills the registry with generated patients and up to perPatient
// prescriptions each, then builds the index once.
func (r *Registry) Seed(patients, perPatient int) {
	drugID := 1
	for i := 1; i <= patients; i++ {
		r.AddPatient(Patient{
			ID:   i,
			Name: gofakeit.Name(),
			Age:  gofakeit.Number(1, 99),
		})

		for j := 0; j < gofakeit.Number(0, perPatient); j++ {
			r.AddPrescription(Prescription{
				ID:        drugID,
				PatientID: i,
				Drug:      gofakeit.RandomString([]string{"Amoxicillin", "Ibuprofen", "Lisinopril", "Metformin", "Omeprazole"}),
				Dosage:    gofakeit.RandomString([]string{"5mg", "10mg", "20mg", "1 tablet"}),
			})
			drugID++
		}
	}
	r.RebuildIndex()
}

// RegistryState exposes internal state for observability.
type RegistryState struct {
	Patients        int `json:"patients"`
	Prescriptions   int `json:"prescriptions"`
	PatientsIndexed int `json:"patients_indexed"`
}

// State implements introspection.Introspectable.
func (r *Registry) State() any {
	return RegistryState{
		Patients:        r.patients.Len(),
		Prescriptions:   r.prescriptions.Len(),
		PatientsIndexed: r.byPatient.Groups(),
	}
}

// ComponentType implements introspection.Component.
func (r *Registry) ComponentType() string {
	return "healthcare-registry"
}

var _ introspection.Introspectable = (*Registry)(nil)
var _ introspection.Component = (*Registry)(nil)
