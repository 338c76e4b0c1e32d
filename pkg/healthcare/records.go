// Package healthcare implements the clinic demo: patients and prescriptions
// in ordered logs, plus a derived index answering "all prescriptions for
// patient X" in O(1) after an explicit build.
package healthcare

import "fmt"

// Patient is a registered person. IDs are expected to be unique but the log
// itself does not enforce it; lookups take the first match.
type Patient struct {
	ID   int
	Name string
	Age  int
}

func (p Patient) String() string {
	return fmt.Sprintf("#%d %s (age %d)", p.ID, p.Name, p.Age)
}

// Prescription links a drug to a patient by foreign key. Deleting a patient
// does not cascade here; orphaned prescriptions are allowed.
type Prescription struct {
	ID        int
	PatientID int
	Drug      string
	Dosage    string
}

func (r Prescription) String() string {
	return fmt.Sprintf("#%d %s %s (patient %d)", r.ID, r.Drug, r.Dosage, r.PatientID)
}
