package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/croft/internal/console"
	"github.com/aretw0/croft/pkg/healthcare"
)

var (
	seedPatients      int
	seedPrescriptions int
)

var healthcareCmd = &cobra.Command{
	Use:   "healthcare",
	Short: "Run the clinic demo",
	Long: `Patients and prescriptions in ordered logs, with a derived index
mapping each patient to their prescriptions. The index is rebuilt on
request, never automatically; the menu makes the staleness visible.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		registry := healthcare.NewRegistry(slog.Default())
		registry.Seed(seedPatients, seedPrescriptions)

		sh := console.New(os.Stdin, os.Stdout)
		for {
			choice := sh.Menu("Clinic",
				"List patients",
				"Prescriptions for patient",
				"Add prescription",
				"Remove patient",
				"Rebuild index",
				"Quit",
			)

			switch choice {
			case 1:
				for _, p := range registry.Patients() {
					sh.Printf("%s", p)
				}
			case 2:
				id, ok := sh.ReadInt("patient id: ")
				if !ok {
					return
				}
				scrips := registry.PrescriptionsFor(id)
				if len(scrips) == 0 {
					sh.Printf("no prescriptions on record for patient %d", id)
					continue
				}
				for _, s := range scrips {
					sh.Printf("%s", s)
				}
			case 3:
				patientID, ok := sh.ReadInt("patient id: ")
				if !ok {
					return
				}
				if _, found := registry.FindPatient(patientID); !found {
					sh.Failf("no patient #%d", patientID)
					continue
				}
				id, ok := sh.ReadInt("prescription id: ")
				if !ok {
					return
				}
				drug, ok := sh.ReadLine("drug: ")
				if !ok {
					return
				}
				dosage, ok := sh.ReadLine("dosage: ")
				if !ok {
					return
				}
				registry.AddPrescription(healthcare.Prescription{
					ID:        id,
					PatientID: patientID,
					Drug:      drug,
					Dosage:    dosage,
				})
				sh.Okf("added; rebuild the index to see it in lookups")
			case 4:
				id, ok := sh.ReadInt("patient id: ")
				if !ok {
					return
				}
				if !registry.RemovePatient(id) {
					sh.Failf("no patient #%d", id)
					continue
				}
				sh.Okf("removed patient #%d (prescriptions kept)", id)
			case 5:
				registry.RebuildIndex()
				sh.Okf("index rebuilt")
			default:
				return
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(healthcareCmd)
	healthcareCmd.Flags().IntVar(&seedPatients, "patients", 6, "Number of generated patients to start with")
	healthcareCmd.Flags().IntVar(&seedPrescriptions, "prescriptions", 3, "Maximum generated prescriptions per patient")
}
