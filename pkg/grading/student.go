// Package grading implements the report-card demo: importing student records
// from comma-separated text lines, grading them against fixed thresholds and
// rendering a report.
package grading

import "fmt"

// Student is one accepted record. ID is the unique key; Score is mutable
// until the report is rendered.
type Student struct {
	ID    int    `validate:"required,gt=0"`
	Name  string `validate:"required"`
	Score int
}

// Key implements core.Keyer.
func (s *Student) Key() int { return s.ID }

// Grade maps a score to a letter grade using the fixed thresholds:
// [80,100] A, [70,80) B, [60,70) C, [50,60) D, everything else F.
func Grade(score int) string {
	switch {
	case score >= 80 && score <= 100:
		return "A"
	case score >= 70 && score < 80:
		return "B"
	case score >= 60 && score < 70:
		return "C"
	case score >= 50 && score < 60:
		return "D"
	default:
		return "F"
	}
}

// ReportLine renders the fixed report format for one student.
func (s *Student) ReportLine() string {
	return fmt.Sprintf("%s (ID: %d): Score = %d, Grade = %s", s.Name, s.ID, s.Score, Grade(s.Score))
}
