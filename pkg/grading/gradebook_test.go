package grading_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/croft/pkg/core"
	"github.com/aretw0/croft/pkg/grading"
)

func TestGrade(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, "A"}, {80, "A"},
		{79, "B"}, {70, "B"},
		{69, "C"}, {60, "C"},
		{59, "D"}, {50, "D"},
		{49, "F"}, {0, "F"}, {-3, "F"}, {101, "F"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, grading.Grade(c.score), "score %d", c.score)
	}
}

func TestParseLine_RoundTrip(t *testing.T) {
	s, err := grading.ParseLine("101, John Doe, 85", 1)
	require.NoError(t, err)

	assert.Equal(t, 101, s.ID)
	assert.Equal(t, "John Doe", s.Name)
	assert.Equal(t, 85, s.Score)
	assert.Equal(t, "John Doe (ID: 101): Score = 85, Grade = A", s.ReportLine())
}

func TestParseLine_Malformed(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"non-numeric score", "106, Invalid Student, abc"},
		{"non-numeric id", "abc, Someone, 50"},
		{"too few fields", "101, John Doe"},
		{"too many fields", "101, John, Doe, 85"},
		{"empty name", "101, , 85"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := grading.ParseLine(c.line, 7)
			require.ErrorIs(t, err, core.ErrMalformedRecord)

			var malformed *core.MalformedRecordError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, 7, malformed.Line)
		})
	}
}

func TestImport_SkipsMalformedLines(t *testing.T) {
	// Spec scenario: one good line, one bad score. The import accepts the
	// first, skips the second with a diagnostic naming line 2, and finishes.
	input := "101, John Doe, 85\n106, Invalid Student, abc\n"

	book := grading.NewGradebook(nil)
	accepted, skipped, err := book.Import(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, accepted)
	require.Len(t, skipped, 1)

	var malformed *core.MalformedRecordError
	require.ErrorAs(t, skipped[0], &malformed)
	assert.Equal(t, 2, malformed.Line)

	s, err := book.Get(101)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", s.Name)
	assert.Equal(t, 85, s.Score)

	require.Len(t, book.Report(), 1)
	assert.Equal(t, "John Doe (ID: 101): Score = 85, Grade = A", book.Report()[0])
}

func TestImport_SkipsDuplicates(t *testing.T) {
	input := "1, Ada Lovelace, 91\n1, Impostor, 10\n2, Grace Hopper, 88\n"

	book := grading.NewGradebook(nil)
	accepted, skipped, err := book.Import(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, accepted)
	require.Len(t, skipped, 1)
	assert.ErrorIs(t, skipped[0], core.ErrDuplicateKey)

	s, err := book.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", s.Name, "first record wins on duplicate id")
}

func TestImport_BlankLinesIgnored(t *testing.T) {
	input := "\n1, Ada Lovelace, 91\n\n\n2, Grace Hopper, 88\n"

	book := grading.NewGradebook(nil)
	accepted, skipped, err := book.Import(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, accepted)
	assert.Empty(t, skipped)
}

func TestReport_ImportOrder(t *testing.T) {
	input := "3, Carol, 72\n1, Alice, 55\n2, Bob, 64\n"

	book := grading.NewGradebook(nil)
	_, _, err := book.Import(strings.NewReader(input))
	require.NoError(t, err)

	want := []string{
		"Carol (ID: 3): Score = 72, Grade = B",
		"Alice (ID: 1): Score = 55, Grade = D",
		"Bob (ID: 2): Score = 64, Grade = C",
	}
	assert.Equal(t, want, book.Report())
}
