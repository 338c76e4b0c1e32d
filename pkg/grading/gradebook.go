package grading

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/croft/pkg/collection"
	"github.com/aretw0/croft/pkg/core"
)

// Gradebook owns the accepted student records, keyed by student ID.
type Gradebook struct {
	students *collection.Keyed[int, *Student]
	logger   *slog.Logger
}

// NewGradebook creates an empty gradebook.
func NewGradebook(logger *slog.Logger) *Gradebook {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gradebook{
		students: collection.NewKeyed[int, *Student](),
		logger:   logger,
	}
}

// ParseLine parses one input line of the form "id, full name, score" into a
// Student. lineNo is 1-based and is carried into the MalformedRecordError on
// any violation: wrong field count, non-numeric id or score, empty name.
func ParseLine(line string, lineNo int) (*Student, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return nil, &core.MalformedRecordError{
			Line:   lineNo,
			Reason: fmt.Sprintf("expected 3 comma-separated fields, got %d", len(fields)),
		}
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, &core.MalformedRecordError{
			Line:   lineNo,
			Reason: fmt.Sprintf("id %q is not an integer", strings.TrimSpace(fields[0])),
		}
	}

	score, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return nil, &core.MalformedRecordError{
			Line:   lineNo,
			Reason: fmt.Sprintf("score %q is not an integer", strings.TrimSpace(fields[2])),
		}
	}

	student := &Student{
		ID:    id,
		Name:  strings.TrimSpace(fields[1]),
		Score: score,
	}
	if err := core.CheckImportedRecord(student, lineNo); err != nil {
		return nil, err
	}
	return student, nil
}

// Import reads input lines from r. Malformed lines and duplicate IDs are
// skipped with a diagnostic and the import continues; only a read failure of
// the source itself aborts. Blank lines are ignored without a diagnostic.
// It returns the number of accepted records and the per-line diagnostics.
func (g *Gradebook) Import(r io.Reader) (int, []error, error) {
	var (
		accepted int
		skipped  []error
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		student, err := ParseLine(line, lineNo)
		if err != nil {
			g.logger.Warn("skipping malformed record", "error", err)
			skipped = append(skipped, err)
			continue
		}

		if err := g.students.Add(student); err != nil {
			err = fmt.Errorf("line %d: %w", lineNo, err)
			g.logger.Warn("skipping duplicate record", "error", err)
			skipped = append(skipped, err)
			continue
		}
		accepted++
	}

	if err := scanner.Err(); err != nil {
		return accepted, skipped, fmt.Errorf("failed to read input source: %w", err)
	}
	return accepted, skipped, nil
}

// ImportFile imports one file. An unopenable file is fatal, matching the
// abort policy for unreadable input sources.
func (g *Gradebook) ImportFile(path string) (int, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return g.Import(f)
}

// ImportGlob imports every file matching the doublestar pattern (e.g.
// "scores/**/*.csv"), in the order the glob returns them.
func (g *Gradebook) ImportGlob(pattern string) (int, []error, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return 0, nil, fmt.Errorf("bad glob pattern %q: %w", pattern, err)
	}

	var (
		accepted int
		skipped  []error
	)
	for _, path := range paths {
		n, diags, err := g.ImportFile(path)
		accepted += n
		skipped = append(skipped, diags...)
		if err != nil {
			return accepted, skipped, err
		}
		g.logger.Debug("file imported", "path", path, "accepted", n, "skipped", len(diags))
	}
	return accepted, skipped, nil
}

// Get returns the student stored under id, or core.ErrNotFound.
func (g *Gradebook) Get(id int) (*Student, error) {
	return g.students.Get(id)
}

// List returns accepted students in import order.
func (g *Gradebook) List() []*Student {
	return g.students.List()
}

// Len reports the number of accepted students.
func (g *Gradebook) Len() int {
	return g.students.Len()
}

// Report renders one line per accepted student, in import order.
func (g *Gradebook) Report() []string {
	students := g.students.List()
	lines := make([]string, 0, len(students))
	for _, s := range students {
		lines = append(lines, s.ReportLine())
	}
	return lines
}
