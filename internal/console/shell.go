// Package console holds the menu shell the demo commands share: numbered
// menus, integer prompts with retry on bad input, and result rendering.
// It is deliberately dumb glue; all contract behavior lives in the domain
// packages it calls into.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Shell reads prompts from one stream and renders to another. The demo
// commands wire it to stdin/stdout.
type Shell struct {
	in  *bufio.Scanner
	out io.Writer

	title *color.Color
	ok    *color.Color
	fail  *color.Color
}

// New creates a shell over the given streams.
func New(in io.Reader, out io.Writer) *Shell {
	return &Shell{
		in:    bufio.NewScanner(in),
		out:   out,
		title: color.New(color.FgCyan, color.Bold),
		ok:    color.New(color.FgGreen),
		fail:  color.New(color.FgRed),
	}
}

// Menu prints a numbered menu and returns the chosen 1-based option.
// Unparsable or out-of-range input re-prompts; io.EOF ends the session and
// returns 0.
func (s *Shell) Menu(title string, options ...string) int {
	s.title.Fprintf(s.out, "\n%s\n", title)
	for i, opt := range options {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, opt)
	}

	for {
		choice, err := s.readInt("> ")
		if err == io.EOF {
			return 0
		}
		if err == nil && choice >= 1 && choice <= len(options) {
			return choice
		}
		s.fail.Fprintf(s.out, "pick a number between 1 and %d\n", len(options))
	}
}

// ReadInt prompts until the user enters a valid integer. A closed input
// stream returns 0 and false.
func (s *Shell) ReadInt(prompt string) (int, bool) {
	for {
		n, err := s.readInt(prompt)
		if err == nil {
			return n, true
		}
		if err == io.EOF {
			return 0, false
		}
		s.fail.Fprintln(s.out, "not a number, try again")
	}
}

// ReadLine prompts for a free-form line.
func (s *Shell) ReadLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) readInt(prompt string) (int, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return 0, io.EOF
	}
	return strconv.Atoi(strings.TrimSpace(s.in.Text()))
}

// Okf renders a success line.
func (s *Shell) Okf(format string, args ...any) {
	s.ok.Fprintf(s.out, format+"\n", args...)
}

// Failf renders a failure line. Failures are recoverable by design; the
// caller's loop keeps running after reporting one.
func (s *Shell) Failf(format string, args ...any) {
	s.fail.Fprintf(s.out, format+"\n", args...)
}

// Printf renders a plain line.
func (s *Shell) Printf(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}
