package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/philipparndt/lebna/internal/state"
)

const sessionHelp = `Commands:
  calc <side1> <side2> <base>  compute the area of a triangle
  add                          add the last area to the total
  show                         show the last area and the total
  history                      list calculations
  help                         show this help
  quit                         leave the session`

// Session is an interactive calculator on a line-oriented stream
type Session struct {
	state  state.State
	logger *slog.Logger
	prompt string
}

// NewSession creates a session with an empty state
func NewSession(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		state:  state.New(),
		logger: logger,
		prompt: "> ",
	}
}

// SetPrompt changes the prompt printed before each line. An empty prompt
// disables it.
func (s *Session) SetPrompt(prompt string) {
	s.prompt = prompt
}

// State returns the current presentation state
func (s *Session) State() state.State {
	return s.state
}

// Run reads commands from in until quit, end of input or ctx is done
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.prompt != "" {
			fmt.Fprint(out, s.prompt)
		}
		if !scanner.Scan() {
			break
		}

		if quit := s.Exec(scanner.Text(), out); quit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// Exec runs one command line and reports whether the session should end
func (s *Session) Exec(line string, out io.Writer) bool {
	fields := splitFields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "calc", "c":
		in, ok := inputFrom(fields[1:])
		if !ok {
			fmt.Fprintf(out, "expected 3 sides, got %d: not a triangle\n", len(fields)-1)
		}
		s.state = state.Submit(s.state, in)
		view := state.Render(s.state)
		s.logger.Debug("calculated", "sides", view.Display.String(), "valid", view.Valid)
		writeArea(out, view)
	case "add", "a":
		s.state = state.Accumulate(s.state)
		writeTotal(out, state.Render(s.state))
	case "show", "s":
		view := state.Render(s.state)
		writeArea(out, view)
		writeTotal(out, view)
	case "history", "h":
		writeHistory(out, s.state.History())
	case "help", "?":
		fmt.Fprintln(out, sessionHelp)
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(out, "unknown command %q, type help for a list\n", fields[0])
	}
	return false
}

// inputFrom maps positional fields to the form inputs. Missing fields stay
// empty and so make the triangle invalid. More than three fields is not a
// triangle either; all fields are left empty and ok is false.
func inputFrom(fields []string) (in state.Input, ok bool) {
	if len(fields) > 3 {
		return state.Input{}, false
	}
	if len(fields) > 0 {
		in.Side1 = fields[0]
	}
	if len(fields) > 1 {
		in.Side2 = fields[1]
	}
	if len(fields) > 2 {
		in.Base = fields[2]
	}
	return in, true
}

// splitFields splits on whitespace and commas
func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\r'
	})
}
