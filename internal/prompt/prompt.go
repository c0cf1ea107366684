package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mfe-labs/create-mfe/internal/ui"
)

// ErrMissingInput is matched by every MissingInputError.
var ErrMissingInput = errors.New("missing input")

// MissingInputError reports a step that received an empty answer.
type MissingInputError struct {
	Field   string
	Message string
}

func (e *MissingInputError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s cannot be empty", e.Field)
}

func (e *MissingInputError) Unwrap() error { return ErrMissingInput }

// Step is one question in the pipeline.
type Step struct {
	Field string // key in Answers
	Label string // question text
	Hint  string // optional trailing hint, rendered dimmer than the label
	// Empty is shown when the answer is blank.
	Empty string
	// Preset answers the step without reading input, e.g. from a flag.
	Preset string
}

// Answers maps Step.Field to the answer as typed, minus the line ending.
type Answers map[string]string

// Prompter reads answers from r and writes questions to w.
type Prompter struct {
	reader  *bufio.Reader
	w       io.Writer
	palette ui.Palette
}

// New returns a Prompter. All steps share one buffered reader so piped
// input spanning several lines is consumed in order.
func New(r io.Reader, w io.Writer, palette ui.Palette) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), w: w, palette: palette}
}

// Ask prints the step's question and returns the answer. Surrounding
// whitespace is kept; it only decides whether the answer counts as empty.
func (p *Prompter) Ask(s Step) (string, error) {
	if strings.TrimSpace(s.Preset) != "" {
		return s.Preset, nil
	}

	fmt.Fprint(p.w, p.palette.Render(ui.Prompt, " >> "+s.Label))
	if s.Hint != "" {
		fmt.Fprint(p.w, " "+p.palette.Render(ui.Hint, s.Hint))
	}
	fmt.Fprint(p.w, ": ")

	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading %s: %w", s.Field, err)
	}

	answer := strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(answer) == "" {
		return "", &MissingInputError{Field: s.Field, Message: s.Empty}
	}
	return answer, nil
}

// Run asks each step in order and stops at the first failure.
func (p *Prompter) Run(steps []Step) (Answers, error) {
	answers := make(Answers, len(steps))
	for _, s := range steps {
		v, err := p.Ask(s)
		if err != nil {
			return nil, err
		}
		answers[s.Field] = v
	}
	return answers, nil
}
