package builder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedSubmission is the sentinel matched by errors.Is for every
// rejected submission.
var ErrMalformedSubmission = errors.New("malformed submission")

// Problem is one defect of a submission, located by a field path such as
// `steps[1].technique`.
type Problem struct {
	Field  string
	Reason string
}

func (p Problem) String() string {
	if p.Field == "" {
		return p.Reason
	}
	return p.Field + ": " + p.Reason
}

// MalformedSubmissionError lists every problem found, in submission order.
type MalformedSubmissionError struct {
	Problems []Problem
}

func (e *MalformedSubmissionError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s: %s", ErrMalformedSubmission, strings.Join(parts, "; "))
}

func (e *MalformedSubmissionError) Unwrap() error { return ErrMalformedSubmission }

type problems []Problem

func (ps *problems) addf(field, format string, args ...any) {
	*ps = append(*ps, Problem{Field: field, Reason: fmt.Sprintf(format, args...)})
}

func (ps problems) err() error {
	if len(ps) == 0 {
		return nil
	}
	return &MalformedSubmissionError{Problems: ps}
}
