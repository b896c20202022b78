package verifier

import (
	"github.com/specialistvlad/guardian/internal/builder"
	"github.com/specialistvlad/guardian/internal/catalog"
)

var (
	// ErrUnknownDish is returned when the dish id is not in the catalog.
	ErrUnknownDish = catalog.ErrUnknownDish
	// ErrMalformedSubmission is returned when the candidate cannot be built.
	ErrMalformedSubmission = builder.ErrMalformedSubmission
)

type (
	UnknownDishError         = catalog.UnknownDishError
	MalformedSubmissionError = builder.MalformedSubmissionError
)
