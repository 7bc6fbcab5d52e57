package evaluation

import (
	"strings"

	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
)

// BlindedPair carries the two responses under anonymous labels, ready for
// presentation to the judge. Nothing in it reveals which format is which.
type BlindedPair struct {
	// ResponseA is the text presented as "Response A".
	ResponseA string

	// ResponseB is the text presented as "Response B".
	ResponseB string
}

// Blinder assigns anonymous labels to response pairs. With a seed the
// assignment is a deterministic function of (seed, test case name), which is
// what makes runs reproducible; without one it draws from entropy and the
// draw is recorded in the assignment.
type Blinder struct {
	seed *int64
}

// NewBlinder creates a Blinder. A nil seed selects entropy-driven
// assignment.
func NewBlinder(seed *int64) *Blinder { return &Blinder{seed: seed} }

// Seed returns the configured seed, or nil when entropy is used.
func (b *Blinder) Seed() *int64 { return b.seed }

// Assign produces the label mapping for the pair and the anonymized
// responses in label order. Responses are whitespace-trimmed so no leftover
// formatting artifact hints at their origin.
func (b *Blinder) Assign(pair domain.ResponsePair) (domain.BlindAssignment, BlindedPair, error) {
	assignment := domain.NewBlindAssignment(pair.TestCaseName, b.seed)
	if err := assignment.Validate(); err != nil {
		return domain.BlindAssignment{}, BlindedPair{}, err
	}

	responseA, err := pair.Response(assignment.LabelA)
	if err != nil {
		return domain.BlindAssignment{}, BlindedPair{}, err
	}
	responseB, err := pair.Response(assignment.LabelB)
	if err != nil {
		return domain.BlindAssignment{}, BlindedPair{}, err
	}

	return assignment, BlindedPair{
		ResponseA: strings.TrimSpace(responseA),
		ResponseB: strings.TrimSpace(responseB),
	}, nil
}
