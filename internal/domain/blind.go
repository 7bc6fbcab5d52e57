package domain

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// Label is an anonymous presentation label shown to the judge.
type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
)

// BlindAssignment records which prompt format hides behind each anonymous
// label for one test case. The mapping is an explicit value rather than an
// incidental ordering so the reversal is auditable and testable.
type BlindAssignment struct {
	// TestCaseName links the assignment back to its test case.
	TestCaseName string `json:"test_case_name"`

	// LabelA is the format presented to the judge as "Response A".
	LabelA FormatKind `json:"label_a"`

	// LabelB is the format presented to the judge as "Response B".
	LabelB FormatKind `json:"label_b"`

	// Seeded is true when the assignment was derived from an explicit seed
	// and is therefore reproducible across runs.
	Seeded bool `json:"seeded"`

	// Draw is the random draw that produced the assignment. For unseeded
	// runs it is recorded so results remain auditable after the fact.
	Draw int64 `json:"draw"`
}

// NewBlindAssignment derives a label-to-format mapping for the named test
// case. When seed is non-nil the mapping is a pure function of
// (seed, testCaseName): the case name is hashed and folded into the seed so
// every case gets an independent but reproducible draw. When seed is nil a
// draw is taken from entropy and recorded.
func NewBlindAssignment(testCaseName string, seed *int64) BlindAssignment {
	var draw int64
	if seed != nil {
		h := fnv.New64a()
		h.Write([]byte(testCaseName))
		src := rand.NewSource(*seed ^ int64(h.Sum64()))
		draw = rand.New(src).Int63()
	} else {
		draw = rand.Int63()
	}

	a := BlindAssignment{
		TestCaseName: testCaseName,
		Seeded:       seed != nil,
		Draw:         draw,
	}
	if draw%2 == 0 {
		a.LabelA, a.LabelB = FormatRawText, FormatVibeXML
	} else {
		a.LabelA, a.LabelB = FormatVibeXML, FormatRawText
	}
	return a
}

// Format returns the format hidden behind the given label.
func (ba BlindAssignment) Format(label Label) (FormatKind, error) {
	switch label {
	case LabelA:
		return ba.LabelA, nil
	case LabelB:
		return ba.LabelB, nil
	default:
		return "", fmt.Errorf("%w: unknown label %q", ErrInvalidFormat, label)
	}
}

// Label returns the anonymous label assigned to the given format.
func (ba BlindAssignment) Label(kind FormatKind) (Label, error) {
	switch kind {
	case ba.LabelA:
		return LabelA, nil
	case ba.LabelB:
		return LabelB, nil
	default:
		return "", fmt.Errorf("%w: format %q has no label", ErrInvalidFormat, kind)
	}
}

// Validate enforces the blinding invariant: exactly one label maps to
// raw-text and the other to VibeXML.
func (ba BlindAssignment) Validate() error {
	if ba.LabelA == ba.LabelB {
		return fmt.Errorf("blind assignment %s: %w: both labels map to %q",
			ba.TestCaseName, ErrInvalidAssignment, ba.LabelA)
	}
	for _, k := range []FormatKind{ba.LabelA, ba.LabelB} {
		if k != FormatRawText && k != FormatVibeXML {
			return fmt.Errorf("blind assignment %s: %w: unknown format %q",
				ba.TestCaseName, ErrInvalidAssignment, k)
		}
	}
	return nil
}
