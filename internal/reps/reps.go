// Package reps handles repetition specs: a fixed count ("12") or a range ("10-12").
package reps

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

const MaxLength = 20

// MaxReps is the largest count a spec may carry; integer reps are stored as int4.
const MaxReps = math.MaxInt32

var ErrInvalidRepsFormat = errors.New("InvalidRepsFormat")

var specPattern = regexp.MustCompile(`^(\d+)(?:\s*-\s*(\d+))?$`)

// Valid reports whether the spec is well formed and every count in it fits MaxReps.
func Valid(spec string) bool {
	_, err := IntegerReps(spec)
	return err == nil
}

// IntegerReps derives the sortable reps value: the upper bound of a range,
// or the fixed count itself.
func IntegerReps(spec string) (int, error) {
	if len(spec) > MaxLength {
		return 0, fmt.Errorf("%w: longer than %d chars", ErrInvalidRepsFormat, MaxLength)
	}
	m := specPattern.FindStringSubmatch(spec)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRepsFormat, spec)
	}

	n, err := parseCount(m[1])
	if err != nil {
		return 0, err
	}
	if m[2] == "" {
		return n, nil
	}
	return parseCount(m[2])
}

func parseCount(raw string) (int, error) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: count %s out of range", ErrInvalidRepsFormat, raw)
	}
	return int(n), nil
}
