package api

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotANumber is wrapped by ParseError when the input is not a number.
var ErrNotANumber = errors.New("not a number")

// ParseError reports raw input that could not be turned into a request field.
// It is produced before any call reaches the service.
type ParseError struct {
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseID parses a single integer id, ignoring surrounding whitespace.
func ParseID(field, s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ParseError{Field: field, Input: s, Err: ErrNotANumber}
	}
	return id, nil
}

// ParseIDList parses a comma-separated list of ids such as "1, 2,3".
// Blank input yields an empty list; a blank entry between commas is an error.
func ParseIDList(field, s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{}, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, &ParseError{Field: field, Input: s, Err: fmt.Errorf("%w: %q", ErrNotANumber, strings.TrimSpace(p))}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseAmount parses a decimal amount. NaN and infinities are rejected here;
// the sign is left for the ledger to judge.
func ParseAmount(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Field: field, Input: s, Err: ErrNotANumber}
	}
	return v, nil
}
