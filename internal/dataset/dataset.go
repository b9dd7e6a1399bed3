// Package dataset compiles CUE dataset definitions into concrete facts.
//
// A dataset is a named collection of facts, written in CUE:
//
//	dataset: {
//		name: "family"
//		facts: [
//			{id: "alice", predicate: "likes", object: "bob"},
//			{id: "bob", predicate: "likes", object: "cake"},
//		]
//	}
//
// Facts validate through the core triple constructor, so dataset slots get
// the same normalization (trim, unquote, lowercase) as query primitives.
// Datasets hold concrete facts only; a variable slot is a compile error.
package dataset

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/triad/internal/triple"
)

// Dataset is a named collection of concrete facts ready for insertion.
type Dataset struct {
	Name  string
	Facts []triple.Triple
}

// Compile parses a CUE value into a Dataset.
// Uses CUE SDK's Go API directly (not CLI subprocess).
//
// The CUE value should be the dataset struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`dataset: { ... }`)
//	ds, err := dataset.Compile(v.LookupPath(cue.ParsePath("dataset")))
func Compile(v cue.Value) (*Dataset, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	ds := &Dataset{}

	// Parse name (required)
	nameVal := v.LookupPath(cue.ParsePath("name"))
	if !nameVal.Exists() {
		return nil, &CompileError{
			Field:   "name",
			Message: "name is required",
			Pos:     v.Pos(),
		}
	}
	name, err := nameVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	ds.Name = name

	// Parse facts (required, at least one)
	factsVal := v.LookupPath(cue.ParsePath("facts"))
	if !factsVal.Exists() {
		return nil, &CompileError{
			Field:   "facts",
			Message: "facts is required",
			Pos:     v.Pos(),
		}
	}

	iter, err := factsVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for i := 0; iter.Next(); i++ {
		fact, err := parseFact(iter.Value(), i)
		if err != nil {
			return nil, err
		}
		ds.Facts = append(ds.Facts, fact)
	}

	if len(ds.Facts) == 0 {
		return nil, &CompileError{
			Field:   "facts",
			Message: "at least one fact is required",
			Pos:     v.Pos(),
		}
	}

	return ds, nil
}

// parseFact parses a single {id, predicate, object} struct into a concrete
// triple, inheriting core normalization and validation.
func parseFact(v cue.Value, index int) (triple.Triple, error) {
	var slots [3]string

	for i, field := range [3]string{"id", "predicate", "object"} {
		fieldVal := v.LookupPath(cue.ParsePath(field))
		if !fieldVal.Exists() {
			return triple.Triple{}, &CompileError{
				Field:   fmt.Sprintf("facts[%d].%s", index, field),
				Message: field + " is required",
				Pos:     v.Pos(),
			}
		}

		s, err := fieldVal.String()
		if err != nil {
			return triple.Triple{}, formatCUEError(err)
		}
		slots[i] = s
	}

	fact, err := triple.New(slots[0], slots[1], slots[2])
	if err != nil {
		return triple.Triple{}, &CompileError{
			Field:   fmt.Sprintf("facts[%d]", index),
			Message: err.Error(),
			Pos:     v.Pos(),
		}
	}

	if fact.IsPattern() {
		return triple.Triple{}, &CompileError{
			Field:   fmt.Sprintf("facts[%d]", index),
			Message: "datasets hold concrete facts only, variable slots are not allowed",
			Pos:     v.Pos(),
		}
	}

	return fact, nil
}

// CompileError represents a dataset compilation error with field path and
// CUE source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	// Return first error with position info
	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return firstErr
}
