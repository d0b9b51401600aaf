package ui

import (
	stderrors "errors"
	"reflect"

	"github.com/vango-dev/coat/internal/errors"
	"github.com/vango-dev/coat/pkg/key"
)

// ErrTypeMismatch is matched (via errors.Is) by the error returned from a
// pass that declared a key with a type different from the one it holds.
var ErrTypeMismatch = stderrors.New("coat: declaration type mismatch")

// ErrPoisoned is matched by errors returned from Build after a pass aborted.
var ErrPoisoned = stderrors.New("coat: tree poisoned by aborted pass")

const mismatchHint = "Declare different types from different call sites, or derive distinct keys with Key.WithIndex."

// typeName returns the name of T, including interface and pointer types.
func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func mismatchError(code string, k key.Key, want string, got any) *errors.CoatError {
	err := errors.New(code).
		WithDetailf("key %s holds %T, but the declaration expects %s.", k, got, want).
		WithSuggestion(mismatchHint).
		Wrap(ErrTypeMismatch)
	if loc, ok := k.Location(); ok {
		err.WithLocation(loc.File, loc.Line, 0)
	}
	return err
}
