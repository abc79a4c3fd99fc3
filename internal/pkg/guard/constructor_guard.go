// Package guard provides a lightweight marker that lets value objects and
// commands detect whether they were created through their constructor.
// A zero-value struct carries a zero-value guard, so Validate can reject
// instances that bypassed validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and the caller did not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it as a
// private field and set it with NewConstructorGuard inside the constructor.
// The zero value is invalid.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// For a zero-value guard it returns customErr, or ErrDefaultConstructorGuard
// when customErr is nil.
func (g ConstructorGuard) Validate(customErr error) error {
	if g.constructed {
		return nil
	}
	if customErr == nil {
		return ErrDefaultConstructorGuard
	}
	return customErr
}
