package safe

import (
	"github.com/LerianStudio/lib-safe/safe/optional"
	"golang.org/x/exp/constraints"
)

// Number constrains T to the built-in numeric kinds: integers, floats, and
// complex numbers. All of them support comparison against zero and the native
// division operator, which is the entire capability Divide needs.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Numeric is the capability a method-set numeric type must provide to be
// divided with DivideNumeric: a zero test and a division producing the same
// type. decimal.Decimal satisfies it as-is.
type Numeric[T any] interface {
	IsZero() bool
	Div(T) T
}

// Divide divides a by b with a zero check.
// The result is absent when b is zero; otherwise it is present and carries
// a / b under T's native division semantics (integers truncate, floats follow
// IEEE 754).
//
// Example:
//
//	quotient, ok := safe.Divide(10, 2).Get()
//	if !ok {
//	    return fmt.Errorf("calculate ratio: division by zero")
//	}
func Divide[T Number](a, b T) optional.Optional[T] {
	if b == 0 {
		return optional.None[T]()
	}

	return optional.Some(a / b)
}

// DivideNumeric divides a by b with a zero check, for types carrying the
// Numeric capability. The result is absent when b.IsZero(); otherwise it is
// present and carries a.Div(b).
//
// Example:
//
//	result := safe.DivideNumeric(numerator, denominator)
//	if result.IsAbsent() {
//	    return fmt.Errorf("calculate ratio: division by zero")
//	}
func DivideNumeric[T Numeric[T]](a, b T) optional.Optional[T] {
	if b.IsZero() {
		return optional.None[T]()
	}

	return optional.Some(a.Div(b))
}

// DivideOrZero divides a by b, returning zero if b is zero.
// Use when zero is an acceptable fallback (e.g., rate calculations where a
// zero total means a zero rate).
//
// Example:
//
//	ratio := safe.DivideOrZero(failures, total)
func DivideOrZero[T Number](a, b T) T {
	return Divide(a, b).OrZero()
}

// DivideOrDefault divides a by b, returning defaultValue if b is zero.
// Use when a specific fallback value is needed.
//
// Example:
//
//	rate := safe.DivideOrDefault(resolved, total, 100.0)
func DivideOrDefault[T Number](a, b, defaultValue T) T {
	return Divide(a, b).OrElse(defaultValue)
}
