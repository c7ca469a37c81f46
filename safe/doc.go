// Package safe provides panic-free division over generic numeric types.
//
// Core APIs include Divide for the built-in numeric kinds, DivideNumeric for
// method-set numeric types such as decimal.Decimal, and the DivideOrZero and
// DivideOrDefault fallback forms.
//
// Division by zero is a normal, type-checked outcome rather than an error or a
// panic: guarded operations return an optional.Optional that is absent exactly
// when the divisor was zero, so callers handle the case predictably in
// production paths. Failure modes inherent to the numeric type itself (integer
// overflow, float Inf/NaN) are inherited unmodified.
package safe
