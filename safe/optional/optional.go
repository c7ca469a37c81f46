package optional

// Optional holds either exactly one value of type T or no value.
// The zero value is the absent variant.
type Optional[T any] struct {
	present bool
	value   T
}

// Some returns a present Optional carrying value.
//
// Example:
//
//	quotient := optional.Some(5)
func Some[T any](value T) Optional[T] {
	return Optional[T]{present: true, value: value}
}

// None returns an absent Optional of type T.
//
// Example:
//
//	missing := optional.None[int]()
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent reports whether the Optional carries a value.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsAbsent reports whether the Optional carries no value.
func (o Optional[T]) IsAbsent() bool {
	return !o.present
}

// Get returns the contained value and whether it is present.
// When absent, the returned value is the zero value of T.
//
// Example:
//
//	value, ok := result.Get()
//	if !ok {
//	    return fmt.Errorf("no quotient available")
//	}
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrZero returns the contained value, or the zero value of T when absent.
//
// Example:
//
//	ratio := safe.Divide(matched, total).OrZero()
func (o Optional[T]) OrZero() T {
	return o.value
}

// OrElse returns the contained value, or defaultValue when absent.
//
// Example:
//
//	rate := safe.Divide(resolved, total).OrElse(100)
func (o Optional[T]) OrElse(defaultValue T) T {
	if !o.present {
		return defaultValue
	}

	return o.value
}
