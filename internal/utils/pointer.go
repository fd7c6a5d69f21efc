package utils

// Ptr returns a pointer to the given value. Useful for populating optional
// request fields that distinguish "unset" from a zero value.
func Ptr[T any](value T) *T {
	return &value
}
