package vars

// FirstNonZero picks the first set value, letting a flag override a config
// entry which overrides a default.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
