package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Changed reports whether ptr carries a value different from current.
func Changed[T comparable](ptr *T, current T) bool {
	return ptr != nil && *ptr != current
}

// Any reports whether at least one of the flags is set.
func Any(flags ...bool) bool {
	for _, f := range flags {
		if f {
			return true
		}
	}
	return false
}
