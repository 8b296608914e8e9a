package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceString treats the empty string like nil.
func CoalesceString(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
