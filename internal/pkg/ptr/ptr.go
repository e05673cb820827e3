package ptr

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// Clone copies the pointed-to value so callers cannot mutate shared state.
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
