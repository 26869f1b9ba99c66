package testutil

// Set sets the value of a variable for the duration of a test, restoring the
// old value when the test finishes.
func Set[T any](c Cleanuper, p *T, v T) {
	old := *p
	*p = v
	c.Cleanup(func() { *p = old })
}
