package mocks

// MockError is an error for tests of collaborator failures.
// Wrapped lets tests check the mapping of domain sentinels, e.g. ErrWalletProviderAbsent.
type MockError struct {
	Err     string
	Wrapped error
}

// Error returns the error message.
func (e MockError) Error() string {
	return e.Err
}

// Unwrap returns the wrapped error, if any.
func (e MockError) Unwrap() error {
	return e.Wrapped
}
