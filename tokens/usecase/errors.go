package usecase

import "fmt"

// TokenListEmptyError represents error type for when a token list has no tokens.
type TokenListEmptyError struct {
	Name string
}

// Error implements the error interface.
func (e TokenListEmptyError) Error() string {
	return fmt.Sprintf("token list (%s) has no tokens", e.Name)
}

// TokenListEntryInvalidError represents error type for when a token list entry is invalid.
type TokenListEntryInvalidError struct {
	Index  int
	Reason string
}

// Error implements the error interface.
func (e TokenListEntryInvalidError) Error() string {
	return fmt.Sprintf("token list entry (%d) is invalid: %s", e.Index, e.Reason)
}

// TokenListFetchStatusError represents error type for when fetching a token list
// returns a non-OK status.
type TokenListFetchStatusError struct {
	Source     string
	StatusCode int
}

// Error implements the error interface.
func (e TokenListFetchStatusError) Error() string {
	return fmt.Sprintf("fetching token list (%s) returned status (%d)", e.Source, e.StatusCode)
}
