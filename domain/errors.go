package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")

	// ErrWalletUserRejected is returned by a wallet provider when the user declines the connection.
	ErrWalletUserRejected = errors.New("wallet connection rejected by user")
	// ErrWalletProviderAbsent is returned by a wallet provider that is not installed or not reachable.
	ErrWalletProviderAbsent = errors.New("wallet provider not available")
	// ErrWalletWrongChain is returned by a wallet provider connected to an unexpected chain.
	ErrWalletWrongChain = errors.New("wallet is connected to the wrong chain")
)

// GetStatusCode returns status code given error
func GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		notConnectedErr        NotConnectedError
		validationErr          ValidationError
		insufficientBalanceErr InsufficientBalanceError
		expiredErr             ConfirmationExpiredError
		noPendingErr           NoPendingConfirmationError
		sessionNotFoundErr     SessionNotFoundError
		tokenNotFoundErr       TokenNotFoundError
	)

	switch {
	case errors.As(err, &validationErr), errors.Is(err, ErrBadParamInput):
		return http.StatusBadRequest
	case errors.As(err, &notConnectedErr):
		return http.StatusUnauthorized
	case errors.As(err, &insufficientBalanceErr), errors.As(err, &expiredErr), errors.As(err, &noPendingErr):
		return http.StatusConflict
	case errors.As(err, &sessionNotFoundErr), errors.As(err, &tokenNotFoundErr), errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrWalletUserRejected):
		return http.StatusForbidden
	case errors.Is(err, ErrWalletProviderAbsent), errors.Is(err, ErrWalletWrongChain):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorKind returns a short label for the error used as a metric label.
func ErrorKind(err error) string {
	var (
		notConnectedErr        NotConnectedError
		validationErr          ValidationError
		insufficientBalanceErr InsufficientBalanceError
		expiredErr             ConfirmationExpiredError
		noPendingErr           NoPendingConfirmationError
	)

	switch {
	case errors.As(err, &notConnectedErr):
		return "not_connected"
	case errors.As(err, &validationErr):
		return "validation"
	case errors.As(err, &insufficientBalanceErr):
		return "insufficient_balance"
	case errors.As(err, &expiredErr):
		return "confirmation_expired"
	case errors.As(err, &noPendingErr):
		return "no_pending_confirmation"
	case errors.Is(err, ErrWalletUserRejected):
		return "wallet_rejected"
	case errors.Is(err, ErrWalletProviderAbsent):
		return "wallet_absent"
	case errors.Is(err, ErrWalletWrongChain):
		return "wallet_wrong_chain"
	default:
		return "internal"
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// NotConnectedError is returned when an action requires a connected wallet.
type NotConnectedError struct {
	Action string
}

func (e NotConnectedError) Error() string {
	return fmt.Sprintf("%s requires a connected wallet", e.Action)
}

// ValidationError is returned for missing, non-positive or malformed input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientBalanceError is returned when removing more liquidity than the position holds.
type InsufficientBalanceError struct {
	Requested string
	Available string
}

func (e InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient LP balance: requested (%s), available (%s)", e.Requested, e.Available)
}

// ConfirmationExpiredError is returned when confirming a swap whose confirmation window has passed.
type ConfirmationExpiredError struct {
	ConfirmationID string
}

func (e ConfirmationExpiredError) Error() string {
	return fmt.Sprintf("swap confirmation (%s) has expired", e.ConfirmationID)
}

// NoPendingConfirmationError is returned when there is no matching swap awaiting confirmation.
type NoPendingConfirmationError struct {
	ConfirmationID string
}

func (e NoPendingConfirmationError) Error() string {
	if e.ConfirmationID == "" {
		return "no swap is awaiting confirmation"
	}
	return fmt.Sprintf("swap confirmation (%s) is not pending", e.ConfirmationID)
}

type SessionNotFoundError struct {
	SessionID string
}

func (e SessionNotFoundError) Error() string {
	return fmt.Sprintf("session (%s) is not found", e.SessionID)
}

type TokenNotFoundError struct {
	Key string
}

func (e TokenNotFoundError) Error() string {
	return fmt.Sprintf("token (%s) is not found", e.Key)
}
