package makuwro

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode is a numeric failure code from the Makuwro API.
type ErrorCode int

// Error codes defined by the server contract.
const (
	CodeUnknown         ErrorCode = 0
	CodeBadCredentials  ErrorCode = 10000
	CodeInvalidToken    ErrorCode = 10001
	CodeAccountBlocked  ErrorCode = 10003
	CodeAccountConflict ErrorCode = 10004
	CodeAccountNotFound ErrorCode = 10005
	CodeUnderage        ErrorCode = 10012
	CodeUsernameFormat  ErrorCode = 10013
	CodeContentConflict ErrorCode = 20000
)

// Errors raised from API responses. Every non-2xx response maps to exactly
// one of these, wrapped in an *APIError.
var (
	// ErrUnknown is the fallback for any unrecognized error code.
	ErrUnknown = errors.New("unknown API error")
	// ErrBadCredentials is returned when session creation fails on a wrong
	// username or password.
	ErrBadCredentials = errors.New("incorrect username or password")
	// ErrUnauthenticated is returned when a session token is missing,
	// invalid, or expired where one is required.
	ErrUnauthenticated = errors.New("missing or invalid session token")
	// ErrAccountBlocked is returned when an action is blocked on a disabled
	// or banned account.
	ErrAccountBlocked = errors.New("account is disabled or banned")
	// ErrAccountConflict is returned when a username is already taken.
	ErrAccountConflict = errors.New("account already exists")
	// ErrAccountNotFound is returned when the lookup target does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrUnderage is returned when account creation is rejected on the
	// birth-date policy.
	ErrUnderage = errors.New("birth date does not meet the minimum age requirement")
	// ErrUsernameFormat is returned when a username fails format validation.
	ErrUsernameFormat = errors.New("username has an invalid format")
	// ErrContentConflict is returned on a duplicate slug or similar content
	// collision.
	ErrContentConflict = errors.New("content with this slug already exists")
)

// Local conditions, raised before or instead of a network result.
var (
	// ErrTimeout is returned when a request exceeds the configured deadline.
	ErrTimeout = errors.New("request timed out")
	// ErrUnallowedFileType is returned when an upload fails the local image
	// decode check.
	ErrUnallowedFileType = errors.New("file is not a decodable image")
	// ErrMissingArgument is returned when a mandatory argument is omitted.
	ErrMissingArgument = errors.New("required argument missing")
)

var codeSentinels = map[ErrorCode]error{
	CodeBadCredentials:  ErrBadCredentials,
	CodeInvalidToken:    ErrUnauthenticated,
	CodeAccountBlocked:  ErrAccountBlocked,
	CodeAccountConflict: ErrAccountConflict,
	CodeAccountNotFound: ErrAccountNotFound,
	CodeUnderage:        ErrUnderage,
	CodeUsernameFormat:  ErrUsernameFormat,
	CodeContentConflict: ErrContentConflict,
}

// errorForCode resolves a server code to its sentinel error. Unrecognized
// codes fall back to ErrUnknown, never to an untyped error.
func errorForCode(code ErrorCode) error {
	if err, ok := codeSentinels[code]; ok {
		return err
	}
	return ErrUnknown
}

// APIError is a non-2xx API response translated into a typed condition.
type APIError struct {
	Code    ErrorCode
	Status  int
	Message string
	err     error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("makuwro API error: code %d (status %d): %s", e.Code, e.Status, e.Message)
}

// Unwrap exposes the sentinel error for errors.Is classification.
func (e *APIError) Unwrap() error { return e.err }

type errorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// errorFromResponse decodes a non-2xx response body and maps its code field
// through the error table. A body that is not valid JSON still produces a
// typed ErrUnknown condition.
func errorFromResponse(status int, body []byte) error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		eb = errorBody{Code: CodeUnknown, Message: string(body)}
	}
	return &APIError{
		Code:    eb.Code,
		Status:  status,
		Message: eb.Message,
		err:     errorForCode(eb.Code),
	}
}
