package service

import "fmt"

// ErrorKind classifies a service error for the HTTP boundary
type ErrorKind int

const (
	// KindClient is a caller mistake: malformed or out-of-range input
	KindClient ErrorKind = iota
	// KindAuth is any authentication failure; always reported generically
	KindAuth
	// KindNotFound means the addressed record does not exist
	KindNotFound
	// KindConfig means a required server secret or setting is unset
	KindConfig
	// KindStore is an unexpected database failure
	KindStore
)

// Error is the typed error returned by all services. Message is safe to show
// the caller; Err carries the internal cause and is only ever logged.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewClientError creates a client-input error with a caller-visible message
func NewClientError(message string) *Error {
	return &Error{Kind: KindClient, Message: message}
}

// NewAuthError creates an authentication error. The message is deliberately
// generic; cause holds the real reason for server-side logs.
func NewAuthError(message string, cause error) *Error {
	return &Error{Kind: KindAuth, Message: message, Err: cause}
}

// NewNotFoundError creates a missing-record error
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewConfigError creates a server-configuration error; the cause never
// reaches the client
func NewConfigError(cause error) *Error {
	return &Error{Kind: KindConfig, Message: "server configuration error", Err: cause}
}

// NewStoreError creates a database error; the cause never reaches the client
func NewStoreError(cause error) *Error {
	return &Error{Kind: KindStore, Message: "internal server error", Err: cause}
}
