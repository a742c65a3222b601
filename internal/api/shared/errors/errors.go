package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/conquerblocks/nft-marketplace/internal/auth"
	"github.com/conquerblocks/nft-marketplace/internal/chain"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/providers/ipfs"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest        ErrorCode = "bad_request"
	ErrCodeNotFound          ErrorCode = "not_found"
	ErrCodeValidationFailed  ErrorCode = "validation_failed"
	ErrCodeUnauthorized      ErrorCode = "unauthorized"
	ErrCodeForbidden         ErrorCode = "forbidden"
	ErrCodeTooManyRequests   ErrorCode = "too_many_requests"
	ErrCodeExecutionReverted ErrorCode = "execution_reverted"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeServiceError  ErrorCode = "service_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// StatusCode returns the HTTP status of the error code
func (e *APIError) StatusCode() int {
	switch e.Code {
	case ErrCodeBadRequest, ErrCodeValidationFailed, ErrCodeExecutionReverted:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeTooManyRequests:
		return http.StatusTooManyRequests
	case ErrCodeServiceError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewTooManyRequestsError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeTooManyRequests,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// NewExecutionRevertedError carries the revert reason in the details
func NewExecutionRevertedError(reason string) *APIError {
	return &APIError{
		Code:    ErrCodeExecutionReverted,
		Message: "Execution reverted",
		Details: reason,
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewServiceError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeServiceError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// FromError maps an error returned by the executor to an APIError.
// Internal errors keep their text out of the response.
func FromError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var revertErr *chain.RevertError
	if errors.As(err, &revertErr) {
		return NewExecutionRevertedError(revertErr.Reason)
	}

	switch {
	case errors.Is(err, domain.ErrNotDeployed):
		return NewNotFoundError("Contracts not found", err.Error())
	case errors.Is(err, domain.ErrTokenNotFound):
		return NewNotFoundError("Token not found")
	case errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(err.Error())
	case errors.Is(err, auth.ErrNonceNotFound),
		errors.Is(err, auth.ErrInvalidSignature),
		errors.Is(err, auth.ErrAddressSignatureMismatch),
		errors.Is(err, auth.ErrInvalidToken):
		return NewUnauthorizedError("Authentication failed", err.Error())
	case errors.Is(err, ipfs.ErrEmptyUpload),
		errors.Is(err, ipfs.ErrUploadTooLarge):
		return NewBadRequestError("Invalid upload", err.Error())
	}

	return NewInternalError("Internal server error")
}
