package apperrors

import (
	"net/http"
)

// Factories and predefined variables for domain errors. Repositories return
// their own sentinel errors; services translate them into these.

// ErrNotFound converts a repository not-found into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrInvalidOperation is the conflict class of the verification flow:
// the request is well-formed but invalid in the account's current state.
// The client contract uses 400 for these, matching the registration API.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrDependencyFailure marks an outbound collaborator failure that aborts the
// operation itself (SMTP during registration).
func ErrDependencyFailure(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusInternalServerError)
}

// ErrUpstreamUnavailable marks a failed pass-through to an upstream API.
func ErrUpstreamUnavailable(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusBadGateway)
}

// --- Auth & verification ---

// ErrInvalidCredentials is shared by unknown-email and wrong-password so the
// response gives no account-enumeration signal.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrEmailNotVerified rejects a login whose credentials matched but whose
// email is still unverified. Distinct from ErrInvalidCredentials on purpose.
var ErrEmailNotVerified = New(
	CodeForbidden,
	"auth",
	"Please verify your email first",
	http.StatusForbidden,
)

var ErrEmailAlreadyVerified = ErrInvalidOperation("verification", "Email is already verified")

var ErrNoVerificationCode = ErrInvalidOperation("verification", "No verification code exists for this user")

var ErrInvalidVerificationCode = New(
	CodeValidationFailed,
	"verification",
	"Invalid verification code",
	http.StatusBadRequest,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"auth",
	"User with this email does not exist",
	http.StatusNotFound,
)

var ErrSessionRequired = New(
	CodeUnauthorized,
	"auth",
	"Authentication required",
	http.StatusUnauthorized,
)

// --- Listings ---

// ErrNotOwner rejects an update or delete on a listing the caller does not own.
var ErrNotOwner = New(
	CodeForbidden,
	"listing",
	"You do not have permission to modify this resource",
	http.StatusForbidden,
)
