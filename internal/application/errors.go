package application

// Kind classifies a client-facing failure. The HTTP layer maps kinds to
// status codes.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthentication
	KindConflict
	KindNotFound
)

// Error is a failure whose Message is safe to show to the client verbatim.
type Error struct {
	Kind    Kind
	Message string
	Code    string
}

func (e *Error) Error() string { return e.Message }

func invalid(msg string) *Error      { return &Error{Kind: KindValidation, Message: msg} }
func unauthorized(msg string) *Error { return &Error{Kind: KindAuthentication, Message: msg} }

// Registration
var (
	ErrRegistrationFieldsRequired = invalid("Email, password, and name are required")
	ErrPasswordTooShort           = invalid("Password must be at least 8 characters long")
	ErrPasswordNoUppercase        = invalid("Password must contain at least one uppercase letter")
	ErrPasswordNoDigit            = invalid("Password must contain at least one number")
	ErrPasswordTooLong            = invalid("Password must be at most 72 bytes long")
	ErrInvalidEmail               = invalid("Please enter a valid email address")
	ErrNameTooShort               = invalid("Name must be at least 2 characters long")
	ErrNameTooLong                = invalid("Name must be at most 100 characters long")
	ErrEmailRegistered            = &Error{Kind: KindConflict, Message: "Email already registered"}
)

// Login
var (
	ErrCredentialsRequired = invalid("Email and password are required")
	ErrInvalidCredentials  = unauthorized("Invalid email or password")
	ErrAccountDeactivated  = unauthorized("Account is deactivated")
)

// Refresh and logout
var (
	ErrRefreshTokenRequired = unauthorized("Refresh token required")
	ErrInvalidRefreshToken  = unauthorized("Invalid or expired refresh token")
	ErrRefreshNotRecognized = unauthorized("Refresh token not recognized")
	ErrNotAuthenticated     = unauthorized("Not authenticated")
	ErrSessionExpired       = unauthorized("Session expired")
)

// Access gate
var (
	ErrAccessTokenRequired = unauthorized("Access token required")
	ErrInvalidToken        = unauthorized("Invalid token")
	ErrTokenExpired        = &Error{Kind: KindAuthentication, Message: "Token expired", Code: "TOKEN_EXPIRED"}
	ErrUserNotFound        = &Error{Kind: KindNotFound, Message: "User not found"}
)
