package apperrors

import "net/http"

/*
Предопределенные ошибки домена. Сравниваются через Is,
поэтому их можно возвращать как есть или через WithError.
*/

// --- Auth ---

var ErrAuthRequired = New(
	CodeUnauthorized,
	"auth",
	"Authentication required",
	http.StatusUnauthorized,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

var ErrInvalidUserRole = New(
	CodeValidationFailed,
	"validation",
	"Role must be either 'user' or 'mentor'",
	http.StatusBadRequest,
)

// --- Users ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"User already exists",
	http.StatusConflict,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// --- Review requests ---

var ErrReviewRequestNotFound = New(
	CodeNotFound,
	"review_request",
	"Review request not found",
	http.StatusNotFound,
)

var ErrMenteeUnresolvable = New(
	CodeValidationFailed,
	"review_request",
	"Mentee account could not be resolved",
	http.StatusBadRequest,
)

var ErrPaymentNotApproved = New(
	CodePreconditionFailed,
	"review_request",
	"Payment has not been approved yet",
	http.StatusConflict,
)

var ErrPaymentRejected = New(
	CodePreconditionFailed,
	"review_request",
	"Payment was rejected",
	http.StatusConflict,
)

var ErrPaymentAlreadyApproved = New(
	CodePreconditionFailed,
	"review_request",
	"Payment is already approved",
	http.StatusConflict,
)

var ErrReviewAlreadyCompleted = New(
	CodePreconditionFailed,
	"review_request",
	"Review is already completed",
	http.StatusConflict,
)

// --- Portfolio ---

// ErrPortfolioLocked - у владельца нет подтвержденной оплаты.
// Отличается от ErrUserNotFound: пользователь существует, но доступ закрыт.
var ErrPortfolioLocked = New(
	CodePaymentRequired,
	"portfolio",
	"Access denied. This user has not paid or the payment is not verified yet.",
	http.StatusForbidden,
)

var ErrProjectNotFound = New(
	CodeNotFound,
	"project",
	"Project not found",
	http.StatusNotFound,
)

var ErrCertificateNotFound = New(
	CodeNotFound,
	"certificate",
	"Certificate not found",
	http.StatusNotFound,
)

// --- Media ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"media",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"media",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

var ErrInvalidImageRef = New(
	CodeValidationFailed,
	"media",
	"Image must be an http(s) URL or a base64 data URL",
	http.StatusBadRequest,
)
