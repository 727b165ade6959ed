package handlers

const (
	maxBodyBytes   = 1 << 20
	maxImportBytes = 16 << 20

	ErrInvalidJSON         = "Invalid JSON body"
	ErrInvalidDate         = "Invalid date, expected YYYY-MM-DD"
	ErrUnauthorized        = "Unauthorized"
	ErrNotFound            = "Not found"
	ErrTooManyRequests     = "Too many requests"
	ErrInternalServerError = "Internal server error"
	ErrServiceUnavailable  = "Service unavailable"
)
