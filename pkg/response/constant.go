package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ErrorCodeBadRequest      = 1
	ErrorCodeConflict        = 409
	ErrorCodeTooManyRequests = 429
	InternalServerErrorCode  = 500
	ErrorCodeUnavailable     = 503

	DateTimeFormat = "2006-01-02 15:04:05"
)
