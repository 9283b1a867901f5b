package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody  = Error("invalid request body")
	ErrUserAlreadyExists   = Error("user already exists")
	ErrUserNotFound        = Error("user not found")
	ErrUserIsNil           = Error("user is nil")
	ErrWrongPassword       = Error("wrong password")
	ErrWrongEmail          = Error("wrong email")
	ErrInvalidToken        = Error("invalid token")
	ErrInvalidEmail        = Error("invalid email")
	ErrInvalidPassword     = Error("invalid password")
	ErrInvalidUser         = Error("invalid user")
	ErrInvalidRequest      = Error("invalid request")
	ErrInvalidParams       = Error("invalid params")
	ErrFirstName           = Error("first name is empty or too short")
	ErrLastName            = Error("last name is empty or too short")
	ErrUnauthorized        = Error("unauthorized")
	ErrForbidden           = Error("forbidden")
	ErrInvalidRole         = Error("invalid role")
	ErrCaseNotFound        = Error("tax case not found")
	ErrInvalidCaseStatus   = Error("invalid case status")
	ErrInvalidCaseId       = Error("invalid case id")
	ErrAppointmentNotFound = Error("appointment not found")
	ErrInvalidAppointment  = Error("invalid appointment")
	ErrInvalidTaxYear      = Error("invalid tax year")
	ErrEmptyMessage        = Error("message content is empty")
	ErrRecipientNotFound   = Error("recipient not found")
	ErrFileNotProvided     = Error("file not provided")

	ErrTooManyConnections = Error("too many connections for user")
	ErrConnectionClosed   = Error("connection is closed")
)
