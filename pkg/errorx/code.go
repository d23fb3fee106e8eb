package errorx

type Code int

var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Common codes
	BadRequest       Code = 100001
	BadResponse      Code = 100002
	PermissionDenied Code = 100003
	NotFound         Code = 100004
	Unauthenticated  Code = 100005
	AlreadyExists    Code = 100006
	Internal         Code = 100007
	Unavailable      Code = 100008
	NotImplemented   Code = 100009
	TooManyRequests  Code = 100010

	// Ledger codes
	InvalidAmount       Code = 200001
	DuplicateClaim      Code = 200002
	AlreadyClaimed      Code = 200003
	InsufficientCredits Code = 200004

	// Ticket codes
	OutOfRange      Code = 300001
	DuplicateNumber Code = 300002

	// Draw codes
	WindowResolution Code = 400001
	OutcomeRecorded  Code = 400002
)
