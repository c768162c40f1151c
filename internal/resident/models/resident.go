package models

// Client-facing messages for registry failures.
const (
	MessageNameRequired     = `Field "name" is required`
	MessageAgeInvalid       = `Field "age" must be a non-negative number`
	MessageResidentNotFound = "Resident not found"
)

// Resident is the only record held by the registry.
//
// Invariants:
//   - ID is positive, assigned by the store, and never reused
//   - Name is non-empty and already trimmed
//   - Age is non-negative
type Resident struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// NewResident is validated create input, ready to be assigned an ID.
type NewResident struct {
	Name string
	Age  int
}

// ValidationReason enumerates why create input was rejected.
type ValidationReason int

const (
	ReasonNameRequired ValidationReason = iota + 1
	ReasonAgeInvalid
)

// Field names the request field the reason refers to.
func (r ValidationReason) Field() string {
	switch r {
	case ReasonNameRequired:
		return "name"
	case ReasonAgeInvalid:
		return "age"
	default:
		return "unknown"
	}
}

// Message is the client-facing description of the reason.
func (r ValidationReason) Message() string {
	switch r {
	case ReasonNameRequired:
		return MessageNameRequired
	case ReasonAgeInvalid:
		return MessageAgeInvalid
	default:
		return "invalid input"
	}
}

// ValidationError reports the first create field that failed validation.
type ValidationError struct {
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	return e.Reason.Message()
}
