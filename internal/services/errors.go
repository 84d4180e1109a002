package services

// ErrorKind classifies a service failure so handlers can map it to a status
// code without inspecting message text.
type ErrorKind int

const (
	// KindValidation is a missing or malformed caller-supplied field.
	KindValidation ErrorKind = iota
	// KindUnavailable means the backing store or model handle was never initialized.
	KindUnavailable
	// KindUpstream is a failed call to an initialized external service.
	KindUpstream
)

// Error carries a user-visible message and its kind. Upstream detail is logged
// where the failure happens and never placed in Message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func validationErr(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func unavailableErr(message string) *Error {
	return &Error{Kind: KindUnavailable, Message: message}
}

func upstreamErr(message string) *Error {
	return &Error{Kind: KindUpstream, Message: message}
}

// KindOf extracts the kind from a service error, defaulting to KindUpstream.
func KindOf(err error) ErrorKind {
	if svcErr, ok := err.(*Error); ok {
		return svcErr.Kind
	}
	return KindUpstream
}
