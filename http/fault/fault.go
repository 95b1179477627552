package fault

import "github.com/indigo-web/reqhead/http/status"

// Fault is a reason for rejecting a request head. Being a plain integer, returning it as
// an error doesn't allocate.
type Fault uint8

const (
	// Token means the method or the request target is empty or holds illegal bytes.
	Token Fault = iota + 1
	// HeaderName means a header name is empty, holds illegal bytes or is surrounded
	// by whitespace.
	HeaderName
	// HeaderValue means a header value holds a control byte other than HTAB.
	HeaderValue
	// NewLine means a line terminator is malformed, e.g. CR without LF or a bare LF
	// when CRLF is required.
	NewLine
	// Version means the protocol token is neither HTTP/1.0 nor HTTP/1.1.
	Version
	// Status means the parser reached an inconsistent state. Never expected.
	Status
	// TooManyHeaders means the head carries more headers than the storage can hold.
	TooManyHeaders
	// InvalidMethod is reserved: every well-formed token is accepted as an extension
	// method, so nothing reports it at the moment.
	InvalidMethod
	// InvalidPath replaces Token for the request target when specific faults are enabled.
	InvalidPath
	// InvalidVersion replaces Version when specific faults are enabled.
	InvalidVersion
)

var messages = [...]string{
	Token:          "bad token",
	HeaderName:     "bad header name",
	HeaderValue:    "bad header value",
	NewLine:        "bad line terminator",
	Version:        "unsupported protocol version",
	Status:         "inconsistent parser state",
	TooManyHeaders: "too many headers",
	InvalidMethod:  "invalid method",
	InvalidPath:    "invalid request target",
	InvalidVersion: "invalid protocol version",
}

func (f Fault) Error() string {
	if int(f) >= len(messages) || len(messages[f]) == 0 {
		return "unknown fault"
	}

	return messages[f]
}

// Code returns the status code a server is expected to respond with.
func (f Fault) Code() status.Code {
	switch f {
	case TooManyHeaders:
		return status.RequestHeaderFieldsTooLarge
	case Version, InvalidVersion:
		return status.HTTPVersionNotSupported
	case InvalidMethod:
		return status.NotImplemented
	default:
		return status.BadRequest
	}
}
