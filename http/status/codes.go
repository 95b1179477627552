package status

type (
	Code   uint16
	Status string
)

// Status codes a rejected request head can be answered with. The set is intentionally
// narrow: everything beyond the head is decided by the caller.
const (
	BadRequest                  Code = 400 // RFC 9110, 15.5.1
	RequestHeaderFieldsTooLarge Code = 431 // RFC 6585, 5
	NotImplemented              Code = 501 // RFC 9110, 15.6.2
	HTTPVersionNotSupported     Code = 505 // RFC 9110, 15.6.6
)

// Text returns a reason phrase for the code. Unknown codes result in a generic phrase.
func Text(code Code) Status {
	switch code {
	case BadRequest:
		return "Bad Request"
	case RequestHeaderFieldsTooLarge:
		return "Request Header Fields Too Large"
	case NotImplemented:
		return "Not Implemented"
	case HTTPVersionNotSupported:
		return "HTTP Version Not Supported"
	default:
		return "Unknown Status Code"
	}
}
