package transport

import "github.com/indigo-web/reqhead/http"

type Parser interface {
	Parse(data []byte, headers []http.Header) (state State, head http.Head, err error)
}

// State represents the outcome of a single parse attempt
type State uint8

const (
	// Incomplete means the buffer holds no complete head yet. It isn't an error: the
	// caller is expected to read more and parse the whole grown buffer again.
	Incomplete State = iota + 1
	// Complete means the head is parsed and the returned http.Head is populated.
	Complete
	// Malformed means the buffer can never become a valid head. The error holds the
	// reason.
	Malformed
)

func (s State) String() string {
	switch s {
	case Incomplete:
		return "incomplete"
	case Complete:
		return "complete"
	case Malformed:
		return "malformed"
	default:
		return "unknown"
	}
}
