package http

import (
	"github.com/indigo-web/reqhead/config"
	"github.com/indigo-web/reqhead/http/method"
	"github.com/indigo-web/reqhead/http/proto"
	"github.com/indigo-web/utils/strcomp"
)

// Header is a single header field. Both key and value point into the parsed buffer.
type Header struct {
	Key, Value string
}

// NewHeaders returns header storage sized according to the config.
func NewHeaders(cfg *config.Config) []Header {
	return make([]Header, cfg.Headers.Number)
}

// Head is a completely parsed request head. It doesn't own any memory: all the strings
// and slices refer either to the parsed buffer or to the header storage, therefore
// are valid only as long as both stay untouched.
type Head struct {
	Method method.Method
	// MethodToken is the method exactly as it was received. It's the only source of
	// the method's name if Method is method.Extension.
	MethodToken string
	Path        string
	Proto       proto.Proto
	// Headers is the filled prefix of the header storage, in order of appearance.
	Headers []Header
	// BodyOffset is the index in the parsed buffer the body starts at.
	BodyOffset int
	// Body holds everything received after the head. It's not necessarily a complete
	// body, nor is it necessarily a body at all (e.g. pipelined requests).
	Body []byte
}

// Version returns the minor protocol version: 0 for HTTP/1.0 and 1 for HTTP/1.1.
func (h Head) Version() uint8 {
	return h.Proto.Minor()
}

// MethodString returns the canonical method name, or the original token for
// extension methods.
func (h Head) MethodString() string {
	if h.Method == method.Extension {
		return h.MethodToken
	}

	return h.Method.String()
}

// Header returns the value of the first header with a matching key. Keys are compared
// case-insensitively.
func (h Head) Header(key string) (string, bool) {
	for _, header := range h.Headers {
		if strcomp.EqualFold(header.Key, key) {
			return header.Value, true
		}
	}

	return "", false
}
