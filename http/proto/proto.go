package proto

import "github.com/indigo-web/utils/uf"

type Proto uint8

const (
	Unknown Proto = 0
	HTTP10  Proto = 1 << iota
	HTTP11

	HTTP1 = HTTP10 | HTTP11
)

func (p Proto) String() string {
	lut := [...]string{HTTP10: "HTTP/1.0", HTTP11: "HTTP/1.1"}
	if int(p) >= len(lut) {
		return ""
	}

	return lut[p]
}

// Minor returns the minor version number: 0 for HTTP/1.0 and 1 for HTTP/1.1. Unknown
// protocols have no minor version, so 0xff is returned.
func (p Proto) Minor() uint8 {
	switch p {
	case HTTP10:
		return 0
	case HTTP11:
		return 1
	default:
		return 0xff
	}
}

// Prefix is the part of the protocol token shared by all supported versions.
const Prefix = "HTTP/1."

const protoTokenLength = len("HTTP/x.x")

// FromMinor maps the digit following Prefix to the protocol.
func FromMinor(digit byte) Proto {
	switch digit {
	case '0':
		return HTTP10
	case '1':
		return HTTP11
	default:
		return Unknown
	}
}

func FromBytes(raw []byte) Proto {
	if len(raw) != protoTokenLength || uf.B2S(raw[:len(Prefix)]) != Prefix {
		return Unknown
	}

	return FromMinor(raw[len(Prefix)])
}
