package octets

// class describes which grammar productions a single byte may belong to.
//
//	tchar      = "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "." /
//	             "^" / "_" / "`" / "|" / "~" / DIGIT / ALPHA
//	field-vchar = VCHAR / obs-text
//	path char  = VCHAR
type class uint8

const (
	token class = 1 << iota
	value
	path
	space
)

var table [256]class

func init() {
	for c := 0; c < 256; c++ {
		var t class

		switch {
		case c == ' ' || c == '\t':
			t |= space | value
		case c < 0x20 || c == 0x7f:
		case c > 0x7f:
			t |= value
		default:
			t |= value | path
			if !isSeparator(byte(c)) {
				t |= token
			}
		}

		table[c] = t
	}
}

func isSeparator(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/', '[', ']', '?', '=', '{', '}':
		return true
	}

	return false
}

// IsMethod reports whether c may appear in a request method token.
func IsMethod(c byte) bool { return table[c]&token != 0 }

// IsHeaderName reports whether c may appear in a header field name.
func IsHeaderName(c byte) bool { return table[c]&token != 0 }

// IsHeaderValue reports whether c may appear in a header field value. Horizontal tab is
// the only control character permitted.
func IsHeaderValue(c byte) bool { return table[c]&value != 0 }

// IsPath reports whether c is a visible ASCII character allowed in a request target.
func IsPath(c byte) bool { return table[c]&path != 0 }

// IsSpace reports whether c is SP or HTAB.
func IsSpace(c byte) bool { return table[c]&space != 0 }
