package method

import "github.com/indigo-web/utils/strcomp"

type Method uint8

const (
	// Extension is any syntactically valid method token not known in advance. The
	// original token must be kept by whoever parsed it.
	Extension Method = iota
	GET
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the known HTTP methods. They are sorted by their integer value, however
// Extension is not included. So in order to index the List, you must subtract 1 first.
var List = []Method{GET, HEAD, POST, PUT, DELETE, CONNECT, OPTIONS, TRACE, PATCH}

var names = [...]string{
	Extension: "",
	GET:       "GET",
	HEAD:      "HEAD",
	POST:      "POST",
	PUT:       "PUT",
	DELETE:    "DELETE",
	CONNECT:   "CONNECT",
	OPTIONS:   "OPTIONS",
	TRACE:     "TRACE",
	PATCH:     "PATCH",
}

// String returns the canonical upper-case name. Extension has none, so an empty
// string is returned instead.
func (m Method) String() string {
	if int(m) >= len(names) {
		return ""
	}

	return names[m]
}

// Parse classifies the token case-insensitively. Unrecognized tokens result in Extension.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if strcomp.EqualFold(str, "GET") {
			return GET
		} else if strcomp.EqualFold(str, "PUT") {
			return PUT
		}
	case 4:
		if strcomp.EqualFold(str, "POST") {
			return POST
		} else if strcomp.EqualFold(str, "HEAD") {
			return HEAD
		}
	case 5:
		if strcomp.EqualFold(str, "PATCH") {
			return PATCH
		} else if strcomp.EqualFold(str, "TRACE") {
			return TRACE
		}
	case 6:
		if strcomp.EqualFold(str, "DELETE") {
			return DELETE
		}
	case 7:
		if strcomp.EqualFold(str, "CONNECT") {
			return CONNECT
		} else if strcomp.EqualFold(str, "OPTIONS") {
			return OPTIONS
		}
	}

	return Extension
}
