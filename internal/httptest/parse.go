package httptest

import (
	"fmt"
	"strings"

	"github.com/indigo-web/reqhead/http"
)

// Request is a request head parsed in the most straightforward way possible. It serves
// as a reference for the zero-copy parser and expects canonical input only: CRLF line
// terminators and exactly one space after every colon.
type Request struct {
	Method  string
	Path    string
	Proto   string
	Headers []http.Header
	Body    string
}

func Parse(raw string) (request Request, err error) {
	var (
		found bool
		line  string
	)

	line, raw, found = strings.Cut(raw, "\r\n")
	if !found {
		return request, fmt.Errorf("bad request line: no breaking CRLF")
	}

	request.Method, line, found = strings.Cut(line, " ")
	if !found || len(request.Method) == 0 {
		return request, fmt.Errorf("bad request line: lacking method")
	}

	request.Path, request.Proto, found = strings.Cut(line, " ")
	if !found || len(request.Path) == 0 || len(request.Proto) == 0 {
		return request, fmt.Errorf("bad request line: lacking path or protocol")
	}

	for {
		var headerLine string
		headerLine, raw, found = strings.Cut(raw, "\r\n")
		if !found {
			return request, fmt.Errorf("bad header line %s: no breaking CRLF", headerLine)
		}

		if len(headerLine) == 0 {
			break
		}

		key, value, err := parseHeaderLine(headerLine)
		if err != nil {
			return request, err
		}

		request.Headers = append(request.Headers, http.Header{Key: key, Value: value})
	}

	request.Body = raw

	return request, nil
}

func parseHeaderLine(line string) (key, value string, err error) {
	var found bool
	key, value, found = strings.Cut(line, ": ")
	if !found {
		return "", "", fmt.Errorf("bad header %s: no value", line)
	}

	if len(key) == 0 {
		return "", "", fmt.Errorf("bad header %s: empty key", line)
	}

	return key, value, nil
}
