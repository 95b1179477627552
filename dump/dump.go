package dump

import (
	"io"

	"github.com/indigo-web/reqhead/http"
	"github.com/indigo-web/reqhead/http/method"
	json "github.com/json-iterator/go"
)

// Head renders the head back into its wire form. For a head received in canonical form
// (CRLF terminators, a single space after the colon, no trailing whitespaces) the result
// is byte-to-byte equal to the parsed data up to the body offset.
func Head(head http.Head) []byte {
	return AppendHead(nil, head)
}

// AppendHead is the same as Head, but appends to the passed buffer.
func AppendHead(buff []byte, head http.Head) []byte {
	buff = append(buff, head.MethodToken...)
	buff = append(buff, ' ')
	buff = append(buff, head.Path...)
	buff = append(buff, ' ')
	buff = append(buff, head.Proto.String()...)
	buff = append(buff, '\r', '\n')

	for _, h := range head.Headers {
		buff = header(buff, h)
	}

	return append(buff, '\r', '\n')
}

func header(b []byte, h http.Header) []byte {
	b = append(b, h.Key...)
	b = append(b, ':', ' ')
	b = append(b, h.Value...)

	return append(b, '\r', '\n')
}

type jsonHeader struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type jsonHead struct {
	Method     string       `json:"method"`
	Extension  bool         `json:"extension"`
	Path       string       `json:"path"`
	Protocol   string       `json:"protocol"`
	Version    uint8        `json:"version"`
	Headers    []jsonHeader `json:"headers"`
	BodyOffset int          `json:"body_offset"`
	BodyLength int          `json:"body_length"`
}

// JSON writes a diagnostic JSON representation of the head. The body itself isn't
// included, only its position.
func JSON(w io.Writer, head http.Head) error {
	model := jsonHead{
		Method:     head.MethodString(),
		Extension:  head.Method == method.Extension,
		Path:       head.Path,
		Protocol:   head.Proto.String(),
		Version:    head.Version(),
		Headers:    make([]jsonHeader, len(head.Headers)),
		BodyOffset: head.BodyOffset,
		BodyLength: len(head.Body),
	}

	for i, h := range head.Headers {
		model.Headers[i] = jsonHeader(h)
	}

	stream := json.ConfigDefault.BorrowStream(w)
	stream.WriteVal(model)
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return err
}
