package http1

import (
	"github.com/indigo-web/reqhead/config"
	"github.com/indigo-web/reqhead/http"
	"github.com/indigo-web/reqhead/http/fault"
	"github.com/indigo-web/reqhead/http/method"
	"github.com/indigo-web/reqhead/internal/transport"
)

var _ transport.Parser = new(Parser)

// Parser turns a buffer into a request head without copying or allocating anything. It
// keeps no state among calls: each call parses the passed buffer from the very beginning,
// so after transport.Incomplete the caller must pass the whole grown buffer again.
//
// Zero value is ready to use and is equal to the parser built from the default config.
type Parser struct {
	requireCRLF bool
	specific    bool
}

func NewParser(cfg *config.Config) *Parser {
	return &Parser{
		requireCRLF: cfg.NewLine.RequireCRLF,
		specific:    cfg.Faults.Specific,
	}
}

// Parse parses data, filling the storage with headers. The storage is never grown,
// so its length limits the number of headers. Returned head is populated only if the
// state is transport.Complete and refers to both data and storage.
func (p *Parser) Parse(data []byte, storage []http.Header) (state transport.State, head http.Head, err error) {
	line, n, err := p.scanRequestLine(data)
	if err != nil {
		return transport.Malformed, head, err
	}

	if n == 0 {
		return transport.Incomplete, head, nil
	}

	count, size, err := p.scanHeaders(data[n:], storage)
	if err != nil {
		return transport.Malformed, head, err
	}

	if size == 0 {
		return transport.Incomplete, head, nil
	}

	offset := n + size
	if offset > len(data) || len(line.method) == 0 || len(line.path) == 0 {
		return transport.Malformed, head, fault.Status
	}

	return transport.Complete, http.Head{
		Method:      method.Parse(line.method),
		MethodToken: line.method,
		Path:        line.path,
		Proto:       line.proto,
		Headers:     storage[:count],
		BodyOffset:  offset,
		Body:        data[offset:],
	}, nil
}
