package reqhead

import (
	"github.com/indigo-web/reqhead/config"
	"github.com/indigo-web/reqhead/http"
	"github.com/indigo-web/reqhead/internal/transport"
	"github.com/indigo-web/reqhead/internal/transport/http1"
)

// State is the outcome of a single parse attempt.
type State = transport.State

const (
	Incomplete = transport.Incomplete
	Complete   = transport.Complete
	Malformed  = transport.Malformed
)

// Parser parses request heads according to its config. It carries no state among calls,
// so a single instance may be shared by any number of goroutines as long as each of them
// passes its own buffer and header storage.
type Parser struct {
	parser http1.Parser
	logger config.Logger
}

// New returns a new Parser. Passing nil config is the same as passing config.Default().
func New(cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Parser{
		parser: *http1.NewParser(cfg),
		logger: cfg.Logger,
	}
}

// Parse parses the request head at the beginning of data. Headers are written into the
// storage starting from its first element, the storage is never grown: a head carrying more
// headers than len(headers) is rejected with fault.TooManyHeaders.
//
// The returned head is populated only if the state is Complete. It refers to both data and
// headers, so neither may be modified while the head is in use. If the state is Incomplete,
// more data must be read and the whole accumulated buffer passed again. If the state is
// Malformed, the error is a fault.Fault and the buffer must not be retried.
func (p *Parser) Parse(data []byte, headers []http.Header) (State, http.Head, error) {
	return p.parser.Parse(data, headers)
}

// Parse is the same as Parser.Parse, but uses the default config.
func Parse(data []byte, headers []http.Header) (State, http.Head, error) {
	var parser http1.Parser

	return parser.Parse(data, headers)
}
