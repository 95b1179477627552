package config

// Logger is anything capable of formatted printing, e.g. *log.Logger.
type Logger interface {
	Printf(format string, v ...any)
}

type (
	Headers struct {
		// Number is the capacity of header storage allocated via http.NewHeaders, i.e.
		// the maximal number of headers a single request head may carry.
		Number int
	}

	NewLine struct {
		// RequireCRLF rejects bare LF line terminators with fault.NewLine. Otherwise, they
		// are accepted everywhere CRLF is.
		RequireCRLF bool `test:"nullable"`
	}

	Faults struct {
		// Specific makes a bad request target reported as fault.InvalidPath and a bad
		// protocol token as fault.InvalidVersion instead of generic fault.Token and
		// fault.Version respectively.
		Specific bool `test:"nullable"`
	}

	Head struct {
		// BufferSize is the size of a buffer used to accumulate a request head while
		// reading it from a stream. Heads not fitting into it are rejected.
		BufferSize int
	}
)

// Config holds settings of the parser and its helpers.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Headers Headers
	NewLine NewLine
	Faults  Faults
	Head    Head
	// Logger receives a line per rejected request head. Nil disables logging.
	Logger Logger `test:"nullable"`
}

// Default returns default config. The parser is lenient by default: bare LF is accepted
// and faults are generic.
func Default() *Config {
	return &Config{
		Headers: Headers{
			Number: 50,
		},
		Head: Head{
			// 8kb is what most web-entities limit the request head to.
			BufferSize: 8 * 1024,
		},
	}
}
