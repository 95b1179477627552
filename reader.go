package reqhead

import (
	"errors"
	"io"

	"github.com/indigo-web/reqhead/config"
	"github.com/indigo-web/reqhead/http"
)

var ErrHeadTooLarge = errors.New("request head is too large")

// NewBuffer returns a buffer suitable for ReadHead.
func NewBuffer(cfg *config.Config) []byte {
	return make([]byte, cfg.Head.BufferSize)
}

// ReadHead reads from src into buff until it holds a complete request head, parsing the
// whole accumulated data after every read. Bytes read past the head are available
// through http.Head.Body.
//
// ErrHeadTooLarge is returned if buff is filled up before the head is complete. If src
// ends before the head is complete, io.ErrUnexpectedEOF is returned, or io.EOF if
// nothing was read at all.
func (p *Parser) ReadHead(src io.Reader, buff []byte, headers []http.Header) (http.Head, error) {
	var n int

	for {
		if n == len(buff) {
			p.reject(buff[:n], ErrHeadTooLarge)
			return http.Head{}, ErrHeadTooLarge
		}

		read, err := src.Read(buff[n:])
		n += read

		if read > 0 {
			state, head, perr := p.parser.Parse(buff[:n], headers)
			switch state {
			case Complete:
				return head, nil
			case Malformed:
				p.reject(buff[:n], perr)
				return http.Head{}, perr
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				if n == 0 {
					return http.Head{}, io.EOF
				}

				return http.Head{}, io.ErrUnexpectedEOF
			}

			return http.Head{}, err
		}
	}
}

func (p *Parser) reject(data []byte, err error) {
	if p.logger == nil {
		return
	}

	const preview = 64
	read := len(data)
	if read > preview {
		data = data[:preview]
	}

	p.logger.Printf("reqhead: rejecting request head (%d bytes read): %s: %q", read, err, data)
}
