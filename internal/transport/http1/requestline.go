package http1

import (
	"github.com/indigo-web/reqhead/http/fault"
	"github.com/indigo-web/reqhead/http/proto"
	"github.com/indigo-web/reqhead/internal/octets"
	"github.com/indigo-web/utils/uf"
)

type requestLine struct {
	method, path string
	proto        proto.Proto
}

// scanRequestLine scans the request line at the very beginning of data. Zero n and nil
// error mean the line isn't complete yet.
func (p *Parser) scanRequestLine(data []byte) (line requestLine, n int, err error) {
	sp := 0
	for ; sp < len(data); sp++ {
		if data[sp] == ' ' {
			break
		}

		if !octets.IsMethod(data[sp]) {
			return line, 0, fault.Token
		}
	}

	switch sp {
	case len(data):
		return line, 0, nil
	case 0:
		return line, 0, fault.Token
	}

	line.method = uf.B2S(data[:sp])
	pathBegin := sp + 1
	i := pathBegin

	for ; i < len(data); i++ {
		char := data[i]
		if char == ' ' {
			break
		}

		if !octets.IsPath(char) {
			if char == '\r' || char == '\n' {
				// the line is over, but there was no protocol
				return line, 0, p.versionFault()
			}

			return line, 0, p.pathFault()
		}
	}

	switch i {
	case len(data):
		return line, 0, nil
	case pathBegin:
		return line, 0, p.pathFault()
	}

	line.path = uf.B2S(data[pathBegin:i])
	i++

	for j := 0; j < len(proto.Prefix); j, i = j+1, i+1 {
		if i >= len(data) {
			return line, 0, nil
		}

		if data[i] != proto.Prefix[j] {
			return line, 0, p.versionFault()
		}
	}

	if i >= len(data) {
		return line, 0, nil
	}

	if line.proto = proto.FromMinor(data[i]); line.proto == proto.Unknown {
		return line, 0, p.versionFault()
	}

	i++
	if i >= len(data) {
		return line, 0, nil
	}

	if char := data[i]; char != '\r' && char != '\n' {
		return line, 0, p.versionFault()
	}

	size, err := p.terminator(data[i:])
	if size == 0 {
		return line, 0, err
	}

	return line, i + size, nil
}

// terminator consumes a line terminator data begins with. The first byte must be either
// CR or LF. Zero size and nil error mean the terminator is cut by the end of data.
func (p *Parser) terminator(data []byte) (size int, err error) {
	if len(data) == 0 {
		return 0, nil
	}

	switch data[0] {
	case '\n':
		if p.requireCRLF {
			return 0, fault.NewLine
		}

		return 1, nil
	case '\r':
		if len(data) == 1 {
			return 0, nil
		}

		if data[1] != '\n' {
			return 0, fault.NewLine
		}

		return 2, nil
	default:
		return 0, fault.Status
	}
}

func (p *Parser) pathFault() error {
	if p.specific {
		return fault.InvalidPath
	}

	return fault.Token
}

func (p *Parser) versionFault() error {
	if p.specific {
		return fault.InvalidVersion
	}

	return fault.Version
}
