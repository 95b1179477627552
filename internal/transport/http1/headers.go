package http1

import (
	"github.com/indigo-web/reqhead/http"
	"github.com/indigo-web/reqhead/http/fault"
	"github.com/indigo-web/reqhead/internal/octets"
	"github.com/indigo-web/utils/uf"
)

// scanHeaders fills the storage with headers until the empty line terminating the head.
// Returned n is the offset right after that line, relative to data. Zero n and nil error
// mean the head isn't complete yet.
func (p *Parser) scanHeaders(data []byte, storage []http.Header) (count, n int, err error) {
	for {
		rest := data[n:]
		if len(rest) == 0 {
			return count, 0, nil
		}

		if char := rest[0]; char == '\r' || char == '\n' {
			size, err := p.terminator(rest)
			if size == 0 {
				return count, 0, err
			}

			return count, n + size, nil
		}

		if count == len(storage) {
			return count, 0, fault.TooManyHeaders
		}

		header, size, err := p.scanHeaderLine(rest)
		if size == 0 {
			return count, 0, err
		}

		storage[count] = header
		count++
		n += size
	}
}

// scanHeaderLine scans a single `key: value` line including its terminator.
func (p *Parser) scanHeaderLine(data []byte) (header http.Header, n int, err error) {
	colon := 0
	for ; colon < len(data); colon++ {
		if data[colon] == ':' {
			break
		}

		// also covers whitespaces around the key and line terminators
		if !octets.IsHeaderName(data[colon]) {
			return header, 0, fault.HeaderName
		}
	}

	switch colon {
	case len(data):
		return header, 0, nil
	case 0:
		return header, 0, fault.HeaderName
	}

	i := colon + 1
	for i < len(data) && octets.IsSpace(data[i]) {
		i++
	}

	valueBegin := i
	for ; i < len(data); i++ {
		char := data[i]
		if char == '\r' || char == '\n' {
			break
		}

		if !octets.IsHeaderValue(char) {
			return header, 0, fault.HeaderValue
		}
	}

	if i == len(data) {
		return header, 0, nil
	}

	valueEnd := i
	for valueEnd > valueBegin && octets.IsSpace(data[valueEnd-1]) {
		valueEnd--
	}

	size, err := p.terminator(data[i:])
	if size == 0 {
		return header, 0, err
	}

	return http.Header{
		Key:   uf.B2S(data[:colon]),
		Value: uf.B2S(data[valueBegin:valueEnd]),
	}, i + size, nil
}
