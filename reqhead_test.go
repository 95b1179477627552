package reqhead

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/reqhead/config"
	"github.com/indigo-web/reqhead/dump"
	"github.com/indigo-web/reqhead/http"
	"github.com/indigo-web/reqhead/http/fault"
	"github.com/indigo-web/reqhead/http/method"
	"github.com/indigo-web/reqhead/internal/requestgen"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	headers := make([]http.Header, 25)

	t.Run("complete", func(t *testing.T) {
		data := []byte("PUT / HTTP/1.1\r\nHost: mysite.com\r\nAccept: */*\r\n\r\nBODY")
		state, head, err := Parse(data, headers)
		require.NoError(t, err)
		require.Equal(t, Complete, state)
		require.Equal(t, method.PUT, head.Method)
		require.Equal(t, "/", head.Path)
		require.Equal(t, uint8(1), head.Version())
		require.Equal(t, []http.Header{{"Host", "mysite.com"}, {"Accept", "*/*"}}, head.Headers)
		require.Equal(t, "BODY", string(head.Body))
		require.Equal(t, "BODY", string(data[head.BodyOffset:]))
	})

	t.Run("incomplete", func(t *testing.T) {
		state, _, err := Parse([]byte("PUT / HTTP/1.1\r\nHost: mysite.com"), headers)
		require.NoError(t, err)
		require.Equal(t, Incomplete, state)
	})

	t.Run("unsupported version", func(t *testing.T) {
		state, _, err := Parse([]byte("PUT / HTTP/9.9\r\n\r\n"), headers)
		require.Equal(t, Malformed, state)
		require.ErrorIs(t, err, fault.Version)
	})

	t.Run("missing version", func(t *testing.T) {
		state, _, err := Parse([]byte("PUT /\r\n\r\n"), headers)
		require.Equal(t, Malformed, state)
		require.ErrorIs(t, err, fault.Version)
	})

	t.Run("headers without the head terminator", func(t *testing.T) {
		data := []byte("PUT / HTTP/1.1\nHost: mysite.com\nAccept: */*\nContent-Type: text/html\nContent-Length: 16")
		state, _, err := Parse(data, headers)
		require.NoError(t, err)
		require.Equal(t, Incomplete, state)

		data = append(data, "\n\n"...)
		state, head, err := Parse(data, headers)
		require.NoError(t, err)
		require.Equal(t, Complete, state)
		require.Equal(t, "mysite.com", head.Headers[0].Value)
		require.Len(t, head.Headers, 4)
	})
}

func TestParser(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		state, _, err := New(nil).Parse([]byte("GET / HTTP/1.1\n\n"), nil)
		require.NoError(t, err)
		require.Equal(t, Complete, state)
	})

	t.Run("strict", func(t *testing.T) {
		cfg := config.Default()
		cfg.NewLine.RequireCRLF = true
		state, _, err := New(cfg).Parse([]byte("GET / HTTP/1.1\n\n"), nil)
		require.Equal(t, Malformed, state)
		require.ErrorIs(t, err, fault.NewLine)
	})

	t.Run("concurrent use", func(t *testing.T) {
		parser := New(config.Default())
		var wg sync.WaitGroup

		for i := 0; i < 16; i++ {
			wg.Add(1)

			go func(i int) {
				defer wg.Done()

				headers := make([]http.Header, 4)
				path := fmt.Sprintf("/worker/%d", i)
				data := []byte("GET " + path + " HTTP/1.1\r\nX-Worker: " + uniuri.New() + "\r\n\r\n")

				for j := 0; j < 100; j++ {
					state, head, err := parser.Parse(data, headers)
					if err != nil || state != Complete || head.Path != path {
						t.Errorf("worker %d: %s %v %q", i, state, err, head.Path)
						return
					}
				}
			}(i)
		}

		wg.Wait()
	})
}

func TestRoundTrip(t *testing.T) {
	headers := make([]http.Header, 64)
	methods := []string{"GET", "post", "Put", "DELETE", "HEAD", "OPTIONS", "TRACE", "CONNECT", "PATCH", "M-SEARCH", "PropFind"}
	paths := []string{"/", "*", "/a/b/c?d=e&f=g#h", "http://example.com:8080/index.html", "/" + strings.Repeat("x", 1000)}

	for _, m := range methods {
		for _, path := range paths {
			for _, protocol := range []string{"HTTP/1.0", "HTTP/1.1"} {
				hdrs := requestgen.HeadersBlock(requestgen.Headers(len(m)))
				raw := m + " " + path + " " + protocol + "\r\n" + string(hdrs) + "\r\n"
				data := []byte(raw + "trailing body")

				state, head, err := Parse(data, headers)
				require.NoError(t, err, raw)
				require.Equal(t, Complete, state, raw)
				require.Equal(t, raw, string(dump.Head(head)))
				require.Equal(t, raw, string(data[:head.BodyOffset]))
				require.Equal(t, "trailing body", string(head.Body))
			}
		}
	}
}

func TestMethodClassification(t *testing.T) {
	for _, m := range method.List {
		for _, token := range []string{m.String(), strings.ToLower(m.String())} {
			state, head, err := Parse([]byte(token+" / HTTP/1.1\r\n\r\n"), nil)
			require.NoError(t, err)
			require.Equal(t, Complete, state)
			require.Equal(t, m, head.Method)
			require.Equal(t, token, head.MethodToken)
		}
	}

	state, head, err := Parse([]byte("GeTs / HTTP/1.1\r\n\r\n"), nil)
	require.NoError(t, err)
	require.Equal(t, Complete, state)
	require.Equal(t, method.Extension, head.Method)
	require.Equal(t, "GeTs", head.MethodString())
}
