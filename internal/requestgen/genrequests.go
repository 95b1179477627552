package requestgen

import (
	"strconv"
	"strings"

	"github.com/indigo-web/reqhead/http"
)

func Headers(n int) []http.Header {
	hdrs := make([]http.Header, 0, n)

	for i := 0; i < n-1; i++ {
		hdrs = append(hdrs, http.Header{
			Key:   "some-random-header-name-nobody-cares-about" + strconv.Itoa(i),
			Value: strings.Repeat("b", 100),
		})
	}

	if n > 0 {
		hdrs = append(hdrs, http.Header{Key: "Host", Value: "localhost"})
	}

	return hdrs
}

func HeadersBlock(hdrs []http.Header) (buff []byte) {
	for _, pair := range hdrs {
		buff = append(buff, pair.Key+": "+pair.Value+"\r\n"...)
	}

	return buff
}

func Generate(uri string, hdrs []http.Header) (request []byte) {
	request = append(request, "GET /"+uri+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)

	return append(request, '\r', '\n')
}
