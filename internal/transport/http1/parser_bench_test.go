package http1

import (
	"strings"
	"testing"

	"github.com/indigo-web/reqhead/internal/requestgen"
)

func BenchmarkParser(b *testing.B) {
	parser, storage := getParser()

	b.Run("no headers", func(b *testing.B) {
		data := requestgen.Generate("", nil)
		b.SetBytes(int64(len(data)))
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _, _ = parser.Parse(data, storage)
		}
	})

	b.Run("5 headers", func(b *testing.B) {
		data := requestgen.Generate(strings.Repeat("a", 500), requestgen.Headers(5))
		b.SetBytes(int64(len(data)))
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _, _ = parser.Parse(data, storage)
		}
	})

	b.Run("10 headers", func(b *testing.B) {
		data := requestgen.Generate(strings.Repeat("a", 500), requestgen.Headers(10))
		b.SetBytes(int64(len(data)))
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _, _ = parser.Parse(data, storage)
		}
	})

	b.Run("50 headers", func(b *testing.B) {
		data := requestgen.Generate(strings.Repeat("a", 500), requestgen.Headers(50))
		b.SetBytes(int64(len(data)))
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _, _ = parser.Parse(data, storage)
		}
	})

	b.Run("byte by byte growth", func(b *testing.B) {
		data := requestgen.Generate("", requestgen.Headers(10))
		b.SetBytes(int64(len(data)))
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for n := 1; n <= len(data); n++ {
				_, _, _ = parser.Parse(data[:n], storage)
			}
		}
	})
}
