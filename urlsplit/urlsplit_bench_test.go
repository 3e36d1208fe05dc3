package urlsplit

import (
	"strings"
	"testing"
)

func BenchmarkSplit(b *testing.B) {
	bench := func(b *testing.B, url string) {
		b.SetBytes(int64(len(url)))
		b.ReportAllocs()
		b.ResetTimer()

		for range b.N {
			_, _ = Split(url)
		}
	}

	b.Run("short", func(b *testing.B) {
		bench(b, "http://example.com")
	})

	b.Run("uppercase scheme", func(b *testing.B) {
		bench(b, "HTTPS://example.com:8443/a/b#frag")
	})

	b.Run("long path", func(b *testing.B) {
		bench(b, "https://example.com/"+strings.Repeat("segment/", 500)+"#frag")
	})
}
