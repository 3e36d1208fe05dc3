package strutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLowerASCII(t *testing.T) {
	t.Run("already lowercase", func(t *testing.T) {
		require.Equal(t, "https", LowerASCII("https"))
	})

	t.Run("mixed", func(t *testing.T) {
		require.Equal(t, "http", LowerASCII("HtTp"))
		require.Equal(t, "ftp+ssh", LowerASCII("FTP+SSH"))
	})

	t.Run("non-ascii is untouched", func(t *testing.T) {
		require.Equal(t, "ÄbÖ", LowerASCII("ÄBÖ"))
	})

	t.Run("empty", func(t *testing.T) {
		require.Empty(t, LowerASCII(""))
	})

	t.Run("source is not mutated", func(t *testing.T) {
		src := "HTTP"
		_ = LowerASCII(src)
		require.Equal(t, "HTTP", src)
	})
}

func TestCut(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		prefix, postfix, found := Cut("host:8080", ':')
		require.True(t, found)
		require.Equal(t, "host", prefix)
		require.Equal(t, "8080", postfix)
	})

	t.Run("not found", func(t *testing.T) {
		prefix, postfix, found := Cut("host", ':')
		require.False(t, found)
		require.Equal(t, "host", prefix)
		require.Empty(t, postfix)
	})

	t.Run("keep separator", func(t *testing.T) {
		prefix, postfix, found := CutFrom("host/a/b", '/')
		require.True(t, found)
		require.Equal(t, "host", prefix)
		require.Equal(t, "/a/b", postfix)
	})
}

func TestParsePort(t *testing.T) {
	for _, tc := range []struct {
		Raw  string
		Port uint16
	}{
		{"8080", 8080},
		{"0", 0},
		{"65535", 65535},
		{"65536", 0},
		{"99999999999", 0},
		{"", 0},
		{"abc", 0},
		{"-1", 0},
		{"80abc", 80},
		{"443#frag", 443},
		{" 8080", 8080},
		{"\t\n8080", 8080},
		{"+8080", 8080},
		{" +443", 443},
		{"++80", 0},
		{"+ 80", 0},
		{"-80", 0},
		{"   ", 0},
	} {
		require.Equal(t, tc.Port, ParsePort(tc.Raw), tc.Raw)
	}
}
