package textenc

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"", false},
		{"utf-8", false},
		{"UTF-16LE", false},
		{"utf16be", false},
		{"Windows-1252", false},
		{"cp1252", false},
		{"EBCDIC", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := Lookup(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, enc)
		})
	}
}

func TestDecode_Windows1252(t *testing.T) {
	// "café" with é as 0xE9 in Windows-1252
	out, err := Decode([]byte{'c', 'a', 'f', 0xE9}, Windows1252)
	require.NoError(t, err)
	assert.Equal(t, "café", string(out))
}

func TestDecode_UTF16LEWithBOM(t *testing.T) {
	// BOM + "{}" in UTF-16LE; declared encoding is ignored.
	data := []byte{0xFF, 0xFE, '{', 0x00, '}', 0x00}
	out, err := Decode(data, Windows1252)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestDecode_UTF16BE(t *testing.T) {
	data := []byte{0x00, 'o', 0x00, 'k'}
	out, err := Decode(data, UTF16BE)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(out))
}

func TestDecode_StripsUTF8BOM(t *testing.T) {
	out, err := Decode(append([]byte{0xEF, 0xBB, 0xBF}, "abc"...), "")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))
}

func TestDecode_UnknownEncoding(t *testing.T) {
	_, err := Decode([]byte("abc"), "KOI8-Z")
	require.Error(t, err)
}

func TestDetect(t *testing.T) {
	assert.Equal(t, UTF8, Detect([]byte{0xEF, 0xBB, 0xBF, 'x'}))
	assert.Equal(t, UTF16LE, Detect([]byte{0xFF, 0xFE}))
	assert.Equal(t, UTF16BE, Detect([]byte{0xFE, 0xFF}))
	assert.Empty(t, Detect([]byte("plain")))
}

func TestNewReader(t *testing.T) {
	r, err := NewReader(strings.NewReader("\xe9t\xe9"), Windows1252)
	require.NoError(t, err)
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "été", string(out))
}
