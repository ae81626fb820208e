package sniff

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name      string
		firstLine string
		want      rune
	}{
		{"semicolons win", "a;b;c\n1;2;3\n", ';'},
		{"commas win", "a,b,c\n1,2,3\n", ','},
		{"tie goes to comma", "a;b,c\n", ','},
		{"no delimiters defaults to comma", "justoneheader\n", ','},
		{"empty file defaults to comma", "", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "input.csv", []byte(tt.firstLine))
			cfg, err := Detect(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Delimiter)
		})
	}
}

func TestDetectEncoding(t *testing.T) {
	utf8Path := writeTempFile(t, "utf8.csv", []byte("SKU,Descripción\n"))
	cfg, err := Detect(utf8Path)
	require.NoError(t, err)
	assert.Equal(t, EncodingUTF8, cfg.Encoding)

	// 0xD3 is Ó in Latin-1 and invalid as a UTF-8 start byte here.
	latinPath := writeTempFile(t, "latin.csv", []byte{'S', 'K', 'U', ',', 'D', 'E', 'S', 'C', 'R', 'I', 'P', 'C', 'I', 0xD3, 'N', '\n'})
	cfg, err = Detect(latinPath)
	require.NoError(t, err)
	assert.Equal(t, EncodingLatin1, cfg.Encoding)
}

func TestDetectMissingFile(t *testing.T) {
	_, err := Detect(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestNewReaderDecodesLatin1(t *testing.T) {
	cfg := FileConfig{Encoding: EncodingLatin1, Delimiter: ','}
	r := cfg.NewReader(strings.NewReader(string([]byte{0xD3})))
	buf := make([]byte, 4)
	n, _ := r.Read(buf)
	assert.Equal(t, "Ó", string(buf[:n]))
}

func TestDecodeBytes(t *testing.T) {
	assert.Equal(t, []byte("plain"), DecodeBytes([]byte("plain")))
	assert.Equal(t, "GARCÍA", string(DecodeBytes([]byte{'G', 'A', 'R', 'C', 0xCD, 'A'})))
}
