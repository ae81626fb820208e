// Package sniff detects the text encoding and field delimiter of an input
// CSV file by inspecting its first line. ERP exports arrive with no guaranteed
// delimiter or encoding, so both are inferred heuristically before parsing.
package sniff

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding identifies the detected text encoding of an input file.
type Encoding int

const (
	// EncodingUTF8 is used when the first line is valid UTF-8.
	EncodingUTF8 Encoding = iota
	// EncodingLatin1 is the single-byte fallback; decoding it never fails.
	EncodingLatin1
)

func (e Encoding) String() string {
	if e == EncodingLatin1 {
		return "latin-1"
	}
	return "utf-8"
}

// FileConfig holds the detected configuration for one input file. Detection
// runs once per file; files that switch delimiters mid-stream produce
// undefined row shapes, which is a documented limitation.
type FileConfig struct {
	Encoding  Encoding
	Delimiter rune
}

// Detect inspects the first line of the file at path and returns its
// encoding and delimiter. Semicolon wins only when strictly more frequent
// than comma; a line with neither delimiter defaults to comma.
func Detect(path string) (FileConfig, error) {
	file, err := os.Open(path) // #nosec G304 -- converter operates on user-provided paths
	if err != nil {
		return FileConfig{}, err
	}
	defer func() {
		_ = file.Close()
	}()

	reader := bufio.NewReader(file)
	firstLine, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return FileConfig{}, err
	}

	cfg := FileConfig{Encoding: EncodingUTF8, Delimiter: ','}
	if !utf8.ValidString(firstLine) {
		cfg.Encoding = EncodingLatin1
	}
	if strings.Count(firstLine, ";") > strings.Count(firstLine, ",") {
		cfg.Delimiter = ';'
	}
	return cfg, nil
}

// NewReader wraps r with a decoder for the detected encoding. UTF-8 input
// passes through untouched.
func (c FileConfig) NewReader(r io.Reader) io.Reader {
	if c.Encoding == EncodingLatin1 {
		return charmap.ISO8859_1.NewDecoder().Reader(r)
	}
	return r
}

// DecodeBytes decodes a whole byte slice using a Latin-1 fallback when the
// data is not valid UTF-8. Used for small side files such as the salesperson
// directory.
func DecodeBytes(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// ISO 8859-1 decoding cannot fail; keep the raw bytes if it somehow does.
		return data
	}
	return decoded
}
