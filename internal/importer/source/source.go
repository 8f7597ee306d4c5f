// Package source loads the ciphertext sample from a file or a pipe.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

var (
	ErrSourceNotFound   = errors.New("source not found")
	ErrSourceUnreadable = errors.New("source cannot be read")
	ErrEmptySource      = errors.New("source is empty")
)

// Encodings lists the accepted source encodings.
var Encodings = []string{"utf8", "cp437", "cp850", "iso-8859-1"}

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripUTF8BOM removes the UTF-8 BOM if present at the beginning of the data
func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

func decoderFor(sourceEncoding string) (*encoding.Decoder, error) {
	switch sourceEncoding {
	case "cp437":
		return charmap.CodePage437.NewDecoder(), nil
	case "cp850":
		return charmap.CodePage850.NewDecoder(), nil
	case "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", sourceEncoding)
	}
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// The UTF-8 BOM is stripped if present.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	if sourceEncoding == "" || sourceEncoding == "utf8" {
		return stripUTF8BOM(data), nil
	}

	decoder, err := decoderFor(sourceEncoding)
	if err != nil {
		return nil, err
	}

	reader := transform.NewReader(bytes.NewReader(data), decoder)
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	return stripUTF8BOM(utf8Data), nil
}

// Normalize joins the lines of data with a single newline and trims
// surrounding whitespace.
func Normalize(data []byte) string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ReadText reads the whole of r and returns its normalized UTF-8 content.
// Empty content returns ErrEmptySource.
func ReadText(r io.Reader, sourceEncoding string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}

	utf8Data, err := ConvertToUTF8(data, sourceEncoding)
	if err != nil {
		return "", err
	}

	text := Normalize(utf8Data)
	if text == "" {
		return "", ErrEmptySource
	}

	return text, nil
}

// LoadText reads the file at path, or stdin when path is "-". A missing file
// returns an error wrapping ErrSourceNotFound; a file that exists but cannot
// be opened or read returns one wrapping ErrSourceUnreadable.
func LoadText(path, sourceEncoding string) (string, error) {
	if path == Stdin {
		return ReadText(os.Stdin, sourceEncoding)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return "", fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	defer f.Close()

	return ReadText(f, sourceEncoding)
}

// IsMissingOrEmpty reports whether err means there is nothing to analyze:
// the source is missing, unreadable or empty.
func IsMissingOrEmpty(err error) bool {
	return errors.Is(err, ErrSourceNotFound) ||
		errors.Is(err, ErrSourceUnreadable) ||
		errors.Is(err, ErrEmptySource)
}

// StdinIsPipe reports whether standard input is a pipe or a redirected file.
func StdinIsPipe() (bool, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false, fmt.Errorf("error checking stdin: %w", err)
	}
	return (stat.Mode() & os.ModeCharDevice) == 0, nil
}
