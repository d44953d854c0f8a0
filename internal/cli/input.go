package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StdinPath names standard input on the command line.
const StdinPath = "-"

var (
	// ErrNotText is returned for inputs that are neither UTF-8 nor UTF-16 with a byte order mark.
	ErrNotText = errors.New("input is not valid UTF-8 text")
	// ErrStdinTwice is returned when both operands name standard input.
	ErrStdinTwice = errors.New("standard input can be read only once")
)

// readInputs loads both operands, decoding them to UTF-8 and optionally
// NFC-normalizing them.
func readInputs(stdin io.Reader, path1, path2 string, normalize bool) (string, string, error) {
	if path1 == StdinPath && path2 == StdinPath {
		return "", "", ErrStdinTwice
	}

	text1, err := readInput(stdin, path1)
	if err != nil {
		return "", "", err
	}
	text2, err := readInput(stdin, path2)
	if err != nil {
		return "", "", err
	}

	if normalize {
		text1 = norm.NFC.String(text1)
		text2 = norm.NFC.String(text2)
	}
	return text1, text2, nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	var data []byte
	var err error
	if path == StdinPath {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	text, err := decodeText(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	return text, nil
}

var (
	utf16BEBOM = []byte{0xFE, 0xFF}
	utf16LEBOM = []byte{0xFF, 0xFE}
)

// decodeText strips a UTF-8 byte order mark and transcodes UTF-16 input that
// starts with one. Any other input must already be valid UTF-8.
func decodeText(data []byte) (string, error) {
	utf16 := bytes.HasPrefix(data, utf16BEBOM) || bytes.HasPrefix(data, utf16LEBOM)
	if !utf16 && !utf8.Valid(data) {
		return "", ErrNotText
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
