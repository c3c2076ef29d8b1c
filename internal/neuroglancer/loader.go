package neuroglancer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadState opens and parses a Neuroglancer state JSON file.
// On failure it returns an empty Object along with the error. Any valid
// JSON value is returned as is; its shape is checked by the extractors.
func LoadState(path string) (Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return Object{}, &Error{Kind: ResourceUnavailable, Msg: msgOpenFailed, Err: err}
	}
	defer f.Close()

	return ParseState(f)
}

// ParseState reads a state document from r. The whole input is read once.
func ParseState(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Object{}, &Error{Kind: ResourceUnavailable, Msg: msgOpenFailed, Err: err}
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Object{}, &Error{Kind: MalformedDocument, Msg: msgParseFailed, Err: withPosition(data, err)}
	}

	v, err := fromJSON(raw)
	if err != nil {
		return Object{}, &Error{Kind: MalformedDocument, Msg: msgParseFailed, Err: err}
	}

	return v, nil
}

// withPosition appends line and column to JSON syntax errors.
func withPosition(data []byte, err error) error {
	var syn *json.SyntaxError
	if !errors.As(err, &syn) {
		return err
	}

	offset := int(syn.Offset)
	if offset > len(data) {
		offset = len(data)
	}
	before := data[:offset]
	line := bytes.Count(before, []byte("\n")) + 1
	col := offset - (bytes.LastIndexByte(before, '\n') + 1)

	return fmt.Errorf("%w (line %d, column %d)", err, line, col)
}
