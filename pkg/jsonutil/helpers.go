// Package jsonutil provides JSON helpers for hour snapshots.
//
// encoding/json decodes objects into Go maps, which lose key order. The
// hour tracker uses source order as its final sort tiebreak, so snapshots
// are decoded token by token instead.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/Mr-Dark-debug/hourtracker/internal/hours"
)

// ErrNotObject is returned when a snapshot is not a JSON object.
var ErrNotObject = errors.New("expected a JSON object of teacher name to hours")

// DecodeOrderedHours reads a JSON object such as {"Anisha": 10, "Rohan": 16}
// and returns its entries in document order. A repeated key keeps its first
// position and takes the last value.
func DecodeOrderedHours(r io.Reader) (hours.TeacherHours, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	th := hours.TeacherHours{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading teacher name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key token %v", tok)
		}

		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading hours for %q: %w", name, err)
		}
		num, ok := tok.(json.Number)
		if !ok {
			return nil, fmt.Errorf("hours for %q must be a number, got %v", name, tok)
		}
		h, err := num.Float64()
		if err != nil || math.IsInf(h, 0) || math.IsNaN(h) {
			return nil, fmt.Errorf("hours for %q: invalid number %s", name, num)
		}
		th = th.Set(name, h)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("closing snapshot object: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after snapshot object")
	}
	return th, nil
}

// EncodeOrderedHours writes th as a JSON object in slice order.
func EncodeOrderedHours(w io.Writer, th hours.TeacherHours) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range th {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return fmt.Errorf("encoding name %q: %w", e.Name, err)
		}
		val, err := json.Marshal(e.Hours)
		if err != nil {
			return fmt.Errorf("encoding hours for %q: %w", e.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	_, err := w.Write(buf.Bytes())
	return err
}

// IsObject reports whether the first non-space byte of data opens an object.
func IsObject(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}
