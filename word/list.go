package word

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// List is a sorted list of unique words.
type List []string

// Value is the number each word is mapped to when the list is encoded.
const Value = 1

// ErrInvalidWord is returned when a word in a list is not only lowercase a-z letters.
var ErrInvalidWord = errors.New("invalid word")

// MarshalJSON encodes the list as an object that maps each word to 1, in list order.
// The keys are separated by ", " and values by ": ", as in {"cat": 1, "cats": 1}.
// Calling json.Marshal on the list compacts this spacing, so callers needing the exact text should call this directly.
func (l List) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	v := strconv.Itoa(Value)
	for i, w := range l {
		if !isLowerWord(w) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, w)
		}
		k, err := json.Marshal(w)
		if err != nil {
			return nil, fmt.Errorf("encoding word %q: %w", w, err)
		}
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.Write(k)
		buf.WriteString(": ")
		buf.WriteString(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Map creates a map of each word to 1.
func (l List) Map() map[string]int {
	m := make(map[string]int, len(l))
	for _, w := range l {
		m[w] = Value
	}
	return m
}

// isLowerWord determines if the word is not empty and only contains a-z.
func isLowerWord(w string) bool {
	if len(w) == 0 {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || 'z' < w[i] {
			return false
		}
	}
	return true
}
