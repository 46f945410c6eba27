// Package hexinput parses the typed fields the command loop prompts for.
package hexinput

import (
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrInvalidOffset indicates an offset that is not 1-8 hex digits.
	ErrInvalidOffset = errors.New("hexinput: offset must be up to 8 hex digits")

	// ErrInvalidRows indicates a row count that is not a non-negative integer.
	ErrInvalidRows = errors.New("hexinput: rows must be a non-negative integer")
)

// Op is one of the command loop operations.
type Op byte

const (
	OpNone  Op = 0
	OpRead  Op = 'r'
	OpWrite Op = 'w'
	OpSave  Op = 's'
	OpLoad  Op = 'l'
	OpExit  Op = 'e'
)

// ParseOp maps a line to an operation by its first non-blank letter,
// case-insensitively. Anything else yields OpNone.
func ParseOp(line string) Op {
	line = strings.TrimSpace(line)
	if line == "" {
		return OpNone
	}
	switch op := Op(strings.ToLower(line[:1])[0]); op {
	case OpRead, OpWrite, OpSave, OpLoad, OpExit:
		return op
	}
	return OpNone
}

// ParseOffset parses a hex offset. An empty line means 0 and a 0x prefix is accepted.
func ParseOffset(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" || len(s) > 8 {
		return 0, ErrInvalidOffset
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, ErrInvalidOffset
	}
	return uint32(v), nil
}

// ParseRows parses a decimal row count. An empty line means 0 (until end of file).
func ParseRows(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, ErrInvalidRows
	}
	return n, nil
}

// ParseBytes decodes consecutive hex pairs, allowing blanks between pairs.
// Parsing stops at the first token that is not a complete pair, so "AA BB zz"
// and "AABBC" both yield {0xAA, 0xBB}. The result is never capped here.
func ParseBytes(s string) []byte {
	var out []byte
	var pair [1]byte
	i := 0
	for {
		for i < len(s) && isBlank(s[i]) {
			i++
		}
		if i+1 >= len(s) {
			return out
		}
		if _, err := hex.Decode(pair[:], []byte(s[i:i+2])); err != nil {
			return out
		}
		out = append(out, pair[0])
		i += 2
	}
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
