package programs

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Parse reads a tape from its command line form:
//
//	hex:3c2b00      hex encoded bytes
//	file:path       raw file content
//	program:name    a catalogue program
//	<+++++\x00      anything else is text with Go string escapes
func Parse(spec string) ([]byte, error) {
	switch {

	case strings.HasPrefix(spec, "hex:"):
		tape, err := hex.DecodeString(strings.TrimPrefix(spec, "hex:"))
		if err != nil {
			return nil, fmt.Errorf("parse tape %q: %w", spec, err)
		}
		return tape, nil

	case strings.HasPrefix(spec, "file:"):
		tape, err := os.ReadFile(strings.TrimPrefix(spec, "file:"))
		if err != nil {
			return nil, fmt.Errorf("parse tape %q: %w", spec, err)
		}
		return tape, nil

	case strings.HasPrefix(spec, "program:"):
		name := strings.TrimPrefix(spec, "program:")
		p, ok := Get(name)
		if !ok {
			return nil, fmt.Errorf("parse tape %q: no such program", spec)
		}
		return p.Tape, nil

	}

	if strings.Contains(spec, `\`) {
		str, err := strconv.Unquote(`"` + quoteBare(spec) + `"`)
		if err != nil {
			return nil, fmt.Errorf("parse tape %q: %w", spec, err)
		}
		return []byte(str), nil
	}
	return []byte(spec), nil
}

// quoteBare escapes the double quotes that are not already escaped.
func quoteBare(spec string) string {
	var b strings.Builder
	escaped := false
	for i := 0; i < len(spec); i++ {
		c := spec[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
