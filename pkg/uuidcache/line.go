package uuidcache

import (
	"errors"
	"fmt"
	"strings"

	"github.com/librepcb/partsgen/pkg/ident"
)

// Keys may hold any text. Backslashes and line breaks are escaped so every
// entry stays on one line; commas need no escaping because the UUID after
// the last comma never contains one.
var keyEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\r", `\r`,
)

// FormatLine returns the persisted form of one entry, without the trailing
// newline.
func FormatLine(key string, id ident.UUID) string {
	return keyEscaper.Replace(key) + "," + id.String()
}

// parseLine is the inverse of FormatLine. Whitespace around the key is part
// of the key.
func parseLine(line string) (string, ident.UUID, error) {
	i := strings.LastIndexByte(line, ',')
	if i < 0 {
		return "", ident.UUID{}, fmt.Errorf("expected \"key,uuid\", got %q", line)
	}
	key, err := unescapeKey(line[:i])
	if err != nil {
		return "", ident.UUID{}, err
	}
	if key == "" {
		return "", ident.UUID{}, fmt.Errorf("expected \"key,uuid\", got %q", line)
	}
	id, err := ident.ParseUUID(strings.TrimSpace(line[i+1:]))
	if err != nil {
		return "", ident.UUID{}, err
	}
	return key, id, nil
}

func unescapeKey(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		i++
		if i == len(s) {
			return "", errors.New("key ends with an unfinished escape")
		}
		switch s[i] {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			return "", fmt.Errorf("invalid escape %q in key", s[i-1:i+1])
		}
	}
	return b.String(), nil
}
