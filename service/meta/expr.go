package meta

import (
	"os"
	"strings"
	"unicode"
)

// expandEnvExpr replaces every ${env.KEY} occurrence in value with the
// environment variable KEY, or "" when unset. Malformed expressions (missing
// closing brace, invalid key characters) are kept literal.
func expandEnvExpr(value string) string {
	const prefix = "${env."
	var b strings.Builder
	i := 0
	for {
		idx := strings.Index(value[i:], prefix)
		if idx < 0 {
			b.WriteString(value[i:])
			break
		}
		b.WriteString(value[i : i+idx])
		keyStart := i + idx + len(prefix)

		keyEnd := strings.IndexByte(value[keyStart:], '}')
		if keyEnd < 0 {
			// no closing brace, the rest is literal
			b.WriteString(value[i+idx:])
			break
		}
		key := value[keyStart : keyStart+keyEnd]
		if !validEnvKey(key) {
			// keep the prefix literal and rescan from right after it so a
			// nested expression further in still expands
			b.WriteString(value[i+idx : keyStart])
			i = keyStart
			continue
		}
		b.WriteString(os.Getenv(key))
		i = keyStart + keyEnd + 1
	}
	return b.String()
}

func validEnvKey(key string) bool {
	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
