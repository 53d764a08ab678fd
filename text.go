package icalprop

import (
	"strings"
	"unicode/utf8"
)

// Newline is the line terminator produced when unescaping "\n" and "\N"
// sequences. It is a fixed constant so that output doesn't depend on the
// platform the package runs on.
const Newline = "\n"

var escaper = strings.NewReplacer("\\", "\\\\", ",", "\\,", ";", "\\;")

// Escape escapes the special characters within an iCalendar property value:
// backslashes, commas and semicolons (RFC 5545 section 3.3.11). Newlines
// are left untouched, escaping them is the line writer's job.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape unescapes all characters that are escaped with a backslash.
// Escaped newlines ("\n" or "\N") decode to Newline; any other escaped
// character decodes to itself. A lone trailing backslash is dropped.
func Unescape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	escaped := false
	for _, ch := range s {
		switch {
		case escaped:
			if ch == 'n' || ch == 'N' {
				sb.WriteString(Newline)
			} else {
				sb.WriteRune(ch)
			}
			escaped = false
		case ch == '\\':
			escaped = true
		default:
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

// SplitBy splits a string by a separator character, taking escaping into
// account: a separator immediately preceded by a backslash is not a split
// point. The input and each token are trimmed of surrounding whitespace.
// Empty tokens are kept unless removeEmpty is set, which drops every empty
// token. If unescapeEach is set, Unescape is applied to each retained token
// after the split decisions have been made.
//
// For example, SplitBy(`HE\:LLO::WORLD`, ':', false, true) returns
// ["HE:LLO", "", "WORLD"].
func SplitBy(s string, sep rune, removeEmpty, unescapeEach bool) []string {
	s = strings.TrimSpace(s)

	var tokens []string
	start := 0
	for i, ch := range s {
		if ch != sep {
			continue
		}
		if i > 0 && s[i-1] == '\\' {
			continue
		}
		tokens = append(tokens, s[start:i])
		start = i + utf8.RuneLen(sep)
	}
	tokens = append(tokens, s[start:])

	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" && removeEmpty {
			continue
		}
		if unescapeEach {
			tok = Unescape(tok)
		}
		out = append(out, tok)
	}
	return out
}

// ParseList parses a comma-separated list of values, e.g. "one,two,th\,ree".
// Values are unescaped and empty values are dropped.
func ParseList(s string) []string {
	return SplitBy(s, ',', true, true)
}

// ParseComponent parses a compound property value: semicolon-separated
// fields, each of which is itself a comma-separated list. For example,
// "one;two,three;four" parses to [["one"], ["two", "three"], ["four"]].
// Empty fields are kept, so field positions are stable.
func ParseComponent(s string) [][]string {
	fields := SplitBy(s, ';', false, false)
	out := make([][]string, len(fields))
	for i, f := range fields {
		out[i] = ParseList(f)
	}
	return out
}

// writeList is the write-side dual of ParseList.
func writeList(values []string) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = Escape(v)
	}
	return strings.Join(escaped, ",")
}

// writeComponent is the write-side dual of ParseComponent.
func writeComponent(fields [][]string) string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = writeList(f)
	}
	return strings.Join(out, ";")
}
