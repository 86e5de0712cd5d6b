package cv2pdf

import "strings"

// latexReplacements maps each LaTeX metacharacter to the escape sequence
// that renders it literally in the document body. The table is
// initialized once and never mutated. Backslash is absent on purpose:
// it is handled by the scanner in escapeString, after the pre-escaped
// pairs below have been recognized.
var latexReplacements = map[byte]string{
	'&': `\&`,
	'%': `\%`,
	'$': `\$`,
	'#': `\#`,
	'_': `\_`,
	'{': `\{`,
	'}': `\}`,
	'~': `\textasciitilde{}`,
	'^': `\textasciicircum{}`,
}

// backslashReplacement renders a literal backslash. Emitted last per
// character so the sequence itself is never re-escaped.
const backslashReplacement = `\textbackslash{}`

// Escape returns a copy of v with every string leaf rewritten so it
// renders literally when embedded in a LaTeX document body. The shape
// of the structure is preserved exactly: mappings and sequences are
// rebuilt with escaped elements, non-string scalars pass through
// unchanged. Mapping keys are not escaped; templates address them, the
// typesetter never sees them.
//
// Escape is not idempotent: running it twice double-escapes. Callers
// escape once, immediately before template rendering.
func Escape(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Escape(item)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(val))
		for k, item := range val {
			out[k] = Escape(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Escape(item)
		}
		return out
	case string:
		return escapeString(val)
	default:
		return v
	}
}

// escapeString rewrites s in a single pass. A backslash immediately
// followed by a metacharacter counts as author pre-escaping and is kept
// verbatim; any other backslash becomes \textbackslash{}. All
// metacharacters are ASCII, so byte scanning is UTF-8 safe.
func escapeString(s string) string {
	if !strings.ContainsAny(s, `\&%$#_{}~^`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 16)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' {
			if i+1 < len(s) {
				if _, isMeta := latexReplacements[s[i+1]]; isMeta {
					// Pre-escaped sequence: keep the pair as-is.
					b.WriteByte('\\')
					b.WriteByte(s[i+1])
					i++
					continue
				}
			}
			b.WriteString(backslashReplacement)
			continue
		}
		if seq, isMeta := latexReplacements[c]; isMeta {
			b.WriteString(seq)
			continue
		}
		b.WriteByte(c)
	}

	return b.String()
}
