package glob

import (
	"fmt"
	"regexp"
	"strings"
)

// InvalidPatternError is returned when a pattern segment contains unbalanced
// braces: a "}" with no open "{", or a "{" still open at the end of the
// segment.
type InvalidPatternError struct {
	Segment string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern segment %q: unbalanced braces", e.Segment)
}

// matcher matches one pattern segment against file names.
type matcher struct {
	re *regexp.Regexp
	// matchHidden is true when the segment starts with a literal ".". Only
	// such segments can match names starting with ".".
	matchHidden bool
}

func (m *matcher) match(name string) bool {
	if !m.matchHidden && strings.HasPrefix(name, ".") {
		return false
	}
	return m.re.MatchString(name)
}

// compileSegment translates one pattern segment into a matcher by emitting a
// regular expression, anchored at both ends:
//
//	\X      the two characters verbatim
//	*       any run of non-separator characters, possibly empty
//	?       exactly one non-separator character
//	{ }     alternation group; "," separates branches inside one
//	. ( ) | + ^ $ @ %
//	        the character itself, neutralized
//
// Everything else is copied as a literal. Brace nesting is tracked with a
// depth counter; an unbalanced segment yields *InvalidPatternError.
func compileSegment(seg string) (*matcher, error) {
	var b strings.Builder
	b.WriteByte('^')
	depth := 0
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		switch {
		case c == '\\':
			b.WriteByte('\\')
			if i+1 < len(seg) {
				i++
				b.WriteByte(seg[i])
			}
		case c == '*':
			b.WriteString(`[^/\\]*`)
		case c == '?':
			b.WriteString(`[^/\\]`)
		case c == '{':
			depth++
			b.WriteString("(?:")
		case c == '}':
			depth--
			if depth < 0 {
				return nil, &InvalidPatternError{Segment: seg}
			}
			b.WriteByte(')')
		case c == ',' && depth > 0:
			b.WriteByte('|')
		case strings.IndexByte(`.()|+^$@%`, c) >= 0:
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	if depth != 0 {
		return nil, &InvalidPatternError{Segment: seg}
	}
	b.WriteByte('$')
	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("compile segment %q: %w", seg, err)
	}
	return &matcher{re: re, matchHidden: strings.HasPrefix(seg, ".")}, nil
}
