package csscat

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/dchest/cssmin"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Markers are framed with NUL, which never survives into the token stream
const (
	placeholderPrefix = "\x00P"
	placeholderSuffix = "\x00"
	descendantMarker  = "\x00S\x00"
)

var (
	placeholderPattern = regexp.MustCompile(`\x00P(\d+)\x00`)

	// Rule preludes: the text before each "{"
	preludePattern    = regexp.MustCompile(`[^{};]+\{`)
	atRulePrelude     = regexp.MustCompile(`^(?:\s|\x00P\d+\x00)*@`)
	descendantPattern = regexp.MustCompile(`([^\s,>~+(])\s+([:\[])`)

	delimiterSpace  = regexp.MustCompile(`\s*([{};,>~+:\[\]])\s*`)
	openParenSpace  = regexp.MustCompile(`\(\s+`)
	closeParenSpace = regexp.MustCompile(`\s+\)`)
	importantSpace  = regexp.MustCompile(`\s*!\s*(?i:important)`)
	negativeSpace   = regexp.MustCompile(`(^|[\s:(,])-\s+([0-9.])`)

	repeatedSemicolons = regexp.MustCompile(`;{2,}`)
	leadingSemicolons  = regexp.MustCompile(`\{;+`)
	trailingSemicolon  = regexp.MustCompile(`;\}`)

	zeroUnits     = regexp.MustCompile(`(^|[:\s])0(?i:px|em|rem|ex|ch|vw|vh|vmin|vmax|cm|mm|in|pt|pc|q)\b`)
	zeroShorthand = regexp.MustCompile(`([a-zA-Z-]+):0(?: 0){0,3}([;}!]|$)`)
	leadingZero   = regexp.MustCompile(`([:\s,-])0+\.(\d)`)
	hexColor      = regexp.MustCompile(`#[0-9a-fA-F]{6}`)
	emptyRule     = regexp.MustCompile(`([^{};]*)\{\}`)

	identLike = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)
)

// Properties whose all-zero multi-value form means the same as a single 0
var zeroCollapsible = map[string]bool{
	"margin":             true,
	"padding":            true,
	"border-width":       true,
	"border-radius":      true,
	"border-spacing":     true,
	"inset":              true,
	"scroll-margin":      true,
	"scroll-padding":     true,
	"outline-width":      true,
	"column-gap":         true,
	"gap":                true,
	"grid-gap":           true,
	"border-image-width": true,
}

// Properties where a lone 0 would mean "0 center", so it is spelled out
var zeroPair = map[string]bool{
	"background-position":        true,
	"transform-origin":           true,
	"-webkit-transform-origin":   true,
	"-moz-transform-origin":      true,
	"-ms-transform-origin":       true,
	"-o-transform-origin":        true,
	"perspective-origin":         true,
	"-webkit-perspective-origin": true,
}

// Math functions keep their inner whitespace; "-" and "+" need it there
var mathFunctions = map[string]bool{
	"calc(":         true,
	"-webkit-calc(": true,
	"-moz-calc(":    true,
	"min(":          true,
	"max(":          true,
	"clamp(":        true,
}

// Quoted font names that must stay quoted to remain names
var fontKeywords = map[string]bool{
	"serif": true, "sans-serif": true, "cursive": true, "fantasy": true, "monospace": true,
	"system-ui": true, "emoji": true, "math": true, "fangsong": true,
	"ui-serif": true, "ui-sans-serif": true, "ui-monospace": true, "ui-rounded": true,
	"inherit": true, "initial": true, "unset": true, "revert": true, "revert-layer": true,
	"default": true,
}

// Minify rewrites src with the chosen engine. Both engines are local and deterministic.
func Minify(src []byte, engine Engine) []byte {
	if engine == EngineYUI {
		return cssmin.Minify(src)
	}
	return []byte(MinifyString(string(src)))
}

// MinifyString applies the built-in minifier.
// Output is stable: minifying it again returns it unchanged.
func MinifyString(src string) string {
	m := &minifier{comments: make(map[int]bool)}
	out := m.tokenize(strings.ReplaceAll(src, "\x00", "\uFFFD"))

	out = preludePattern.ReplaceAllStringFunc(out, func(match string) string {
		if atRulePrelude.MatchString(match) {
			return match
		}
		return descendantPattern.ReplaceAllString(match, "${1}"+descendantMarker+"${2}")
	})

	out = importantSpace.ReplaceAllString(out, "!important")
	out = delimiterSpace.ReplaceAllString(out, "${1}")
	out = openParenSpace.ReplaceAllString(out, "(")
	out = closeParenSpace.ReplaceAllString(out, ")")
	out = negativeSpace.ReplaceAllString(out, "${1}-${2}")

	out = repeatedSemicolons.ReplaceAllString(out, ";")
	out = leadingSemicolons.ReplaceAllString(out, "{")
	out = trailingSemicolon.ReplaceAllString(out, "}")

	out = zeroUnits.ReplaceAllString(out, "${1}0")
	out = zeroShorthand.ReplaceAllStringFunc(out, collapseZeroValue)
	out = leadingZero.ReplaceAllString(out, "${1}.${2}")
	out = collapseHexColors(out)
	out = m.removeEmptyRules(out)

	out = strings.ReplaceAll(out, descendantMarker, " ")
	out = m.restore(out)

	return strings.TrimSpace(out)
}

// minifier holds the text pulled out of the stream while the regex passes run
type minifier struct {
	preserved []string
	comments  map[int]bool
}

func (m *minifier) preserve(text string, comment bool) string {
	idx := len(m.preserved)
	m.preserved = append(m.preserved, text)
	if comment {
		m.comments[idx] = true
	}
	return placeholderPrefix + strconv.Itoa(idx) + placeholderSuffix
}

func (m *minifier) restore(s string) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		idx, err := strconv.Atoi(placeholderPattern.FindStringSubmatch(match)[1])
		if err != nil || idx >= len(m.preserved) {
			return match
		}
		return m.preserved[idx]
	})
}

// tokenState tracks just enough context to decide whether a string may lose its quotes
type tokenState struct {
	bracketDepth int
	lastIdent    string
	property     string
	customName   bool
}

// tokenize drops comments, collapses whitespace and replaces strings, urls,
// math functions and custom property values with placeholders
func (m *minifier) tokenize(src string) string {
	var out strings.Builder
	out.Grow(len(src))

	lexer := css.NewLexer(parse.NewInputString(src))
	state := tokenState{}
	consumed := 0
	pendingSpace := false

	write := func(s string) {
		if pendingSpace && out.Len() > 0 {
			out.WriteByte(' ')
		}
		pendingSpace = false
		out.WriteString(s)
	}

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if lexer.Err() != io.EOF && consumed < len(src) {
				write(src[consumed:])
			}
			break
		}
		consumed += len(data)
		text := string(data)

		switch tt {
		case css.WhitespaceToken:
			pendingSpace = true
			continue
		case css.CommentToken:
			if strings.HasPrefix(text, "/*!") {
				write(m.preserve(text, true))
			} else {
				pendingSpace = true
			}
			continue
		case css.StringToken:
			write(m.stringToken(text, state))
		case css.URLToken:
			write(m.preserve(normalizeURL(text), false))
		case css.BadStringToken, css.BadURLToken:
			write(m.preserve(text, false))
		case css.FunctionToken:
			if mathFunctions[strings.ToLower(text)] {
				fn, n := captureFunction(lexer, text)
				consumed += n
				write(m.preserve(fn, false))
			} else {
				write(text)
			}
		default:
			write(text)
		}

		switch tt {
		case css.IdentToken:
			state.lastIdent = strings.ToLower(text)
			continue
		case css.CustomPropertyNameToken:
			state.customName = state.bracketDepth == 0
			state.lastIdent = ""
			continue
		case css.ColonToken:
			if state.customName {
				value, terminator, n := captureCustomValue(lexer)
				consumed += n
				if value != "" {
					write(m.preserve(value, false))
				}
				write(terminator)
				state = tokenState{bracketDepth: state.bracketDepth}
				continue
			}
			if state.lastIdent != "" {
				state.property = state.lastIdent
			}
		case css.LeftBracketToken:
			state.bracketDepth++
		case css.RightBracketToken:
			if state.bracketDepth > 0 {
				state.bracketDepth--
			}
		case css.SemicolonToken, css.LeftBraceToken, css.RightBraceToken:
			state.property = ""
		}
		state.lastIdent = ""
		state.customName = false
	}

	return out.String()
}

// stringToken unquotes identifier-like strings in attribute selectors and font-family values
func (m *minifier) stringToken(text string, state tokenState) string {
	if len(text) >= 2 && (text[0] == '"' || text[0] == '\'') && text[len(text)-1] == text[0] {
		inner := text[1 : len(text)-1]
		if identLike.MatchString(inner) {
			if state.bracketDepth > 0 {
				return inner
			}
			if state.property == "font-family" && !fontKeywords[strings.ToLower(inner)] {
				return inner
			}
		}
	}
	return m.preserve(text, false)
}

// normalizeURL drops the quotes around a url() argument that has no whitespace or special characters
func normalizeURL(text string) string {
	if len(text) < 4 || !strings.EqualFold(text[:4], "url(") || !strings.HasSuffix(text, ")") {
		return text
	}

	inner := strings.TrimSpace(text[4 : len(text)-1])
	if len(inner) >= 2 && (inner[0] == '"' || inner[0] == '\'') && inner[len(inner)-1] == inner[0] {
		unquoted := inner[1 : len(inner)-1]
		if unquoted != "" && !strings.ContainsAny(unquoted, " \t\n\r\f'\"()\\") {
			inner = unquoted
		}
	}
	return "url(" + inner + ")"
}

// captureFunction reads a math function up to its closing parenthesis.
// It returns the normalized text and the number of source bytes consumed.
func captureFunction(lexer *css.Lexer, name string) (string, int) {
	var b strings.Builder
	b.WriteString(strings.ToLower(name))

	depth := 1
	consumed := 0
	pendingSpace := false
	last := byte('(')

	for depth > 0 {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		consumed += len(data)

		switch tt {
		case css.WhitespaceToken, css.CommentToken:
			pendingSpace = true
			continue
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			pendingSpace = false
		}

		if pendingSpace && last != '(' {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.Write(data)
		if len(data) > 0 {
			last = data[len(data)-1]
		}
	}

	return b.String(), consumed
}

// captureCustomValue reads a custom property value up to the ";" or "}" that ends it.
// The value is kept verbatim apart from whitespace, since var() substitutes it as written.
// It returns the value, the terminator and the number of source bytes consumed.
func captureCustomValue(lexer *css.Lexer) (string, string, int) {
	var b strings.Builder
	depth := 0
	consumed := 0
	pendingSpace := false

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			return b.String(), "", consumed
		}
		consumed += len(data)

		switch tt {
		case css.WhitespaceToken, css.CommentToken:
			pendingSpace = true
			continue
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken, css.LeftBraceToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		case css.RightBraceToken:
			if depth == 0 {
				return b.String(), "}", consumed
			}
			depth--
		case css.SemicolonToken:
			if depth == 0 {
				return b.String(), ";", consumed
			}
		}

		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.Write(data)
	}
}

// collapseZeroValue turns "margin:0 0 0 0" into "margin:0" and "background-position:0" into "background-position:0 0"
func collapseZeroValue(match string) string {
	sub := zeroShorthand.FindStringSubmatch(match)
	property, terminator := sub[1], sub[2]
	lower := strings.ToLower(property)

	switch {
	case zeroPair[lower]:
		return fmt.Sprintf("%s:0 0%s", property, terminator)
	case zeroCollapsible[lower]:
		return fmt.Sprintf("%s:0%s", property, terminator)
	default:
		return match
	}
}

// collapseHexColors shortens #aabbcc to #abc in declaration values.
// A hex run followed by "{" before any ";" or "}" is an id selector and is left alone.
func collapseHexColors(s string) string {
	locs := hexColor.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0

	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if !isHexValuePosition(s, start, end) {
			continue
		}

		hex := strings.ToLower(s[start+1 : end])
		if hex[0] != hex[1] || hex[2] != hex[3] || hex[4] != hex[5] {
			continue
		}

		b.WriteString(s[last:start])
		b.WriteByte('#')
		b.WriteByte(hex[0])
		b.WriteByte(hex[2])
		b.WriteByte(hex[4])
		last = end
	}

	b.WriteString(s[last:])
	return b.String()
}

func isHexValuePosition(s string, start, end int) bool {
	if start == 0 || !strings.ContainsRune(":, (", rune(s[start-1])) {
		return false
	}
	if end < len(s) && !strings.ContainsRune(";}!,) ", rune(s[end])) {
		return false
	}
	next := strings.IndexAny(s[end:], "{;}")
	return next == -1 || s[end+next] != '{'
}

// removeEmptyRules drops "selector{}" until none are left, keeping preserved comments
func (m *minifier) removeEmptyRules(s string) string {
	for {
		next := emptyRule.ReplaceAllStringFunc(s, func(match string) string {
			var kept strings.Builder
			for _, sub := range placeholderPattern.FindAllStringSubmatch(match, -1) {
				if idx, err := strconv.Atoi(sub[1]); err == nil && m.comments[idx] {
					kept.WriteString(sub[0])
				}
			}
			return kept.String()
		})
		if next == s {
			return s
		}
		s = next
	}
}
