package csscat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinifyString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "hex and zero shorthand",
			input: ".a { color: #ffffff; margin: 0px 0px 0px 0px; }",
			want:  ".a{color:#fff;margin:0}",
		},
		{
			name:  "multi-line rule",
			input: ".a {\n  color: #ffffff;\n  margin: 0px;\n}\n",
			want:  ".a{color:#fff;margin:0}",
		},
		{
			name:  "comments dropped",
			input: "/* header */\n.a { color: red; /* inline */ }\n",
			want:  ".a{color:red}",
		},
		{
			name:  "preservation comment kept",
			input: "/*! license */\n.a { color: red; }",
			want:  "/*! license */ .a{color:red}",
		},
		{
			name:  "comment markers inside strings",
			input: `.a:after { content: "/* not a comment */"; }`,
			want:  `.a:after{content:"/* not a comment */"}`,
		},
		{
			name:  "string whitespace untouched",
			input: `.a:before { content: "  x  ;  " }`,
			want:  `.a:before{content:"  x  ;  "}`,
		},
		{
			name:  "combinators",
			input: "ul > li + li ~ p , a { color : red ; }",
			want:  "ul>li+li~p,a{color:red}",
		},
		{
			name:  "descendant pseudo-class keeps its space",
			input: ".nav :hover { color: red }",
			want:  ".nav :hover{color:red}",
		},
		{
			name:  "descendant attribute keeps its space",
			input: "form [disabled] { opacity: 0.5 }",
			want:  "form [disabled]{opacity:.5}",
		},
		{
			name:  "media query keeps space before parenthesis",
			input: "@media screen and ( max-width: 600px ) { .a { color: red; } }",
			want:  "@media screen and (max-width:600px){.a{color:red}}",
		},
		{
			name:  "media feature colon spacing",
			input: "@media screen and ( max-width : 600px ) { .a { color: red; } }",
			want:  "@media screen and (max-width:600px){.a{color:red}}",
		},
		{
			name:  "nested descendant pseudo-class keeps its space",
			input: "@media print { .nav :hover { color: red } }",
			want:  "@media print{.nav :hover{color:red}}",
		},
		{
			name:  "custom property value kept as written",
			input: ".a{--x:0px}.b{width:calc(var(--x) + 1px)}",
			want:  ".a{--x:0px}.b{width:calc(var(--x) + 1px)}",
		},
		{
			name:  "custom property whitespace collapsed",
			input: ".a { --gap :  0px  0px ; margin: 0px }",
			want:  ".a{--gap:0px 0px;margin:0}",
		},
		{
			name:  "custom property reference outside declaration name",
			input: ".a { color: var( --brand ); margin: 0px 0px; }",
			want:  ".a{color:var(--brand);margin:0}",
		},
		{
			name:  "identifier shaped like an internal marker",
			input: `.___CSSCAT_PRESERVED_0___{content:"q"}`,
			want:  `.___CSSCAT_PRESERVED_0___{content:"q"}`,
		},
		{
			name:  "NUL bytes become replacement characters",
			input: ".a{content:\"q\"}\x00P0\x00",
			want:  ".a{content:\"q\"}\uFFFDP0\uFFFD",
		},
		{
			name:  "calc keeps operator spacing",
			input: ".a { width: calc( 100% - 10px ); }",
			want:  ".a{width:calc(100% - 10px)}",
		},
		{
			name:  "negative number",
			input: ".a { margin: - 5px; }",
			want:  ".a{margin:-5px}",
		},
		{
			name:  "leading zero",
			input: ".a { opacity: 0.6; margin: -0.5em 0.25em; }",
			want:  ".a{opacity:.6;margin:-.5em .25em}",
		},
		{
			name:  "zero units only for lengths",
			input: ".a { margin: 0em; transition: opacity 0s; width: 10px; }",
			want:  ".a{margin:0;transition:opacity 0s;width:10px}",
		},
		{
			name:  "background-position zero pair",
			input: ".a { background-position: 0 0 0 0; }",
			want:  ".a{background-position:0 0}",
		},
		{
			name:  "background-position single zero",
			input: ".a { background-position: 0px; }",
			want:  ".a{background-position:0 0}",
		},
		{
			name:  "unknown property zero pair untouched",
			input: ".a { box-shadow: 0 0; }",
			want:  ".a{box-shadow:0 0}",
		},
		{
			name:  "important",
			input: ".a { color: red ! important; }",
			want:  ".a{color:red!important}",
		},
		{
			name:  "hex in id selector untouched",
			input: "#aabbcc { color: #AABBCC; }",
			want:  "#aabbcc{color:#abc}",
		},
		{
			name:  "non-repeating hex untouched",
			input: ".a { color: #abcdef; }",
			want:  ".a{color:#abcdef}",
		},
		{
			name:  "url quotes removed",
			input: `.a { background: url( "img/bg.png" ); }`,
			want:  `.a{background:url(img/bg.png)}`,
		},
		{
			name:  "url with space keeps quotes",
			input: `.a { background: url("img/my bg.png"); }`,
			want:  `.a{background:url("img/my bg.png")}`,
		},
		{
			name:  "attribute value unquoted",
			input: `a[href="home"] { color: red; }`,
			want:  `a[href=home]{color:red}`,
		},
		{
			name:  "attribute value with space stays quoted",
			input: `a[title="two words"] { color: red; }`,
			want:  `a[title="two words"]{color:red}`,
		},
		{
			name:  "font family unquoted",
			input: `.a { font-family: "Helvetica", 'Arial', serif; }`,
			want:  `.a{font-family:Helvetica,Arial,serif}`,
		},
		{
			name:  "generic family name stays quoted",
			input: `.a { font-family: "serif"; }`,
			want:  `.a{font-family:"serif"}`,
		},
		{
			name:  "content string stays quoted",
			input: `.a:after { content: "x"; }`,
			want:  `.a:after{content:"x"}`,
		},
		{
			name:  "empty rules removed",
			input: ".a { } .b { color: red; } .c {}",
			want:  ".b{color:red}",
		},
		{
			name:  "nested empty rules removed",
			input: "@media print { .a { } } .b { color: red; }",
			want:  ".b{color:red}",
		},
		{
			name:  "stray semicolons",
			input: ".a { ; color: red;; ; }",
			want:  ".a{color:red}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MinifyString(tt.input))
		})
	}
}

func TestMinifyString_Idempotent(t *testing.T) {
	inputs := []string{
		".a { color: #ffffff; margin: 0px 0px 0px 0px; }",
		"/*! keep */ .nav :hover { color: red } form [disabled] { opacity: 0.5 }",
		".a { width: calc( 100% - 10px ); background: url( 'a.png' ) no-repeat; }",
		".a { background-position: 0; transform-origin: 0 0; }",
		`.a { font-family: "Open Sans", "Helvetica", sans-serif; } a[href="x"] { color: #aabbcc }`,
		"@media (min-width: 0.5em) { .a { } .b { margin: -0.5em } }",
		".a{color:red}\n\n\n.b{color:blue}",
		`:root { --space: 0px 0px; --font: "Open Sans", serif } .a { padding: var(--space) }`,
		"@media print { .nav :hover { color: red } } @media ( min-width : 10px ) { .b { margin: 0px } }",
	}

	for _, input := range inputs {
		once := MinifyString(input)
		assert.Equal(t, once, MinifyString(once), "input: %q", input)
	}
}

func TestMinifyString_Deterministic(t *testing.T) {
	input := ".a { color: #ffffff; } /* x */ .b { margin: 0px 0px; }"
	first := MinifyString(input)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, MinifyString(input))
	}
}

func TestMinifyString_ShorterOrEqual(t *testing.T) {
	input := strings.Repeat(".block {\n  padding: 0px 0px;\n  color: #112233;\n}\n", 20)
	out := MinifyString(input)
	assert.Less(t, len(out), len(input))
	assert.Equal(t, strings.Repeat(".block{padding:0;color:#123}", 20), out)
}

func TestMinify_Engines(t *testing.T) {
	src := []byte("/* note */\n.a {\n  color: red;\n}\n")

	builtin := string(Minify(src, EngineBuiltin))
	assert.Equal(t, ".a{color:red}", builtin)

	yui := string(Minify(src, EngineYUI))
	assert.NotContains(t, yui, "note")
	assert.Contains(t, yui, ".a{color:red")
}

func TestMinify_Empty(t *testing.T) {
	assert.Empty(t, MinifyString(""))
	assert.Empty(t, MinifyString("  \n\t "))
	assert.Empty(t, MinifyString("/* only a comment */"))
}
