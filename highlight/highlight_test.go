package highlight

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
)

func joinTokens(toks []Token) string {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.Text)
	}
	return sb.String()
}

func hasTag(toks []Token, text string, tag Tag) bool {
	for _, t := range toks {
		if strings.Contains(t.Text, text) && t.Tag == tag {
			return true
		}
	}
	return false
}

func TestPlain_WholeLine(t *testing.T) {
	got := Plain{}.TokenizeLine("a + b")
	if len(got) != 1 || got[0].Text != "a + b" || got[0].Tag != TagText {
		t.Fatalf("plain tokens: got %+v", got)
	}
	if got := (Plain{}).TokenizeLine(""); got != nil {
		t.Fatalf("empty line: got %+v, want nil", got)
	}
}

func TestChroma_PreservesText(t *testing.T) {
	tok := ForFile("main.go")
	for _, line := range []string{
		"func main() {",
		"\tx := 42 // answer",
		`	s := "héllo, 世界"`,
		"/* unterminated",
		"",
		"   ",
	} {
		got := joinTokens(tok.TokenizeLine(line))
		if got != line {
			t.Fatalf("tokens for %q concatenate to %q", line, got)
		}
	}
}

func TestChroma_GoTags(t *testing.T) {
	tok := ForFile("main.go")
	if tok.Language() != "Go" {
		t.Fatalf("language: got %q, want %q", tok.Language(), "Go")
	}
	toks := tok.TokenizeLine(`return "x", 42 // done`)
	if !hasTag(toks, "return", TagKeyword) {
		t.Fatalf("return not tagged keyword: %+v", toks)
	}
	if !hasTag(toks, `"x"`, TagString) {
		t.Fatalf("string literal not tagged: %+v", toks)
	}
	if !hasTag(toks, "42", TagNumber) {
		t.Fatalf("number not tagged: %+v", toks)
	}
	if !hasTag(toks, "// done", TagComment) {
		t.Fatalf("comment not tagged: %+v", toks)
	}
}

func TestTagFor_LiteralSubcategories(t *testing.T) {
	cases := []struct {
		tt   chroma.TokenType
		want Tag
	}{
		{chroma.LiteralString, TagString},
		{chroma.LiteralStringDouble, TagString},
		{chroma.LiteralStringChar, TagString},
		{chroma.LiteralNumber, TagNumber},
		{chroma.LiteralNumberInteger, TagNumber},
		{chroma.LiteralNumberFloat, TagNumber},
		{chroma.LiteralNumberHex, TagNumber},
		{chroma.Literal, TagText},
	}
	for _, tc := range cases {
		if got := tagFor(tc.tt); got != tc.want {
			t.Fatalf("tagFor(%v): got %v, want %v", tc.tt, got, tc.want)
		}
	}
}

func TestChroma_NumbersInCallArgs(t *testing.T) {
	toks := ForFile("main.go").TokenizeLine(`x := fmt.Println(42, "s", len(y))`)
	if !hasTag(toks, "42", TagNumber) {
		t.Fatalf("number not tagged: %+v", toks)
	}
	if !hasTag(toks, `"s"`, TagString) {
		t.Fatalf("string not tagged: %+v", toks)
	}
}

func TestChroma_PythonTags(t *testing.T) {
	tok := ForFile("script.py")
	toks := tok.TokenizeLine("def greet(name):")
	if !hasTag(toks, "def", TagKeyword) {
		t.Fatalf("def not tagged keyword: %+v", toks)
	}
	if !hasTag(toks, "greet", TagFunction) {
		t.Fatalf("function name not tagged: %+v", toks)
	}
}

func TestForFile_UnknownFallsBack(t *testing.T) {
	tok := ForFile("notes.unknown-extension")
	toks := tok.TokenizeLine("just some words")
	if joinTokens(toks) != "just some words" {
		t.Fatalf("fallback changed text: %+v", toks)
	}
	for _, tk := range toks {
		if tk.Tag != TagText {
			t.Fatalf("fallback tagged %q as %v", tk.Text, tk.Tag)
		}
	}
}

func TestForLanguage(t *testing.T) {
	if got := ForLanguage("python").Language(); got != "Python" {
		t.Fatalf("language: got %q, want %q", got, "Python")
	}
	if got := ForLanguage("no-such-language").TokenizeLine("x"); joinTokens(got) != "x" {
		t.Fatalf("fallback tokens: %+v", got)
	}
}

func TestTag_String(t *testing.T) {
	if TagComment.String() != "comment" {
		t.Fatalf("got %q", TagComment.String())
	}
	if Tag(99).String() != "text" {
		t.Fatalf("out of range tag: got %q", Tag(99).String())
	}
}
