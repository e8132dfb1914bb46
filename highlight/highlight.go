// Package highlight annotates a single line of text with style tags for
// display coloring. It never changes the text: concatenating the token texts
// reproduces the input line.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Tag classifies a token for styling.
type Tag int

const (
	TagText Tag = iota
	TagKeyword
	TagName
	TagFunction
	TagBuiltin
	TagString
	TagNumber
	TagComment
	TagOperator
	TagPunctuation
)

var tagNames = [...]string{
	TagText:        "text",
	TagKeyword:     "keyword",
	TagName:        "name",
	TagFunction:    "function",
	TagBuiltin:     "builtin",
	TagString:      "string",
	TagNumber:      "number",
	TagComment:     "comment",
	TagOperator:    "operator",
	TagPunctuation: "punctuation",
}

func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return "text"
	}
	return tagNames[t]
}

// Token is a fragment of a line and its style tag.
type Token struct {
	Text string
	Tag  Tag
}

// Tokenizer splits one line into styled tokens.
type Tokenizer interface {
	TokenizeLine(line string) []Token
	Language() string
}

// Plain is a Tokenizer that returns the whole line as text.
type Plain struct{}

func (Plain) TokenizeLine(line string) []Token {
	if line == "" {
		return nil
	}
	return []Token{{Text: line, Tag: TagText}}
}

func (Plain) Language() string { return "plaintext" }

// Chroma tokenizes with a chroma lexer.
type Chroma struct {
	lexer chroma.Lexer
}

// ForFile picks a lexer by file name, falling back to plain text.
func ForFile(path string) *Chroma {
	l := lexers.Match(path)
	if l == nil {
		l = lexers.Fallback
	}
	return &Chroma{lexer: chroma.Coalesce(l)}
}

// ForLanguage picks a lexer by name or alias, falling back to plain text.
func ForLanguage(name string) *Chroma {
	l := lexers.Get(name)
	if l == nil {
		l = lexers.Fallback
	}
	return &Chroma{lexer: chroma.Coalesce(l)}
}

func (c *Chroma) Language() string {
	if cfg := c.lexer.Config(); cfg != nil {
		return cfg.Name
	}
	return "plaintext"
}

// TokenizeLine lexes line on its own. Constructs spanning lines (block
// comments, raw strings) are seen one line at a time.
func (c *Chroma) TokenizeLine(line string) []Token {
	if line == "" {
		return nil
	}
	it, err := c.lexer.Tokenise(nil, line)
	if err != nil {
		return Plain{}.TokenizeLine(line)
	}

	var out []Token
	for tok := it(); tok != chroma.EOF; tok = it() {
		text := strings.TrimRight(tok.Value, "\n")
		if text == "" {
			continue
		}
		tag := tagFor(tok.Type)
		if n := len(out); n > 0 && out[n-1].Tag == tag {
			out[n-1].Text += text
			continue
		}
		out = append(out, Token{Text: text, Tag: tag})
	}
	return reconcile(line, out)
}

func tagFor(tt chroma.TokenType) Tag {
	switch {
	case tt.InCategory(chroma.Keyword):
		return TagKeyword
	case tt == chroma.NameFunction || tt == chroma.NameClass:
		return TagFunction
	case tt.InSubCategory(chroma.NameBuiltin):
		return TagBuiltin
	case tt == chroma.NameException:
		return TagKeyword
	case tt.InSubCategory(chroma.LiteralString):
		return TagString
	case tt.InSubCategory(chroma.LiteralNumber):
		return TagNumber
	case tt.InCategory(chroma.Comment):
		return TagComment
	case tt.InCategory(chroma.Operator):
		return TagOperator
	case tt.InCategory(chroma.Punctuation):
		return TagPunctuation
	case tt.InCategory(chroma.Name):
		return TagName
	default:
		return TagText
	}
}

// reconcile guarantees the tokens concatenate back to line. Lexers may
// normalize input (a trailing newline is added, tabs kept); when the texts
// disagree the line is returned untagged.
func reconcile(line string, toks []Token) []Token {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.Text)
	}
	if sb.String() != line {
		return Plain{}.TokenizeLine(line)
	}
	return toks
}
