package editor

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/highlight"
)

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text         lipgloss.Style
	Selection    lipgloss.Style
	Cursor       lipgloss.Style
	Match        lipgloss.Style
	CurrentMatch lipgloss.Style

	Status   lipgloss.Style
	Message  lipgloss.Style
	Error    lipgloss.Style
	Prompt   lipgloss.Style
	Modified lipgloss.Style

	// Tokens styles text by highlight tag. Missing tags use Text.
	Tokens map[highlight.Tag]lipgloss.Style
}

func DefaultStyle() Style {
	return NewStyle(nil, "")
}

var tagTokenTypes = map[highlight.Tag]chroma.TokenType{
	highlight.TagKeyword:     chroma.Keyword,
	highlight.TagName:        chroma.Name,
	highlight.TagFunction:    chroma.NameFunction,
	highlight.TagBuiltin:     chroma.NameBuiltin,
	highlight.TagString:      chroma.LiteralString,
	highlight.TagNumber:      chroma.LiteralNumber,
	highlight.TagComment:     chroma.Comment,
	highlight.TagOperator:    chroma.Operator,
	highlight.TagPunctuation: chroma.Punctuation,
}

// NewStyle builds a Style whose token colors come from the named chroma
// theme. An empty theme leaves tokens unstyled; an unknown one falls back to
// chroma's default. A nil renderer uses lipgloss's default renderer.
func NewStyle(r *lipgloss.Renderer, theme string) Style {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	gutter := r.NewStyle().Foreground(lipgloss.Color("240"))
	st := Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: r.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          r.NewStyle(),
		Selection:     r.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        r.NewStyle().Reverse(true),
		Match:         r.NewStyle().Background(lipgloss.Color("58")),
		CurrentMatch:  r.NewStyle().Background(lipgloss.Color("136")).Foreground(lipgloss.Color("0")),
		Status:        r.NewStyle().Reverse(true),
		Message:       r.NewStyle().Foreground(lipgloss.Color("250")),
		Error:         r.NewStyle().Foreground(lipgloss.Color("203")),
		Prompt:        r.NewStyle().Bold(true),
		Modified:      r.NewStyle().Foreground(lipgloss.Color("214")),
	}
	if theme == "" {
		return st
	}

	cs := styles.Get(theme)
	st.Tokens = make(map[highlight.Tag]lipgloss.Style, len(tagTokenTypes))
	for tag, tt := range tagTokenTypes {
		entry := cs.Get(tt)
		s := r.NewStyle()
		if entry.Colour.IsSet() {
			s = s.Foreground(lipgloss.Color(entry.Colour.String()))
		}
		if entry.Bold == chroma.Yes {
			s = s.Bold(true)
		}
		if entry.Italic == chroma.Yes {
			s = s.Italic(true)
		}
		st.Tokens[tag] = s
	}
	return st
}

func (s Style) token(tag highlight.Tag) lipgloss.Style {
	if ts, ok := s.Tokens[tag]; ok {
		return ts.Inherit(s.Text)
	}
	return s.Text
}
