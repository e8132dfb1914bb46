package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// ErrInvalidPattern wraps compile and scan failures of a search term.
var ErrInvalidPattern = errors.New("search: invalid pattern")

// Query is a search term: either a Literal or a Regex.
type Query interface {
	Term() string
	pattern() string
}

// Literal matches its text exactly; metacharacters carry no meaning.
type Literal string

func (l Literal) Term() string    { return string(l) }
func (l Literal) pattern() string { return regexp2.Escape(string(l)) }

// Regex is compiled as given.
type Regex string

func (r Regex) Term() string    { return string(r) }
func (r Regex) pattern() string { return string(r) }

// Options controls how queries compile.
type Options struct {
	CaseSensitive bool
	UseRegex      bool

	// MatchTimeout bounds the time spent matching a single line.
	// Zero means no limit.
	MatchTimeout time.Duration
}

// QueryFor wraps term as a Regex when opt.UseRegex is set, else as a Literal.
func QueryFor(term string, opt Options) Query {
	if opt.UseRegex {
		return Regex(term)
	}
	return Literal(term)
}

func compile(q Query, opt Options) (*regexp2.Regexp, error) {
	flags := regexp2.None
	if !opt.CaseSensitive {
		flags |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(q.pattern(), flags)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, q.Term(), err)
	}
	if opt.MatchTimeout > 0 {
		re.MatchTimeout = opt.MatchTimeout
	}
	return re, nil
}
