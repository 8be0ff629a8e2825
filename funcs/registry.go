package funcs

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/folio-lang/folio/span"
	"github.com/folio-lang/folio/syntax"
)

// Symbol builds a model from a parsed function call. The parser hands
// over the call's body and raw arguments; the symbol decides what model
// to embed.
type Symbol interface {
	String() string
	Instance(body *syntax.SyntaxModel, args []string, at span.Span) (syntax.Model, error)
}

// Scope resolves function names. The real scope table lives with the
// parser; this interface is what it must look like from here.
type Scope interface {
	Lookup(name string) (Symbol, bool)
}

var ErrSymbolExists = errors.New("symbol exists")

// Registry is a thread-safe Scope populated by Register calls.
type Registry struct {
	mu sync.RWMutex
	d  map[string]Symbol
}

func NewRegistry() *Registry {
	return &Registry{d: map[string]Symbol{}}
}

func (r *Registry) Register(s Symbol) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, present := r.d[s.String()]; present {
		return fmt.Errorf("%s: %w", s, ErrSymbolExists)
	}
	r.d[s.String()] = s
	return nil
}

func (r *Registry) Lookup(name string) (Symbol, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.d[name]
	return s, ok
}

func (r *Registry) Symbols() []Symbol {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Symbol, 0, len(r.d))
	for _, s := range r.d {
		res = append(res, s)
	}
	return res
}

var std = NewRegistry()

// Std is the process-wide registry holding the built-in functions.
func Std() *Registry {
	return std
}

func init() {
	std.Register(groupSymbol{})
	std.Register(evalSymbol{})
}

type groupSymbol struct{}

func (groupSymbol) String() string { return "group" }

func (groupSymbol) Instance(body *syntax.SyntaxModel, args []string, _ span.Span) (syntax.Model, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("group takes no args, got %v", args)
	}
	if body == nil {
		body = syntax.New()
	}
	return syntax.Erase(Group{Body: body}), nil
}

type evalSymbol struct{}

func (evalSymbol) String() string { return "eval" }

func (evalSymbol) Instance(_ *syntax.SyntaxModel, args []string, at span.Span) (syntax.Model, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("eval needs an expression")
	}
	return syntax.Erase(Eval{Source: strings.Join(args, " "), Span: at}), nil
}
