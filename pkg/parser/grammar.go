package parser

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	forest "github.com/alexaandru/go-sitter-forest"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

var errPoolType = errors.New("unexpected type in tree-sitter parser pool")

// grammar holds a loaded tree-sitter language and a pool of parsers for it.
// Grammars are loaded once per process and are read-only afterwards.
type grammar struct {
	name     string
	language *sitter.Language
	pool     sync.Pool
}

var (
	grammarsMu sync.Mutex
	grammars   = make(map[string]*grammar)
)

// loadGrammar returns the cached grammar for name, loading it on first use.
func loadGrammar(name string) (*grammar, error) {
	grammarsMu.Lock()
	defer grammarsMu.Unlock()

	if g, ok := grammars[name]; ok {
		return g, nil
	}

	var lang *sitter.Language
	func() {
		defer func() {
			_ = recover() //nolint:errcheck // GetLanguage panics for unknown names
		}()
		lang = forest.GetLanguage(name)
	}()
	if lang == nil {
		return nil, fmt.Errorf("%w: %s", ErrGrammarUnavailable, name)
	}

	first := sitter.NewParser()
	if ok := first.SetLanguage(lang); !ok {
		return nil, fmt.Errorf("%w: %s (incompatible ABI version)", ErrGrammarUnavailable, name)
	}

	g := &grammar{name: name, language: lang}
	g.pool = sync.Pool{
		New: func() any {
			p := sitter.NewParser()
			_ = p.SetLanguage(lang) // compatibility checked above
			return p
		},
	}
	g.pool.Put(first)
	grammars[name] = g
	return g, nil
}

// parse builds a tree-sitter tree for src. The caller must Close the tree.
// ParseString arms the cancellation flag from a goroutine that can outlive the
// call, so pooled parsers are cleared before use and parse detached from ctx.
func (g *grammar) parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, ok := g.pool.Get().(*sitter.Parser)
	if !ok {
		return nil, errPoolType
	}
	defer g.pool.Put(p)

	atomic.StoreUint64(p.CancellationFlag(), 0)
	p.Reset()

	tree, err := p.ParseString(context.WithoutCancel(ctx), nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter %s: %w", g.name, err)
	}
	if tree == nil {
		return nil, fmt.Errorf("tree-sitter %s: no tree produced", g.name)
	}
	return tree, nil
}
