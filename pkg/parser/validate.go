package parser

import (
	"github.com/evanw/esbuild/pkg/api"

	"github.com/leapstack-labs/msglint/pkg/dialect"
	"github.com/leapstack-labs/msglint/pkg/token"
)

var loaders = map[string]api.Loader{
	"js":  api.LoaderJS,
	"jsx": api.LoaderJSX,
	"ts":  api.LoaderTS,
	"tsx": api.LoaderTSX,
}

// validate runs the source through esbuild's parser, which is strict about
// the grammar of each loader, and converts the first reported error into a
// *SyntaxError. It returns nil for valid input.
func validate(src []byte, path string, d *dialect.Dialect, lines *token.LineIndex) *SyntaxError {
	loader, ok := loaders[d.Loader]
	if !ok {
		loader = api.LoaderJSX
	}

	result := api.Transform(string(src), api.TransformOptions{
		Loader:     loader,
		Sourcefile: path,
		JSX:        api.JSXPreserve,
		LogLevel:   api.LogLevelSilent,
	})
	if len(result.Errors) == 0 {
		return nil
	}

	msg := result.Errors[0]
	se := &SyntaxError{
		Path:    path,
		Message: msg.Text,
		Pos:     token.Position{Line: 1},
	}
	if loc := msg.Location; loc != nil {
		// esbuild reports 1-based lines and 0-based byte columns.
		if off := lines.OffsetOf(loc.Line, loc.Column); off >= 0 {
			se.Pos = lines.Position(off)
		} else {
			se.Pos = token.Position{Line: loc.Line, Column: loc.Column}
		}
	}
	return se
}
