// Package tsx provides the TypeScript-with-markup dialect.
package tsx

import (
	"github.com/leapstack-labs/msglint/pkg/dialect"
	"github.com/leapstack-labs/msglint/pkg/dialects/ts"
)

func init() {
	dialect.Register(TSX)
}

// TSX is typed script with JSX markup.
var TSX = dialect.NewDialect("tsx").
	Extends(ts.TS).
	Description("A parser for TypeScript files with JSX markup.").
	Extensions(".tsx").
	Grammar("tsx").
	Loader("tsx").
	Markup(true).
	Build()
