// Package ts provides the TypeScript dialect.
package ts

import (
	"github.com/leapstack-labs/msglint/pkg/dialect"
	"github.com/leapstack-labs/msglint/pkg/dialects/js"
)

func init() {
	dialect.Register(TS)
}

// TS is typed plain script. Markup is rejected.
var TS = dialect.NewDialect("ts").
	Extends(js.JS).
	Description("A parser for TypeScript files.").
	Extensions(".ts", ".mts", ".cts").
	Grammar("typescript").
	Loader("ts").
	Typed(true).
	Build()
