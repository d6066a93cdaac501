// Package jsx provides the JavaScript-with-markup dialect.
package jsx

import (
	"github.com/leapstack-labs/msglint/pkg/dialect"
	"github.com/leapstack-labs/msglint/pkg/dialects/js"
)

func init() {
	dialect.Register(JSX)
}

// JSX is JavaScript with JSX markup. It claims ".js" as well because React
// components commonly live in plain ".js" files.
var JSX = dialect.NewDialect("jsx").
	Extends(js.JS).
	Description("A parser for JS files with JSX markup.").
	Extensions(".jsx", ".js", ".mjs", ".cjs").
	Loader("jsx").
	Markup(true).
	Build()
