// Package js provides the plain JavaScript dialect.
//
// Plain scripts are parsed with the same grammar as markup scripts but any
// markup is rejected. Other dialects extend this one.
package js

import "github.com/leapstack-labs/msglint/pkg/dialect"

func init() {
	dialect.Register(JS)
}

// JS is the plain JavaScript dialect.
var JS = dialect.NewDialect("js").
	Description("A parser for JS files.").
	Extensions(".js", ".mjs", ".cjs").
	Grammar("javascript").
	Loader("js").
	Build()
