// Package all registers every built-in dialect.
//
//	import _ "github.com/leapstack-labs/msglint/pkg/dialects/all"
package all

import (
	_ "github.com/leapstack-labs/msglint/pkg/dialects/js"  // plain script
	_ "github.com/leapstack-labs/msglint/pkg/dialects/jsx" // script with markup
	_ "github.com/leapstack-labs/msglint/pkg/dialects/ts"  // typed script
	_ "github.com/leapstack-labs/msglint/pkg/dialects/tsx" // typed script with markup
)
