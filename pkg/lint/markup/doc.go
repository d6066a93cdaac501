// Package markup runs lint rules over markup-ast trees, the representation
// produced for sources that may embed JSX.
//
// Rules are declared as RuleDef values and registered from init():
//
//	var MyRule = markup.RuleDef{
//		ID:       "RM99",
//		Name:     "my-rule",
//		Group:    "messages",
//		Severity: core.SeverityWarning,
//		Check:    checkMyRule,
//	}
//
//	func init() {
//		markup.Register(MyRule)
//	}
//
// Every wrapped rule checks the representation of the tree it is given and
// fails with *lint.ConfigurationError when it does not match.
package markup
