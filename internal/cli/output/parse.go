package output

// ParseOutput is the JSON document printed by the parse command.
type ParseOutput struct {
	Path    string    `json:"path"`
	Dialect string    `json:"dialect"`
	Root    *TreeNode `json:"root"`
}

// TreeNode is the JSON form of a syntax node.
type TreeNode struct {
	Kind             string      `json:"kind"`
	Type             string      `json:"type"`
	Name             string      `json:"name,omitempty"`
	NameIsIdentifier bool        `json:"name_is_identifier,omitempty"`
	SelfClosing      bool        `json:"self_closing,omitempty"`
	Start            string      `json:"start"`
	End              string      `json:"end"`
	Text             string      `json:"text,omitempty"`
	Attributes       []*TreeNode `json:"attributes,omitempty"`
	Children         []*TreeNode `json:"children,omitempty"`
	Nodes            []*TreeNode `json:"nodes,omitempty"`
}
