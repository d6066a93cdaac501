package format

import "github.com/leapstack-labs/msglint/pkg/parser"

// formatElement prints <Name attrs /> or <Name attrs>children</Name>.
func (p *Printer) formatElement(n *parser.Node) {
	p.write("<")
	p.write(n.Name)
	if len(n.Attributes) > 0 {
		p.space()
		p.formatList(len(n.Attributes), func(i int) {
			p.formatNode(n.Attributes[i])
		}, " ")
	}
	if n.SelfClosing {
		p.write(" />")
		return
	}
	p.write(">")
	p.formatChildren(n.Children)
	p.write("</")
	p.write(n.Name)
	p.write(">")
}

func (p *Printer) formatFragment(n *parser.Node) {
	p.write("<>")
	p.formatChildren(n.Children)
	p.write("</>")
}

func (p *Printer) formatChildren(children []*parser.Node) {
	for _, c := range children {
		p.formatNode(c)
	}
}

func (p *Printer) formatAttribute(n *parser.Node) {
	p.write(n.Name)
	if n.Value == nil {
		return
	}
	p.write("=")
	p.formatNode(n.Value)
}
