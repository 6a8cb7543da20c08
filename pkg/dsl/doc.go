/*
Package dsl provides a fluent Go API for programmatically constructing HexRune scripts.

Nodes are named when added and links refer to those names, so a script can be
written top to bottom without holding on to node or pin ids. Links are resolved
when Build is called; the first failure is reported there.

Example:

	b := dsl.New(s)
	b.Binding("greeting", domain.StringValue("hello"))
	b.Add("begin", nodes.TypeBeginPlay).Go(0, "print")
	b.Add("print", nodes.TypePrintString)
	b.Get("greeting", "greeting").Feed(0, "print", 1)
	script, err := b.Build()
*/
package dsl
