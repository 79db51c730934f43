/*
Package dom implements the document tree of a rendering pass: a node is
either a Text node or an Element node, each owning an ordered sequence of
children.

The tree is normally produced by the recursive-descent parser in this
package (see parser.go); NewText, NewElement and AppendChild also build
trees directly. There is no mutation API beyond tree construction,
reflecting that the Document Tree is immutable once built and is only ever
read by later stages (the Style Engine and, transitively, the Layout
Engine).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("littlebrowser.dom")
}
