/*
Package boxtree implements the Layout Engine: construction of the Layout
Tree from a Styled Tree (with anonymous-block insertion for runs of inline
children under a block parent), and the CSS 2.1 block layout algorithm
that computes concrete pixel geometry for every block box.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("littlebrowser.boxtree")
}
