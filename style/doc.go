/*
Package style implements the Style Engine: selector matching, the
specificity-ordered cascade, and construction of the Styled Tree that
mirrors a document tree one-to-one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("littlebrowser.style")
}
