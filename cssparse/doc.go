/*
Package cssparse is an ambient, non-core collaborator: it wraps a
third-party CSS tokenizer (github.com/aymerick/douceur) to turn CSS
source text into a cssom.Stylesheet value, fulfilling the external input
contract of the Style Engine.

The core Style Engine never imports this package directly — it only
consumes the cssom.Stylesheet value a driver hands it, exactly as the
external-interfaces section describes. cssparse is where the real parsing
work of turning bytes into that value happens.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssparse

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("littlebrowser.cssparse")
}
