/*
Package debug renders any of the three trees of a rendering pass —
Document, Styled, or Layout — as an indented tree for diagnostics. It is
additive tooling, not part of the core render pipeline: nothing in dom,
style, or boxtree imports it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package debug
