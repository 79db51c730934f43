/*
Package cssom models the data a stylesheet is made of, per the external
CSS input contract: an ordered sequence of Rules, each carrying an ordered
list of Selectors and an ordered list of Declarations.

A Stylesheet value is typically produced by the cssparse package, which
wraps a third-party CSS tokenizer; this package owns only the data model
and the pure selector queries the Style Engine needs from it — which
parts a selector constrains, and its specificity and ordering — not the
tokenizer itself. Matching a selector against an element is done in the
style package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
