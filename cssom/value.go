package cssom

import "fmt"

// Unit enumerates the length units a Value may carry. Px is the only unit
// this core supports; units other than pixels are out of scope.
type Unit uint8

const (
	// Px is the pixel unit.
	Px Unit = iota
)

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	}
	return "?"
}

type valueKind uint8

const (
	kindKeyword valueKind = iota
	kindLength
	kindColor
)

// Value is a CSS declaration value: a Keyword, a Length carrying a Unit,
// or a ColorValue with r/g/b/a components.
type Value struct {
	kind    valueKind
	keyword string
	num     float64
	unit    Unit
	r, g, b, a uint8
}

// Keyword constructs a keyword Value, e.g. "auto" or "block".
func Keyword(kw string) Value {
	return Value{kind: kindKeyword, keyword: kw}
}

// Length constructs a Length Value of n in the given unit.
func Length(n float64, unit Unit) Value {
	return Value{kind: kindLength, num: n, unit: unit}
}

// ColorValue constructs a ColorValue Value from r/g/b/a components.
func ColorValue(r, g, b, a uint8) Value {
	return Value{kind: kindColor, r: r, g: g, b: b, a: a}
}

func (v Value) String() string {
	switch v.kind {
	case kindKeyword:
		return v.keyword
	case kindLength:
		return fmt.Sprintf("%g%s", v.num, v.unit)
	case kindColor:
		return fmt.Sprintf("rgba(%d,%d,%d,%d)", v.r, v.g, v.b, v.a)
	}
	return "<invalid value>"
}

// ToPx returns the pixel value of v, treating anything that isn't a
// Length (including Keyword("auto")) as 0 — the convention the width
// resolution algorithm relies on throughout.
func (v Value) ToPx() float64 {
	if v.kind == kindLength {
		return v.num
	}
	return 0
}

// IsKeyword reports whether v is the keyword kw.
func (v Value) IsKeyword(kw string) bool {
	return v.kind == kindKeyword && v.keyword == kw
}

// IsAuto reports whether v is the keyword "auto".
func (v Value) IsAuto() bool {
	return v.IsKeyword("auto")
}

// --- Matching ---------------------------------------------------------

// Matcher is the result of Match(), used for destructuring in a switch:
//
//	switch m := val.Match(); m {
//	case m.Keyword(&kw):
//	case m.Length(&n, &unit):
//	case m.Color(&r, &g, &b, &a):
//	}
type Matcher interface {
	Keyword(*string) Matcher
	Length(*float64, *Unit) Matcher
	Color(*uint8, *uint8, *uint8, *uint8) Matcher
}

type matcher struct {
	v Value
}

// Match returns a Matcher for v.
func (v Value) Match() Matcher {
	return matcher{v: v}
}

func (m matcher) Keyword(kw *string) Matcher {
	if m.v.kind != kindKeyword {
		return nil
	}
	if kw != nil {
		*kw = m.v.keyword
	}
	return m
}

func (m matcher) Length(n *float64, unit *Unit) Matcher {
	if m.v.kind != kindLength {
		return nil
	}
	if n != nil {
		*n = m.v.num
	}
	if unit != nil {
		*unit = m.v.unit
	}
	return m
}

func (m matcher) Color(r, g, b, a *uint8) Matcher {
	if m.v.kind != kindColor {
		return nil
	}
	if r != nil {
		*r = m.v.r
	}
	if g != nil {
		*g = m.v.g
	}
	if b != nil {
		*b = m.v.b
	}
	if a != nil {
		*a = m.v.a
	}
	return m
}
