// Package fp collects a handful of small generic function combinators for
// pure, single-valued glue code. The rendering pipeline does not use them:
// its stages return (value, error), and boxtree.Render calls them in plain
// sequence.
package fp

// Const returns a function that always produces a, ignoring any input.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g, i.e. h(a) = f(g(a)).
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
