package cssom

// Selector is a Simple selector in this core: an optional tag name, an
// optional id, and an ordered list of class names (possibly empty). A
// zero-valued Selector is the wildcard selector, matching every element.
type Selector struct {
	TagName string
	ID      string
	Classes []string
}

// HasTagName reports whether sel constrains the tag name.
func (sel Selector) HasTagName() bool {
	return sel.TagName != ""
}

// HasID reports whether sel constrains the id.
func (sel Selector) HasID() bool {
	return sel.ID != ""
}

// Specificity is the triple (id-present, class-count, tag-present) used to
// order matched rules, compared lexicographically in that order.
type Specificity struct {
	IDPresent  int
	ClassCount int
	TagPresent int
}

// Specificity computes the specificity triple of sel.
func (sel Selector) Specificity() Specificity {
	s := Specificity{ClassCount: len(sel.Classes)}
	if sel.HasID() {
		s.IDPresent = 1
	}
	if sel.HasTagName() {
		s.TagPresent = 1
	}
	return s
}

// Less reports whether a orders strictly before b, comparing the triple
// lexicographically in (id-present, class-count, tag-present) order.
func (a Specificity) Less(b Specificity) bool {
	if a.IDPresent != b.IDPresent {
		return a.IDPresent < b.IDPresent
	}
	if a.ClassCount != b.ClassCount {
		return a.ClassCount < b.ClassCount
	}
	return a.TagPresent < b.TagPresent
}
