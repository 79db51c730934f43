package cssom_test

import (
	"testing"

	"github.com/npillmayer/littlebrowser/cssom"
	"github.com/stretchr/testify/assert"
)

func TestKeywordToPxIsZero(t *testing.T) {
	auto := cssom.Keyword("auto")
	assert.Equal(t, float64(0), auto.ToPx())
	assert.True(t, auto.IsAuto())
	assert.True(t, auto.IsKeyword("auto"))
	assert.False(t, auto.IsKeyword("block"))
}

func TestLengthToPx(t *testing.T) {
	v := cssom.Length(42, cssom.Px)
	assert.Equal(t, float64(42), v.ToPx())
	assert.False(t, v.IsAuto())
}

func TestValueMatcher(t *testing.T) {
	v := cssom.Length(10, cssom.Px)
	var n float64
	var unit cssom.Unit
	switch m := v.Match(); m {
	case m.Length(&n, &unit):
	case m.Keyword(nil):
		t.Fatal("expected Length branch")
	case m.Color(nil, nil, nil, nil):
		t.Fatal("expected Length branch")
	}
	assert.Equal(t, float64(10), n)
	assert.Equal(t, cssom.Px, unit)
}

func TestSpecificityOrdering(t *testing.T) {
	tag := cssom.Selector{TagName: "div"}
	class := cssom.Selector{Classes: []string{"y"}}
	id := cssom.Selector{ID: "x"}

	assert.True(t, tag.Specificity().Less(class.Specificity()))
	assert.True(t, class.Specificity().Less(id.Specificity()))
	assert.False(t, id.Specificity().Less(tag.Specificity()))
}
