package forthwith

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Dictionary(t *testing.T) {
	d := NewDictionary()

	_, defined := d.Search("square")
	assert.False(t, defined)
	assert.Equal(t, 0, d.Len())

	body := []Token{opToken(OpDup), opToken(OpMultiply)}
	d.Store("square", body)
	got, defined := d.Search("square")
	assert.True(t, defined)
	assert.Equal(t, body, got)
	assert.Equal(t, 1, d.Len())

	// last write wins
	d.Store("square", []Token{opToken(OpDrop)})
	got, defined = d.Search("square")
	assert.True(t, defined)
	assert.Equal(t, []Token{opToken(OpDrop)}, got)
	assert.Equal(t, 1, d.Len())

	// exact match only, names are case sensitive
	_, defined = d.Search("SQUARE")
	assert.False(t, defined)
}
