package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringListValue(t *testing.T) {
	empty := StringList{}
	v, err := empty.Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", v)

	list := StringList{"spicy", "dinner", "spicy"}
	v, err = list.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `["spicy","dinner","spicy"]`, string(v.([]byte)))
}

func TestStringListScan(t *testing.T) {
	var list StringList
	assert.NoError(t, list.Scan(`["a","b","c"]`))
	assert.Equal(t, StringList{"a", "b", "c"}, list)

	var fromBytes StringList
	assert.NoError(t, fromBytes.Scan([]byte(`["x"]`)))
	assert.Equal(t, StringList{"x"}, fromBytes)

	var fromNil StringList
	assert.NoError(t, fromNil.Scan(nil))
	assert.Equal(t, StringList{}, fromNil)
}

func TestStringListRoundTripPreservesOrder(t *testing.T) {
	original := StringList{"z", "a", "m", "a"}
	v, err := original.Value()
	assert.NoError(t, err)

	var scanned StringList
	assert.NoError(t, scanned.Scan(v))
	assert.Equal(t, original, scanned)
}
