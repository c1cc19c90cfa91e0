package jsontypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListRoundTrip(t *testing.T) {
	list := StringList{"VIP access", "Free parking"}

	value, err := list.Value()
	require.NoError(t, err)

	var scanned StringList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, list, scanned)
}

func TestStringListScanMalformed(t *testing.T) {
	var list StringList
	require.NoError(t, list.Scan([]byte("not json at all")))
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestStringListScanNil(t *testing.T) {
	var list StringList
	require.NoError(t, list.Scan(nil))
	assert.Empty(t, list)
}

func TestStringListNilValue(t *testing.T) {
	var list StringList
	value, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := Document{"name": "Jamie", "email": "jamie@example.com"}

	value, err := doc.Value()
	require.NoError(t, err)

	var scanned Document
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, "Jamie", scanned["name"])
	assert.Equal(t, "jamie@example.com", scanned["email"])
}

func TestDocumentScanMalformed(t *testing.T) {
	var doc Document
	require.NoError(t, doc.Scan("{truncated"))
	assert.Empty(t, doc)
	assert.NotNil(t, doc)
}

func TestDocumentScanString(t *testing.T) {
	var doc Document
	require.NoError(t, doc.Scan(`{"account":"123"}`))
	assert.Equal(t, "123", doc["account"])
}
