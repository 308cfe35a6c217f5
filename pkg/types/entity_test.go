package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntity(t *testing.T) {
	e, err := NewEntity("door_panel-1")
	require.NoError(t, err)
	assert.Equal(t, "door_panel-1", e.Name)
}

func TestNewEntityInvalidCharacters(t *testing.T) {
	for _, name := range []string{"a b", "a.b", "ä", "e!", "a:b"} {
		_, err := NewEntity(name)
		assert.Error(t, err, "name %q should be rejected", name)

		var nameErr *InvalidNameError
		assert.ErrorAs(t, err, &nameErr)
	}
}

func TestValidEntityType(t *testing.T) {
	assert.True(t, ValidEntityType("block_display"))
	assert.True(t, ValidEntityType("item_display"))
	assert.True(t, ValidEntityType("text_display"))
	assert.False(t, ValidEntityType("armor_stand"))
	assert.False(t, ValidEntityType(""))
}
