package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplateOrder(t *testing.T) {
	tmpl := NewTemplate([]Message{
		{ID: "message_1", DefaultMessage: "Message 1"},
		{ID: "message_2", DefaultMessage: "Message 2"},
		{ID: "message_3", DefaultMessage: "Message 3"},
	})

	assert.Equal(t, 3, tmpl.Len())
	assert.Equal(t, []string{"message_1", "message_2", "message_3"}, tmpl.Keys())

	text, ok := tmpl.DefaultText("message_2")
	require.True(t, ok)
	assert.Equal(t, "Message 2", text)
}

func TestNewTemplateDuplicateLastWins(t *testing.T) {
	tmpl := NewTemplate([]Message{
		{ID: "greeting", DefaultMessage: "Hello"},
		{ID: "farewell", DefaultMessage: "Bye"},
		{ID: "greeting", DefaultMessage: "Hi there"},
	})

	assert.Equal(t, 2, tmpl.Len())
	// Position of the first occurrence is kept, text of the last wins.
	assert.Equal(t, []string{"greeting", "farewell"}, tmpl.Keys())
	text, _ := tmpl.DefaultText("greeting")
	assert.Equal(t, "Hi there", text)
}

func TestTemplateHasAndMissing(t *testing.T) {
	tmpl := NewTemplate([]Message{{ID: "a", DefaultMessage: "A"}})
	assert.True(t, tmpl.Has("a"))
	assert.False(t, tmpl.Has("b"))
	_, ok := tmpl.DefaultText("b")
	assert.False(t, ok)
}

func TestNewTemplateEmpty(t *testing.T) {
	tmpl := NewTemplate(nil)
	assert.Equal(t, 0, tmpl.Len())
	assert.Empty(t, tmpl.Keys())
}
