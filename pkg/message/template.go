package message

import (
	"github.com/phrasekit/phrasekit/pkg/logging"
	"github.com/phrasekit/phrasekit/pkg/ordered"
)

// Template is the canonical key-to-default-text mapping, in message order.
type Template struct {
	entries *ordered.Map
}

// NewTemplate collapses a message list into a template. When the same key
// appears more than once, the last default text wins and the key keeps its
// first position. A duplicate whose default text differs from the one already
// seen is logged as a warning, since it usually points at an extraction bug.
func NewTemplate(msgs []Message) *Template {
	entries := ordered.NewMap()
	for _, msg := range msgs {
		if prev, ok := entries.Get(msg.ID); ok && prev != msg.DefaultMessage {
			logging.Warn().
				Str("id", msg.ID).
				Str("previous", prev).
				Str("replacement", msg.DefaultMessage).
				Msg("duplicate message key with conflicting default text")
		}
		entries.Set(msg.ID, msg.DefaultMessage)
	}
	return &Template{entries: entries}
}

// Len returns the number of keys in the template.
func (t *Template) Len() int {
	return t.entries.Len()
}

// Keys returns the template keys in template order.
func (t *Template) Keys() []string {
	return t.entries.Keys()
}

// DefaultText returns the default text for key and whether the key exists.
func (t *Template) DefaultText(key string) (string, bool) {
	return t.entries.Get(key)
}

// Has reports whether key is part of the template.
func (t *Template) Has(key string) bool {
	return t.entries.Has(key)
}

// Range calls fn for each key/default-text pair in template order.
// Iteration stops early if fn returns false.
func (t *Template) Range(fn func(key, defaultText string) bool) {
	t.entries.Range(fn)
}
