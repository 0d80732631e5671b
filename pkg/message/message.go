// Package message defines the canonical message template that drives
// reconciliation: the set of message keys and their default (source-locale)
// text, independent of any particular locale.
package message

// Message is a single localizable message as produced by extraction or
// supplied directly: a unique key and its default text.
type Message struct {
	ID             string `json:"id"`
	DefaultMessage string `json:"defaultMessage"`
}

// Extractor produces messages from source files matching a glob pattern.
// Extraction itself (parsing source code) is not a phrasekit concern; callers
// supply an implementation when configuring a source glob.
type Extractor func(pattern string) ([]Message, error)
