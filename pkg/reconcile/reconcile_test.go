package reconcile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrasekit/phrasekit/pkg/errors"
	"github.com/phrasekit/phrasekit/pkg/message"
	"github.com/phrasekit/phrasekit/pkg/ordered"
)

func testTemplate() *message.Template {
	return message.NewTemplate([]message.Message{
		{ID: "message_1", DefaultMessage: "Message 1"},
		{ID: "message_2", DefaultMessage: "Message 2"},
		{ID: "message_3", DefaultMessage: "Message 3"},
	})
}

func toPlainMap(m *ordered.Map) map[string]string {
	out := make(map[string]string)
	m.Range(func(k, v string) bool {
		out[k] = v
		return true
	})
	return out
}

func noPrior(string) (*ordered.Map, error) {
	return nil, nil
}

func TestReconcileFreshLocales(t *testing.T) {
	results, err := Reconcile(testTemplate(), []string{"en", "de"}, "en", noPrior)
	require.NoError(t, err)
	require.Len(t, results, 2)

	en := results[0]
	assert.Equal(t, "en", en.Locale)
	assert.True(t, en.Default)
	assert.Equal(t, []string{"message_1", "message_2", "message_3"}, en.Translation.Keys())

	want := map[string]string{
		"message_1": "Message 1",
		"message_2": "Message 2",
		"message_3": "Message 3",
	}
	if diff := cmp.Diff(want, toPlainMap(en.Translation)); diff != "" {
		t.Errorf("en translation mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, en.Added.Len())
	assert.Equal(t, 0, en.Untranslated.Len())
	assert.Equal(t, 0, en.Removed.Len())

	de := results[1]
	assert.False(t, de.Default)
	assert.Equal(t, []string{"message_1", "message_2", "message_3"}, de.Translation.Keys())
	for _, key := range de.Translation.Keys() {
		v, _ := de.Translation.Get(key)
		assert.Equal(t, "", v)
	}
	assert.Equal(t, 3, de.Added.Len())
	assert.Equal(t, 0, de.Untranslated.Len())
}

func TestReconcileNarrowedTemplate(t *testing.T) {
	// Prior en file is the output of a previous run with message_1..3;
	// the template now has message_3 and message_4 only.
	prior := ordered.NewMap()
	prior.Set("message_1", "Message 1")
	prior.Set("message_2", "Message 2")
	prior.Set("message_3", "Message 3")

	tmpl := message.NewTemplate([]message.Message{
		{ID: "message_3", DefaultMessage: "Message 3"},
		{ID: "message_4", DefaultMessage: "Message 4"},
	})

	en := Locale(tmpl, "en", true, prior)

	assert.Equal(t, []string{"message_3", "message_4"}, en.Translation.Keys())
	assert.Equal(t, map[string]string{"message_4": "Message 4"}, toPlainMap(en.Added))
	assert.Equal(t, map[string]string{
		"message_1": "Message 1",
		"message_2": "Message 2",
	}, toPlainMap(en.Removed))
	assert.False(t, en.Translation.Has("message_1"))
}

func TestReconcileManualTranslationsKept(t *testing.T) {
	prior := ordered.NewMap()
	prior.Set("message_1", "Nachricht eins")
	prior.Set("message_2", "Nachricht zwei")
	prior.Set("message_3", "Nachricht drei")

	de := Locale(testTemplate(), "de", false, prior)

	assert.True(t, de.Clean())
	assert.Equal(t, map[string]string{
		"message_1": "Nachricht eins",
		"message_2": "Nachricht zwei",
		"message_3": "Nachricht drei",
	}, toPlainMap(de.Translation))
}

func TestReconcileUntranslatedHeuristic(t *testing.T) {
	prior := ordered.NewMap()
	prior.Set("message_1", "Nachricht eins")
	prior.Set("message_2", "Nachricht zwei")
	prior.Set("message_3", "Message 3") // unchanged from default

	de := Locale(testTemplate(), "de", false, prior)

	assert.Equal(t, map[string]string{"message_3": "Message 3"}, toPlainMap(de.Untranslated))
	assert.Equal(t, 0, de.Added.Len())
	assert.Equal(t, 0, de.Removed.Len())
}

func TestReconcileDefaultLocaleNeverUntranslated(t *testing.T) {
	prior := ordered.NewMap()
	prior.Set("message_1", "Message 1")
	prior.Set("message_2", "Message 2")
	prior.Set("message_3", "Message 3")

	en := Locale(testTemplate(), "en", true, prior)
	assert.Equal(t, 0, en.Untranslated.Len())
	assert.True(t, en.Clean())
}

func TestReconcileIdempotence(t *testing.T) {
	tmpl := testTemplate()
	locales := []string{"en", "de", "fr"}

	first, err := Reconcile(tmpl, locales, "en", noPrior)
	require.NoError(t, err)

	// Feed the first run's output back as the prior files.
	byLocale := make(map[string]*ordered.Map)
	for i := range first {
		byLocale[first[i].Locale] = first[i].Translation
	}
	second, err := Reconcile(tmpl, locales, "en", func(locale string) (*ordered.Map, error) {
		return byLocale[locale], nil
	})
	require.NoError(t, err)

	for _, r := range second {
		assert.Equal(t, 0, r.Added.Len(), "locale %s", r.Locale)
		assert.Equal(t, 0, r.Removed.Len(), "locale %s", r.Locale)
	}
}

func TestReconcileKeySetClosure(t *testing.T) {
	// Prior file with extraneous keys and gaps; translation keys must equal
	// template keys exactly, in template order.
	prior := ordered.NewMap()
	prior.Set("stale_key", "old")
	prior.Set("message_2", "Zwei")

	de := Locale(testTemplate(), "de", false, prior)
	assert.Equal(t, []string{"message_1", "message_2", "message_3"}, de.Translation.Keys())
}

func TestReconcileAddedRemovedDisjoint(t *testing.T) {
	prior := ordered.NewMap()
	prior.Set("stale", "x")
	prior.Set("message_1", "Eins")

	de := Locale(testTemplate(), "de", false, prior)
	for _, added := range de.Added.Keys() {
		assert.False(t, de.Removed.Has(added), "key %s in both added and removed", added)
	}
}

func TestReconcileRemovedInFileOrder(t *testing.T) {
	prior := ordered.NewMap()
	prior.Set("zz_stale", "z")
	prior.Set("message_1", "Eins")
	prior.Set("aa_stale", "a")

	de := Locale(testTemplate(), "de", false, prior)
	assert.Equal(t, []string{"zz_stale", "aa_stale"}, de.Removed.Keys())
}

func TestReconcileDoesNotMutateInputs(t *testing.T) {
	prior := ordered.NewMap()
	prior.Set("stale", "x")
	prior.Set("message_1", "Eins")

	_ = Locale(testTemplate(), "de", false, prior)

	assert.Equal(t, []string{"stale", "message_1"}, prior.Keys())
	v, _ := prior.Get("stale")
	assert.Equal(t, "x", v)
}

func TestReconcilePriorErrorAborts(t *testing.T) {
	calls := 0
	_, err := Reconcile(testTemplate(), []string{"en", "de"}, "en", func(locale string) (*ordered.Map, error) {
		calls++
		if locale == "de" {
			return nil, errors.NewParseError("json", "de.json", "boom", nil)
		}
		return ordered.NewMap(), nil
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}
