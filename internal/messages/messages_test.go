package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogCoversAllKeysForAllLocales(t *testing.T) {
	for loc := range catalog {
		for _, key := range Keys {
			msg, ok := catalog[loc][key]
			assert.True(t, ok, "locale %s is missing key %s", loc, key)
			assert.NotEmpty(t, msg, "locale %s has an empty message for key %s", loc, key)
		}
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		name     string
		lang     string
		expected Locale
	}{
		{name: "Spanish", lang: "es", expected: LocaleSpanish},
		{name: "English", lang: "en", expected: LocaleEnglish},
		{name: "Unknown falls back to default", lang: "fr", expected: DefaultLocale},
		{name: "Empty falls back to default", lang: "", expected: DefaultLocale},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseLocale(test.lang))
		})
	}
}

func TestLookupFallsBackToDefaultLocale(t *testing.T) {
	assert.Equal(t,
		Lookup(DefaultLocale, KeyWelcomeSubject),
		Lookup(Locale("fr"), KeyWelcomeSubject))
}

func TestLookupReturnsLocalizedMessage(t *testing.T) {
	es := Lookup(LocaleSpanish, KeyWelcomeSubject)
	en := Lookup(LocaleEnglish, KeyWelcomeSubject)
	assert.NotEmpty(t, es)
	assert.NotEmpty(t, en)
	assert.NotEqual(t, es, en)
}
