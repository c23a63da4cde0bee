package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		code string
		want Language
		ok   bool
	}{
		{"en", English, true},
		{"km", Khmer, true},
		{" KM ", Khmer, true},
		{"fr", English, false},
		{"", English, false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.code)
		assert.Equal(t, tt.want, got, tt.code)
		assert.Equal(t, tt.ok, ok, tt.code)
	}
}

func TestT(t *testing.T) {
	assert.Equal(t, "Bags", English.T("hero.bags"))
	assert.Equal(t, "កាបូប", Khmer.T("hero.bags"))
	assert.Equal(t, "Foundation of", English.T("hero.title.prefix"))
	assert.Equal(t, "5000", English.T("hero.title.number"))
	assert.Equal(t, "Bags of Smiles", English.T("hero.title.suffix"))
}

func TestT_MissingKeyFallsBackToKey(t *testing.T) {
	assert.Equal(t, "nope.missing", English.T("nope.missing"))
	assert.Equal(t, "nope.missing", Khmer.T("nope.missing"))
	assert.Equal(t, "Bags", Language("de").T("hero.bags"))
}

func TestT_EmptyTextIsKept(t *testing.T) {
	assert.True(t, English.Has("message.noMessagesEn"))
	assert.Equal(t, "", English.T("message.noMessagesEn"))
}

func TestTablesHaveSameKeys(t *testing.T) {
	for key := range tables[English] {
		assert.True(t, Khmer.Has(key), "km lacks %s", key)
	}
	for key := range tables[Khmer] {
		assert.True(t, English.Has(key), "en lacks %s", key)
	}
	for _, key := range DonationItemKeys {
		assert.True(t, English.Has(key), key)
	}
}
