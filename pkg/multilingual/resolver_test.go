package multilingual_test

import (
	"fmt"
	"maps"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medsite/internal/domain/language"
	"medsite/pkg/multilingual"
)

func TestResolveField(t *testing.T) {
	testCases := []struct {
		name     string
		record   multilingual.Record
		field    string
		lang     language.Code
		fallback []string
		want     string
	}{
		{
			name:     "nil record returns fallback",
			record:   nil,
			field:    "title",
			lang:     language.EN,
			fallback: []string{"N/A"},
			want:     "N/A",
		},
		{
			name:   "empty record returns empty string",
			record: multilingual.Record{},
			field:  "title",
			lang:   language.RU,
			want:   "",
		},
		{
			name:   "preferred language hit",
			record: multilingual.Record{"title": "Default", "title_en": "Hello", "title_kg": "Salam"},
			field:  "title",
			lang:   language.EN,
			want:   "Hello",
		},
		{
			name:   "falls back to bare key",
			record: multilingual.Record{"title": "Default"},
			field:  "title",
			lang:   language.EN,
			want:   "Default",
		},
		{
			name:   "falls through chain to kg",
			record: multilingual.Record{"title_kg": "Salam"},
			field:  "title",
			lang:   language.EN,
			want:   "Salam",
		},
		{
			name:   "chain prefers ru over en",
			record: multilingual.Record{"title_ru": "Привет", "title_en": "Hello"},
			field:  "title",
			lang:   language.KG,
			want:   "Привет",
		},
		{
			name:   "chain prefers en over kg",
			record: multilingual.Record{"title_en": "Hello", "title_kg": "Salam"},
			field:  "title",
			lang:   language.RU,
			want:   "Hello",
		},
		{
			name:   "bare key wins over other languages",
			record: multilingual.Record{"title": "Default", "title_ru": "Привет"},
			field:  "title",
			lang:   language.EN,
			want:   "Default",
		},
		{
			name:   "empty preferred value is skipped",
			record: multilingual.Record{"title_en": "", "title": "Default"},
			field:  "title",
			lang:   language.EN,
			want:   "Default",
		},
		{
			name:   "unrecognized language behaves like ru",
			record: multilingual.Record{"title_ru": "X"},
			field:  "title",
			lang:   language.Code("fr"),
			want:   "X",
		},
		{
			name:     "nothing resolves returns fallback",
			record:   multilingual.Record{"title_en": "", "other": "x"},
			field:    "title",
			lang:     language.EN,
			fallback: []string{"none"},
			want:     "none",
		},
		{
			name:   "non-string values never resolve",
			record: multilingual.Record{"title": 42, "title_en": nil, "title_kg": true},
			field:  "title",
			lang:   language.EN,
			want:   "",
		},
		{
			name:   "string pointers resolve",
			record: multilingual.Record{"title_en": strPtr("Hello")},
			field:  "title",
			lang:   language.EN,
			want:   "Hello",
		},
		{
			name:   "nil string pointer is absent",
			record: multilingual.Record{"title_en": (*string)(nil), "title": "Default"},
			field:  "title",
			lang:   language.EN,
			want:   "Default",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := multilingual.ResolveField(tc.record, tc.field, tc.lang, tc.fallback...)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveField_Scenario(t *testing.T) {
	record := multilingual.Record{"name": "Клиника", "name_en": "Clinic", "name_kg": "Клиника KG"}

	assert.Equal(t, "Клиника", multilingual.ResolveField(record, "name", language.RU))
	assert.Equal(t, "Clinic", multilingual.ResolveField(record, "name", language.EN))
	assert.Equal(t, "Клиника KG", multilingual.ResolveField(record, "name", language.KG))
	assert.Equal(t, "Клиника", multilingual.ResolveField(record, "name", language.Code("de")))
}

func TestResolveField_Deterministic(t *testing.T) {
	record := multilingual.Record{"title_kg": "Salam", "title_en": "Hello"}
	for _, lang := range []language.Code{language.RU, language.KG, language.EN, "xx"} {
		first := multilingual.ResolveField(record, "title", lang)
		for range 10 {
			assert.Equal(t, first, multilingual.ResolveField(record, "title", lang))
		}
	}
}

func TestResolveField_ConcurrentUse(t *testing.T) {
	record := multilingual.Record{"title": "Default", "title_en": "Hello"}
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			lang := language.Supported()[i%3]
			_ = multilingual.ResolveField(record, "title", lang)
			_ = multilingual.AdaptRecord(record, []string{"title"}, lang)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, multilingual.Record{"title": "Default", "title_en": "Hello"}, record)
}

// legacyResolve is the narrow variant that used to coexist with the full
// chain: preferred suffix, then the bare key, nothing else.
func legacyResolve(r multilingual.Record, field string, lang language.Code) string {
	if v := r.String(field + lang.Suffix()); v != "" {
		return v
	}
	return r.String(field)
}

func TestResolveField_WiderThanLegacyChain(t *testing.T) {
	records := []multilingual.Record{
		{"title_kg": "Salam"},
		{"title_ru": "Привет"},
		{"title_en": "Hello"},
		{"title": "Default", "title_en": "Hello"},
		{},
	}
	for _, r := range records {
		for _, lang := range language.Supported() {
			legacy := legacyResolve(r, "title", lang)
			got := multilingual.ResolveField(r, "title", lang)
			if legacy != "" {
				assert.Equal(t, legacy, got, "record %v lang %s", r, lang)
			}
		}
	}

	// The only divergence: a miss on both preferred and bare key.
	r := multilingual.Record{"title_kg": "Salam"}
	assert.Equal(t, "", legacyResolve(r, "title", language.EN))
	assert.Equal(t, "Salam", multilingual.ResolveField(r, "title", language.EN))
}

func TestResolveArray(t *testing.T) {
	records := []multilingual.Record{
		{"title_en": "one"},
		nil,
		{"title": "two"},
		{"title_kg": "three"},
	}
	got := multilingual.ResolveArray(records, "title", language.EN)
	assert.Equal(t, []string{"one", "", "two", "three"}, got)

	assert.Empty(t, multilingual.ResolveArray(nil, "title", language.EN))
	assert.NotNil(t, multilingual.ResolveArray(nil, "title", language.EN))
}

func TestAdaptRecord(t *testing.T) {
	record := multilingual.Record{
		"id":       7,
		"title":    "Новости",
		"title_en": "News",
		"body_kg":  "Жаңылыктар",
		"views":    100,
	}
	before := maps.Clone(record)

	got := multilingual.AdaptRecord(record, []string{"title", "body", "missing"}, language.EN)

	assert.Equal(t, before, record, "input must not change")
	assert.Equal(t, "News", got["title"])
	assert.Equal(t, "Жаңылыктар", got["body"])
	assert.Equal(t, "News", got["title_en"])
	assert.Equal(t, "Жаңылыктар", got["body_kg"])
	assert.Equal(t, 7, got["id"])
	assert.Equal(t, 100, got["views"])
	_, ok := got["missing"]
	assert.False(t, ok, "unresolved absent field stays absent")
}

func TestAdaptRecord_KeepsUnresolvableValue(t *testing.T) {
	record := multilingual.Record{"count": 3}
	got := multilingual.AdaptRecord(record, []string{"count"}, language.RU)
	assert.Equal(t, 3, got["count"])
}

func TestAdaptRecord_Nil(t *testing.T) {
	assert.Nil(t, multilingual.AdaptRecord(nil, []string{"title"}, language.RU))
}

func TestAdaptArray(t *testing.T) {
	records := make([]multilingual.Record, 5)
	for i := range records {
		records[i] = multilingual.Record{"name_kg": fmt.Sprintf("аты %d", i), "name": fmt.Sprintf("имя %d", i)}
	}

	got := multilingual.AdaptArray(records, []string{"name"}, language.KG)
	require.Len(t, got, len(records))
	for i := range got {
		assert.Equal(t, fmt.Sprintf("аты %d", i), got[i]["name"])
		assert.Equal(t, fmt.Sprintf("имя %d", i), records[i]["name"])
	}

	assert.Empty(t, multilingual.AdaptArray(nil, []string{"name"}, language.KG))
}

func TestText(t *testing.T) {
	txt := multilingual.Text{KG: "Salam"}
	assert.Equal(t, "Salam", txt.Resolve(language.EN, "x"))
	assert.True(t, txt.HasSuffixed())
	assert.False(t, txt.IsZero())

	assert.True(t, multilingual.Text{}.IsZero())
	assert.Equal(t, "x", multilingual.Text{}.Resolve(language.EN, "x"))
	assert.False(t, multilingual.Text{Default: "d"}.HasSuffixed())

	got := multilingual.TextOf(multilingual.Record{"a": "d", "a_ru": "r", "a_kg": "k", "a_en": "e"}, "a")
	assert.Equal(t, multilingual.Text{Default: "d", RU: "r", KG: "k", EN: "e"}, got)
	assert.True(t, multilingual.TextOf(nil, "a").IsZero())
}

func strPtr(s string) *string { return &s }
