package application_test

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medsite/internal/application"
	"medsite/internal/domain/entities"
	"medsite/internal/domain/language"
	"medsite/pkg/multilingual"
)

func newsRecord() multilingual.Record {
	return multilingual.Record{
		"id":         float64(1),
		"title":      "Новость",
		"title_en":   "News",
		"summary_kg": "Кыскача",
		"content":    "Текст",
		"author":     "Редакция",
		"category": map[string]any{
			"id":      float64(3),
			"name":    "Наука",
			"name_en": "Science",
		},
	}
}

func TestLocalizeNews(t *testing.T) {
	in := newsRecord()
	category := maps.Clone(in["category"].(map[string]any))

	got := application.LocalizeNews(in, language.EN)

	assert.Equal(t, "News", got["title"])
	assert.Equal(t, "Кыскача", got["summary"])
	assert.Equal(t, "Текст", got["content"])
	assert.Equal(t, "Редакция", got["author"])
	require.IsType(t, multilingual.Record{}, got["category"])
	assert.Equal(t, "Science", got["category"].(multilingual.Record)["name"])
	assert.Equal(t, float64(3), got["category"].(multilingual.Record)["id"])

	assert.Equal(t, "Новость", in["title"])
	assert.Equal(t, category, in["category"], "nested category must not change")
}

func TestLocalizeNews_StringCategory(t *testing.T) {
	got := application.LocalizeNews(multilingual.Record{"title": "x", "category": "Общее"}, language.KG)
	assert.Equal(t, multilingual.Record{"name": "Общее"}, got["category"])
}

func TestLocalizeNews_Nil(t *testing.T) {
	assert.Nil(t, application.LocalizeNews(nil, language.RU))
	assert.Nil(t, application.LocalizeEvent(nil, language.RU))
}

func TestLocalizeEvent(t *testing.T) {
	in := multilingual.Record{
		"location":    "Актовый зал",
		"location_kg": "Жыйындар залы",
		"news":        map[string]any(newsRecord()),
	}
	got := application.LocalizeEvent(in, language.KG)

	assert.Equal(t, "Жыйындар залы", got["location"])
	news, ok := got["news"].(multilingual.Record)
	require.True(t, ok)
	assert.Equal(t, "Новость", news["title"])
	assert.Equal(t, "Наука", news["category"].(multilingual.Record)["name"])

	got = application.LocalizeEvent(multilingual.Record{"location": "Зал"}, language.EN)
	assert.Nil(t, got["news"])
}

func TestLocalizeItems(t *testing.T) {
	records := []multilingual.Record{
		{"name": "Партнёр", "name_en": "Partner", "description_kg": "Сүрөттөмө"},
		{"title_ru": "Заголовок"},
	}

	got := application.LocalizeItems(records, entities.KindGeneric, language.EN)
	require.Len(t, got, 2)
	assert.Equal(t, "Partner", got[0]["name"])
	assert.Equal(t, "Сүрөттөмө", got[0]["description"])
	assert.Equal(t, "Заголовок", got[1]["title"])

	news := application.LocalizeItems([]multilingual.Record{newsRecord()}, entities.KindNews, language.EN)
	assert.Equal(t, "News", news[0]["title"])

	assert.Empty(t, application.LocalizeItems(nil, entities.KindEvents, language.RU))
}
