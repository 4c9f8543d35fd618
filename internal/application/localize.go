package application

import (
	"maps"

	"medsite/internal/domain/entities"
	"medsite/internal/domain/language"
	"medsite/pkg/multilingual"
)

var (
	newsFields    = []string{"title", "summary", "content", "author"}
	eventFields   = []string{"location"}
	genericFields = []string{"title", "description", "name"}
)

// LocalizeNews flattens a news record for lang and replaces its category
// with a copy carrying the localized name.
func LocalizeNews(news multilingual.Record, lang language.Code) multilingual.Record {
	if news == nil {
		return nil
	}
	out := multilingual.AdaptRecord(news, newsFields, lang)
	category := multilingual.Record{}
	switch c := news["category"].(type) {
	case map[string]any:
		maps.Copy(category, c)
	case multilingual.Record:
		maps.Copy(category, c)
	}
	category["name"] = entities.CategoryName(news["category"], lang)
	out["category"] = category
	return out
}

// LocalizeEvent flattens an event record and its nested news, if any.
func LocalizeEvent(event multilingual.Record, lang language.Code) multilingual.Record {
	if event == nil {
		return nil
	}
	out := multilingual.AdaptRecord(event, eventFields, lang)
	if news := asRecord(event["news"]); news != nil {
		out["news"] = LocalizeNews(news, lang)
	} else {
		out["news"] = nil
	}
	return out
}

// LocalizeItems localizes records according to kind.
func LocalizeItems(records []multilingual.Record, kind entities.Kind, lang language.Code) []multilingual.Record {
	out := make([]multilingual.Record, len(records))
	for i, r := range records {
		switch kind {
		case entities.KindNews:
			out[i] = LocalizeNews(r, lang)
		case entities.KindEvents:
			out[i] = LocalizeEvent(r, lang)
		default:
			out[i] = multilingual.AdaptRecord(r, genericFields, lang)
		}
	}
	return out
}

func asRecord(v any) multilingual.Record {
	switch r := v.(type) {
	case map[string]any:
		return multilingual.Record(r)
	case multilingual.Record:
		return r
	}
	return nil
}
