package model

// Translation mirrors the translations table.  (language_code, key) is
// unique and writes are upserts.
type Translation struct {
	ID           uint64 `json:"id"`           // translations.id
	LanguageCode string `json:"languageCode"` // translations.language_code (es, en, qu...)
	Key          string `json:"key"`          // translations.key
	Value        string `json:"value"`        // translations.value
}
