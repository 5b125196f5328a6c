package models

// ReportSuggestion is one classification suggestion returned by the
// external similarity service for a pre-incident narrative.
type ReportSuggestion struct {
	Similarity               float64 `json:"similarity"`
	OriginalText             string  `json:"original_text"`
	SuggestedJenisKecelakaan string  `json:"suggested_jenis_kecelakaan"`
	SuggestedPenyebabUtama   string  `json:"suggested_penyebab_utama"`
}

// SuggestionResponse is the wire shape of the external suggestion service.
type SuggestionResponse struct {
	Suggestions []ReportSuggestion `json:"suggestions"`
}

// FieldSuggestionHistory holds the structure for one per-field entry in
// the fieldSuggestions collection: the values most recently saved for a
// form field, most recent first, capped at MaxSuggestionsPerField.
type FieldSuggestionHistory struct {
	FieldKey string   `json:"fieldKey" bson:"_id"`
	Values   []string `json:"values" bson:"values"`
}

// MaxSuggestionsPerField caps the per-field suggestion history.
const MaxSuggestionsPerField = 10
