package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"github.com/satlantas/laka-report-api/api"
	"github.com/satlantas/laka-report-api/config"
	"github.com/satlantas/laka-report-api/databases"
	"github.com/satlantas/laka-report-api/models"
)

// minSuggestionRunes is the shortest narrative worth classifying.
const minSuggestionRunes = 10

// Suggestion proxies the external classification service and stores the
// per-field history of accepted values
type Suggestion struct {
	HDB        databases.SuggestionHistoryDatabase
	SuggestURL string
	Client     *http.Client
}

type suggestionRequest struct {
	Text string `json:"text"`
	// Generation is echoed back unchanged so clients can drop
	// responses that arrive after a newer request was sent.
	Generation int64 `json:"generation"`
}

type suggestionReply struct {
	Suggestions []models.ReportSuggestion `json:"suggestions"`
	Generation  int64                     `json:"generation"`
}

// SuggestHandler returns classification suggestions for a pre-incident
// narrative. Texts below the minimum length get an empty suggestion
// list rather than a round trip to the classifier.
func (s Suggestion) SuggestHandler(w http.ResponseWriter, r *http.Request) {
	var req suggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	reply := suggestionReply{Suggestions: []models.ReportSuggestion{}, Generation: req.Generation}
	text := strings.TrimSpace(req.Text)
	if utf8.RuneCountInString(text) >= minSuggestionRunes {
		suggestions, err := s.fetchSuggestions(r.Context(), text)
		if err != nil {
			config.ErrorStatus("suggestion service unavailable", http.StatusBadGateway, w, err)
			return
		}
		reply.Suggestions = suggestions
	}

	b, err := json.Marshal(reply)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func (s Suggestion) fetchSuggestions(ctx context.Context, text string) ([]models.ReportSuggestion, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.SuggestURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggestion service returned status %d", resp.StatusCode)
	}

	var parsed models.SuggestionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	return parsed.Suggestions, nil
}

// SuggestionHistoryHandler returns the stored values for one field key
func (s Suggestion) SuggestionHistoryHandler(w http.ResponseWriter, r *http.Request) {
	fieldKey := mux.Vars(r)["field_key"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	history, err := s.HDB.FindOne(ctx, fieldKey)
	if err != nil {
		// a field with no history yet is not an error
		history = &models.FieldSuggestionHistory{FieldKey: fieldKey, Values: []string{}}
	}
	if history.Values == nil {
		history.Values = []string{}
	}

	b, err := json.Marshal(history)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// SaveSuggestionHandler records an accepted value for a field key. The
// list stays most recently used first, deduplicated, capped at
// models.MaxSuggestionsPerField.
func (s Suggestion) SaveSuggestionHandler(w http.ResponseWriter, r *http.Request) {
	fieldKey := mux.Vars(r)["field_key"]

	var body struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	value := strings.TrimSpace(body.Value)
	if value == "" {
		config.ErrorStatus("empty value", http.StatusBadRequest, w, fmt.Errorf("value must not be blank"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	history, err := s.HDB.FindOne(ctx, fieldKey)
	if err != nil {
		history = &models.FieldSuggestionHistory{FieldKey: fieldKey}
	}
	history.Values = pushRecent(history.Values, value, models.MaxSuggestionsPerField)

	if err := s.HDB.Upsert(ctx, *history); err != nil {
		config.ErrorStatus("failed to save suggestion history", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(history)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// pushRecent prepends value, drops duplicates and caps the list length
func pushRecent(values []string, value string, max int) []string {
	out := []string{value}
	for _, v := range values {
		if v == value {
			continue
		}
		out = append(out, v)
		if len(out) == max {
			break
		}
	}
	return out
}
