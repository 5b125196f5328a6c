package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/satlantas/laka-report-api/api/handlers"
	"github.com/satlantas/laka-report-api/databases/mocks"
	"github.com/satlantas/laka-report-api/models"
)

func TestSuggestion_SuggestHandlerShortTextSkipsService(t *testing.T) {
	body := `{"text": "pendek", "generation": 7}`
	req, err := http.NewRequest("POST", "/api/v1/suggestions", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	// no SuggestURL configured: a short text must never reach the service
	u := handlers.Suggestion{HDB: &mocks.SuggestionHistoryDatabase{}}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.SuggestHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got struct {
		Suggestions []models.ReportSuggestion `json:"suggestions"`
		Generation  int64                     `json:"generation"`
	}
	err = json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Empty(t, got.Suggestions)
	assert.Equal(t, int64(7), got.Generation)
}

func TestSuggestion_SuggestHandlerEchoesGeneration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.SuggestionResponse{
			Suggestions: []models.ReportSuggestion{
				{
					Similarity:               0.91,
					OriginalText:             "pengendara motor melaju kencang dari arah barat",
					SuggestedJenisKecelakaan: "Tabrak Depan-Depan",
					SuggestedPenyebabUtama:   "Kecepatan Tinggi",
				},
			},
		})
	}))
	defer srv.Close()

	body := `{"text": "pengendara sepeda motor melaju dari arah barat dengan kecepatan tinggi", "generation": 42}`
	req, err := http.NewRequest("POST", "/api/v1/suggestions", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	u := handlers.Suggestion{
		HDB:        &mocks.SuggestionHistoryDatabase{},
		SuggestURL: srv.URL,
		Client:     srv.Client(),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.SuggestHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got struct {
		Suggestions []models.ReportSuggestion `json:"suggestions"`
		Generation  int64                     `json:"generation"`
	}
	err = json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Len(t, got.Suggestions, 1)
	assert.Equal(t, "Tabrak Depan-Depan", got.Suggestions[0].SuggestedJenisKecelakaan)
	assert.Equal(t, int64(42), got.Generation)
}

func TestSuggestion_SuggestHandlerServiceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	body := `{"text": "pengendara sepeda motor melaju dari arah barat dengan kecepatan tinggi"}`
	req, err := http.NewRequest("POST", "/api/v1/suggestions", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	u := handlers.Suggestion{
		HDB:        &mocks.SuggestionHistoryDatabase{},
		SuggestURL: srv.URL,
		Client:     srv.Client(),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.SuggestHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestSuggestion_SuggestionHistoryHandlerMissingFieldIsEmpty(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/suggestions/history/uraianPraKejadianManusia", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"field_key": "uraianPraKejadianManusia"})

	hDB := &mocks.SuggestionHistoryDatabase{}
	hDB.On("FindOne", mock.Anything, "uraianPraKejadianManusia").Return(nil, assert.AnError)

	u := handlers.Suggestion{HDB: hDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.SuggestionHistoryHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.FieldSuggestionHistory
	err = json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Equal(t, "uraianPraKejadianManusia", got.FieldKey)
	assert.Empty(t, got.Values)
}

func TestSuggestion_SaveSuggestionHandlerKeepsMostRecentFirst(t *testing.T) {
	body := `{"value": "Jalan licin karena hujan"}`
	req, err := http.NewRequest("POST", "/api/v1/suggestions/history/uraianPraKejadianManusia", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"field_key": "uraianPraKejadianManusia"})

	hDB := &mocks.SuggestionHistoryDatabase{}
	hDB.On("FindOne", mock.Anything, "uraianPraKejadianManusia").Return(&models.FieldSuggestionHistory{
		FieldKey: "uraianPraKejadianManusia",
		Values:   []string{"Pengemudi mengantuk", "Jalan licin karena hujan", "Rem blong"},
	}, nil)
	hDB.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	u := handlers.Suggestion{HDB: hDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.SaveSuggestionHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.FieldSuggestionHistory
	err = json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	// moved to the front, not duplicated
	assert.Equal(t, []string{"Jalan licin karena hujan", "Pengemudi mengantuk", "Rem blong"}, got.Values)
}

func TestSuggestion_SaveSuggestionHandlerRejectsBlankValue(t *testing.T) {
	body := `{"value": "   "}`
	req, err := http.NewRequest("POST", "/api/v1/suggestions/history/uraianPraKejadianManusia", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"field_key": "uraianPraKejadianManusia"})

	hDB := &mocks.SuggestionHistoryDatabase{}

	u := handlers.Suggestion{HDB: hDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.SaveSuggestionHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	hDB.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSuggestion_SaveSuggestionHandlerCapsHistory(t *testing.T) {
	stored := &models.FieldSuggestionHistory{FieldKey: "alamatTkp"}
	for i := 0; i < models.MaxSuggestionsPerField; i++ {
		stored.Values = append(stored.Values, string(rune('a'+i)))
	}

	body := `{"value": "Jalan Raya Ciawi KM 4"}`
	req, err := http.NewRequest("POST", "/api/v1/suggestions/history/alamatTkp", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"field_key": "alamatTkp"})

	hDB := &mocks.SuggestionHistoryDatabase{}
	hDB.On("FindOne", mock.Anything, "alamatTkp").Return(stored, nil)
	hDB.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	u := handlers.Suggestion{HDB: hDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.SaveSuggestionHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.FieldSuggestionHistory
	err = json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Len(t, got.Values, models.MaxSuggestionsPerField)
	assert.Equal(t, "Jalan Raya Ciawi KM 4", got.Values[0])
}
