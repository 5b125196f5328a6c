package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/satlantas/laka-report-api/api"
	"github.com/satlantas/laka-report-api/config"
	"github.com/satlantas/laka-report-api/databases"
	"github.com/satlantas/laka-report-api/derive"
	"github.com/satlantas/laka-report-api/models"
)

var (
	// Page denotes the starting Page for pagination results
	Page = 0
)

// derivedFields are maintained server side and stripped from every
// incoming patch.
var derivedFields = []string{
	"_id", "id", "lastModified",
	"kerugianMateriilTerbilang",
	"korbanMeninggalDunia", "korbanLukaBerat", "korbanLukaRingan",
	"kronologiKejadianUtama",
}

// Report exported for testing purposes
type Report struct {
	RDB databases.ReportDatabase
}

// ReportsHandler returns all accident reports, most recently modified first
func (re Report) ReportsHandler(w http.ResponseWriter, r *http.Request) {
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		Limit = 10
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit, err))
	}
	limit64 := int64(Limit)
	Page = getPage(Page, r)
	skip64 := int64(Page * Limit)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	sort := bson.D{{Key: "lastModified", Value: -1}}
	dbResp, err := re.RDB.Find(ctx, bson.D{}, &options.FindOptions{Limit: &limit64, Skip: &skip64, Sort: sort})
	if err != nil {
		config.ErrorStatus("failed to get reports", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.AccidentReport{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ReportByIDHandler returns a report by ID
func (re Report) ReportByIDHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]

	zap.S().Debugf("report_id: %v", reportID)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	dbResp, err := re.RDB.FindOne(ctx, bson.M{"_id": reportID})
	if err != nil {
		config.ErrorStatus("failed to get report by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateReportHandler creates a new accident report with the creation
// defaults, overlaid with any fields supplied in the body
func (re Report) CreateReportHandler(w http.ResponseWriter, r *http.Request) {
	report := derive.NewReport(uuid.New().String(), time.Now())

	if r.Body != nil {
		// empty bodies are fine, the defaults stand
		_ = json.NewDecoder(r.Body).Decode(&report)
	}
	report.ID = uuid.New().String()
	derive.Apply(&report)
	report.LastModified = time.Now().UnixMilli()

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	if err := re.RDB.InsertOne(ctx, report); err != nil {
		config.ErrorStatus("failed to insert report", http.StatusInternalServerError, w, err)
		return
	}

	BroadcastReportUpdate("report_created", report)

	b, err := json.Marshal(report)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// UpdateReportHandler applies a partial update to a report, reruns the
// derivation rules and returns the updated document. Derived fields in
// the patch are ignored. Editing the road/environment narrative
// directly flips it to manual mode unless the patch sets the mode
// itself.
func (re Report) UpdateReportHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]

	var patch map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	for _, field := range derivedFields {
		delete(patch, field)
	}
	if _, ok := patch["uraianPraKejadianJalanLingkungan"]; ok {
		if _, modeSet := patch["jalanLingkunganMode"]; !modeSet {
			patch["jalanLingkunganMode"] = models.FieldModeManual
		}
	}
	if len(patch) == 0 {
		config.ErrorStatus("empty patch", http.StatusBadRequest, w, fmt.Errorf("no updatable fields in body"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	if _, err := re.RDB.FindOne(ctx, bson.M{"_id": reportID}); err != nil {
		config.ErrorStatus("failed to get report by ID", http.StatusNotFound, w, err)
		return
	}

	report, err := re.applyPatchAndDerive(r.Context(), reportID, patch)
	if err != nil {
		config.ErrorStatus("failed to update report", http.StatusInternalServerError, w, err)
		return
	}

	BroadcastReportUpdate("report_updated", *report)

	b, err := json.Marshal(report)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteReportHandler deletes a report by ID
func (re Report) DeleteReportHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	deleted, err := re.RDB.DeleteOne(ctx, bson.M{"_id": reportID})
	if err != nil {
		config.ErrorStatus("failed to delete report", http.StatusInternalServerError, w, err)
		return
	}
	if deleted == 0 {
		config.ErrorStatus("failed to get report by ID", http.StatusNotFound, w, fmt.Errorf("no report with id %s", reportID))
		return
	}

	BroadcastReportUpdate("report_deleted", models.AccidentReport{ID: reportID})

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"deleted": "%s"}`, reportID)))
}

// applyPatchAndDerive overlays the patch onto the stored document,
// reruns the derivation rules and persists the result with a fresh
// lastModified stamp.
func (re Report) applyPatchAndDerive(ctx context.Context, reportID string, patch map[string]interface{}) (*models.AccidentReport, error) {
	return re.mutateReport(ctx, reportID, func(report *models.AccidentReport) error {
		pb, err := json.Marshal(patch)
		if err != nil {
			return err
		}
		return json.Unmarshal(pb, report)
	})
}

// mutateReport loads a report, runs fn against it, reruns the
// derivation rules and saves. Subresource handlers share this path so
// every mutation keeps the derived fields consistent.
func (re Report) mutateReport(ctx context.Context, reportID string, fn func(*models.AccidentReport) error) (*models.AccidentReport, error) {
	ctx, cancel := api.WithQueryTimeout(ctx)
	defer cancel()
	report, err := re.RDB.FindOne(ctx, bson.M{"_id": reportID})
	if err != nil {
		return nil, err
	}
	if err := fn(report); err != nil {
		return nil, err
	}
	derive.Apply(report)
	report.LastModified = time.Now().UnixMilli()
	if err := re.RDB.ReplaceOne(ctx, bson.M{"_id": reportID}, *report); err != nil {
		return nil, err
	}
	return report, nil
}

func getPage(Page int, r *http.Request) int {
	if pageParam := r.URL.Query().Get("page"); pageParam != "" {
		if parsed, err := strconv.Atoi(pageParam); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return 0
}
