package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/satlantas/laka-report-api/api"
	"github.com/satlantas/laka-report-api/api/scheduler"
	"github.com/satlantas/laka-report-api/config"
	"github.com/satlantas/laka-report-api/databases"
	"github.com/satlantas/laka-report-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Scheduler *scheduler.Scheduler
	dbHelper  databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewUserDatabase(a.dbHelper)}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	report := Report{RDB: databases.NewReportDatabase(a.dbHelper)}
	export := Export{
		RDB:         databases.NewReportDatabase(a.dbHelper),
		SendgridKey: a.Config.SendgridAPIKey,
		FromEmail:   "laporan@satlantas-tasikmalaya.id",
	}
	suggestion := Suggestion{
		HDB:        databases.NewSuggestionHistoryDatabase(a.dbHelper),
		SuggestURL: a.Config.SuggestAPIURL,
	}
	ocr := Ocr{OcrURL: a.Config.OcrAPIURL}
	if cldURL := os.Getenv("CLOUDINARY_URL"); cldURL != "" {
		cld, err := cloudinary.NewFromURL(cldURL)
		if err != nil {
			zap.S().Warnw("cloudinary disabled", "error", err)
		} else {
			ocr.Cloudinary = cld
		}
	}
	renderDoc := RenderDoc{RDB: databases.NewReportDatabase(a.dbHelper), RenderURL: a.Config.RenderAPIURL}
	auth := Auth{UDB: databases.NewUserDatabase(a.dbHelper), JWTSecret: a.Config.JWTSecret}
	cloudinaryHandler := CloudinaryHandler{
		UploadPreset: a.Config.CloudinaryUploadPreset,
		APISecret:    a.Config.CloudinaryAPISecret,
	}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)
	r.HandleFunc("/metrics", metricsHandler)

	r.HandleFunc("/ws/reports", HandleReportsWebSocket)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")
	apiCreate.Handle("/auth/login", http.HandlerFunc(auth.LoginHandler)).Methods("POST")

	apiCreate.Handle("/reports", api.Middleware(http.HandlerFunc(report.ReportsHandler))).Methods("GET")
	apiCreate.Handle("/report", api.Middleware(http.HandlerFunc(report.CreateReportHandler))).Methods("POST")
	apiCreate.Handle("/report/{report_id}", api.Middleware(http.HandlerFunc(report.ReportByIDHandler))).Methods("GET")
	apiCreate.Handle("/report/{report_id}", api.Middleware(http.HandlerFunc(report.UpdateReportHandler))).Methods("PATCH")
	apiCreate.Handle("/report/{report_id}", api.Middleware(http.HandlerFunc(report.DeleteReportHandler))).Methods("DELETE")

	apiCreate.Handle("/report/{report_id}/entities", api.Middleware(http.HandlerFunc(report.AddEntityHandler))).Methods("POST")
	apiCreate.Handle("/report/{report_id}/entities/{entity_id}", api.Middleware(http.HandlerFunc(report.UpdateEntityHandler))).Methods("PUT")
	apiCreate.Handle("/report/{report_id}/entities/{entity_id}", api.Middleware(http.HandlerFunc(report.DeleteEntityHandler))).Methods("DELETE")

	apiCreate.Handle("/report/{report_id}/parties", api.Middleware(http.HandlerFunc(report.AddPartyHandler))).Methods("POST")
	apiCreate.Handle("/report/{report_id}/parties/{party_id}", api.Middleware(http.HandlerFunc(report.UpdatePartyHandler))).Methods("PUT")
	apiCreate.Handle("/report/{report_id}/parties/{party_id}", api.Middleware(http.HandlerFunc(report.DeletePartyHandler))).Methods("DELETE")

	apiCreate.Handle("/report/{report_id}/witnesses", api.Middleware(http.HandlerFunc(report.AddWitnessHandler))).Methods("POST")
	apiCreate.Handle("/report/{report_id}/witnesses/{witness_id}", api.Middleware(http.HandlerFunc(report.UpdateWitnessHandler))).Methods("PUT")
	apiCreate.Handle("/report/{report_id}/witnesses/{witness_id}", api.Middleware(http.HandlerFunc(report.DeleteWitnessHandler))).Methods("DELETE")

	apiCreate.Handle("/report/{report_id}/pelapor", api.Middleware(http.HandlerFunc(report.UpdatePelaporHandler))).Methods("PUT")

	apiCreate.Handle("/report/{report_id}/export/text", api.Middleware(http.HandlerFunc(export.ExportTextHandler))).Methods("GET")
	apiCreate.Handle("/report/{report_id}/export/json", api.Middleware(http.HandlerFunc(export.ExportJSONHandler))).Methods("GET")
	apiCreate.Handle("/report/{report_id}/export/pdf", api.Middleware(http.HandlerFunc(export.ExportPDFHandler))).Methods("GET")
	apiCreate.Handle("/report/{report_id}/print", api.Middleware(http.HandlerFunc(export.PrintHandler))).Methods("GET")
	apiCreate.Handle("/report/{report_id}/email", api.Middleware(http.HandlerFunc(export.EmailReportHandler))).Methods("POST")
	apiCreate.Handle("/report/{report_id}/render", api.Middleware(http.HandlerFunc(renderDoc.RenderDocumentHandler))).Methods("POST")

	apiCreate.Handle("/ocr", api.Middleware(http.HandlerFunc(ocr.ExtractDocumentHandler))).Methods("POST")
	apiCreate.Handle("/generate-signature", api.Middleware(http.HandlerFunc(cloudinaryHandler.GenerateSignature))).Methods("POST")

	apiCreate.Handle("/suggestions", api.Middleware(http.HandlerFunc(suggestion.SuggestHandler))).Methods("POST")
	apiCreate.Handle("/suggestions/history/{field_key}", api.Middleware(http.HandlerFunc(suggestion.SuggestionHistoryHandler))).Methods("GET")
	apiCreate.Handle("/suggestions/history/{field_key}", api.Middleware(http.HandlerFunc(suggestion.SaveSuggestionHandler))).Methods("POST")

	apiCreate.Handle("/officers", api.Middleware(http.HandlerFunc(OfficerRostersHandler))).Methods("GET")

	r.Use(api.MetricsMiddleware)
	r.Use(api.TimeoutMiddleware(60 * time.Second))

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("laka-report-api has connected to the database")

	a.Scheduler = scheduler.NewScheduler(
		databases.NewReportDatabase(a.dbHelper),
		databases.NewSuggestionHistoryDatabase(a.dbHelper),
	)
	a.Scheduler.Start()

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	b, err := json.Marshal(api.Metrics.Snapshot())
	if err != nil {
		config.ErrorStatus("failed to marshal metrics", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
