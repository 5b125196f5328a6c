package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/satlantas/laka-report-api/api"
	"github.com/satlantas/laka-report-api/config"
	"github.com/satlantas/laka-report-api/databases"
	"github.com/satlantas/laka-report-api/format"
	"github.com/satlantas/laka-report-api/models"
	"github.com/satlantas/laka-report-api/render"
	templates "github.com/satlantas/laka-report-api/templates/html"
)

// Export serves the outgoing document forms of a report
type Export struct {
	RDB         databases.ReportDatabase
	SendgridKey string
	FromEmail   string
}

// ExportTextHandler returns the report as a downloadable plain-text file
func (e Export) ExportTextHandler(w http.ResponseWriter, r *http.Request) {
	report, ok := e.loadReport(w, r)
	if !ok {
		return
	}

	text := render.Text(report, time.Now())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="Laporan_%s.txt"`, exportStem(report)))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}

// ExportJSONHandler returns the raw report document as a download
func (e Export) ExportJSONHandler(w http.ResponseWriter, r *http.Request) {
	report, ok := e.loadReport(w, r)
	if !ok {
		return
	}

	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="REF_DATA_%s.json"`, exportStem(report)))
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ExportPDFHandler returns the report rendered as a PDF letter
func (e Export) ExportPDFHandler(w http.ResponseWriter, r *http.Request) {
	report, ok := e.loadReport(w, r)
	if !ok {
		return
	}

	pdf, err := render.PDF(report, time.Now())
	if err != nil {
		config.ErrorStatus("failed to render pdf", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="LP_DataInti_%s.pdf"`, exportStem(report)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// PrintHandler returns a printable HTML page of the report
func (e Export) PrintHandler(w http.ResponseWriter, r *http.Request) {
	report, ok := e.loadReport(w, r)
	if !ok {
		return
	}

	page := templates.RenderPrintableReport("Laporan Kecelakaan Lalu Lintas", render.Text(report, time.Now()))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(page))
}

// EmailReportHandler sends the report text and PDF to the given address
func (e Export) EmailReportHandler(w http.ResponseWriter, r *http.Request) {
	report, ok := e.loadReport(w, r)
	if !ok {
		return
	}

	var body struct {
		To   string `json:"to"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if !strings.Contains(body.To, "@") {
		config.ErrorStatus("invalid recipient", http.StatusBadRequest, w, fmt.Errorf("to must be an email address"))
		return
	}

	if err := e.sendReportEmail(report, body.To, body.Name); err != nil {
		config.ErrorStatus("failed to send email", http.StatusBadGateway, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"sent": "%s"}`, body.To)))
}

func (e Export) sendReportEmail(report *models.AccidentReport, toEmail, toName string) error {
	now := time.Now()
	subject := "Laporan Kecelakaan Lalu Lintas"
	if report.NomorLaporanPolisi != "" {
		subject = fmt.Sprintf("Laporan Kecelakaan Lalu Lintas %s", report.NomorLaporanPolisi)
	}

	plainText := render.Text(report, now)
	htmlContent := templates.RenderReportEmail(subject, plainText)

	from := mail.NewEmail("Satlantas Polres Tasikmalaya", e.FromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)

	if pdf, err := render.PDF(report, now); err == nil {
		attachment := mail.NewAttachment()
		attachment.SetContent(base64.StdEncoding.EncodeToString(pdf))
		attachment.SetType("application/pdf")
		attachment.SetFilename("LP_DataInti_" + exportStem(report) + ".pdf")
		attachment.SetDisposition("attachment")
		message.AddAttachment(attachment)
	} else {
		zap.S().Warnw("failed to render pdf attachment", "error", err)
	}

	client := sendgrid.NewSendClient(e.SendgridKey)
	response, err := client.Send(message)
	if err != nil {
		zap.S().Errorw("failed to send email", "error", err, "to", toEmail)
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body, "to", toEmail)
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}
	zap.S().Infow("report email sent", "to", toEmail, "subject", subject)
	return nil
}

func (e Export) loadReport(w http.ResponseWriter, r *http.Request) (*models.AccidentReport, bool) {
	reportID := mux.Vars(r)["report_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	report, err := e.RDB.FindOne(ctx, bson.M{"_id": reportID})
	if err != nil {
		config.ErrorStatus("failed to get report by ID", http.StatusNotFound, w, err)
		return nil, false
	}
	return report, true
}

// exportStem builds the {serial}_{date} filename stem from the LP
// serial and the incident date, with N_A and UNKNOWN_DATE fallbacks.
func exportStem(report *models.AccidentReport) string {
	serial := "N_A"
	parts := strings.Split(report.NomorLaporanPolisi, "/")
	if len(parts) > 2 && parts[0] == "LP" && parts[1] == "B" {
		if s := strings.TrimSpace(parts[2]); s != "" {
			serial = strings.ReplaceAll(s, " ", "_")
		}
	}

	date := "UNKNOWN_DATE"
	if report.WaktuKejadian != "" {
		if t, err := format.ParseWaktu(report.WaktuKejadian); err == nil {
			date = t.Format("2006-01-02")
		} else {
			date = "INVALID_DATE"
		}
	}

	return fmt.Sprintf("%s_%s", serial, date)
}
