// Package scheduler runs the nightly maintenance jobs: a consistency
// sweep over all stored reports and a cleanup of the suggestion
// history collection.
package scheduler

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/satlantas/laka-report-api/databases"
	"github.com/satlantas/laka-report-api/derive"
	"github.com/satlantas/laka-report-api/format"
	"github.com/satlantas/laka-report-api/models"
)

// Scheduler handles periodic background jobs for report maintenance
type Scheduler struct {
	cron       *cron.Cron
	RDB        databases.ReportDatabase
	HDB        databases.SuggestionHistoryDatabase
	instanceID string
}

// NewScheduler creates a new scheduler instance
func NewScheduler(rDB databases.ReportDatabase, hDB databases.SuggestionHistoryDatabase) *Scheduler {
	// Generate a unique instance ID for this pod
	instanceID := os.Getenv("DYNO") // Heroku sets this to "web.1", "web.2", etc.
	if instanceID == "" {
		instanceID = fmt.Sprintf("instance-%d", time.Now().UnixNano())
	}

	return &Scheduler{
		cron:       cron.New(cron.WithLocation(format.Jakarta)),
		RDB:        rDB,
		HDB:        hDB,
		instanceID: instanceID,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Re-derive all reports daily at 3 AM WIB so documents written by
	// older builds pick up current derivation rules
	_, err := s.cron.AddFunc("0 3 * * *", s.sweepReports)
	if err != nil {
		zap.S().Errorw("failed to register report sweep job", "error", err)
	}

	// Trim suggestion histories daily at 4 AM WIB
	_, err = s.cron.AddFunc("0 4 * * *", s.trimSuggestionHistories)
	if err != nil {
		zap.S().Errorw("failed to register history trim job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("report maintenance scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("report maintenance scheduler stopped")
}

// sweepReports reruns the derivation rules over every stored report and
// persists the ones that changed
func (s *Scheduler) sweepReports() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	zap.S().Infow("running report consistency sweep", "instance", s.instanceID)

	reports, err := s.RDB.Find(ctx, bson.D{})
	if err != nil {
		zap.S().Errorw("failed to list reports for sweep", "error", err)
		return
	}

	updated := 0
	for i := range reports {
		changes := derive.Apply(&reports[i])
		if len(changes) == 0 {
			continue
		}
		reports[i].LastModified = time.Now().UnixMilli()
		if err := s.RDB.ReplaceOne(ctx, bson.M{"_id": reports[i].ID}, reports[i]); err != nil {
			zap.S().Errorw("failed to persist swept report", "reportId", reports[i].ID, "error", err)
			continue
		}
		updated++
	}

	zap.S().Infow("report consistency sweep finished",
		"scanned", len(reports),
		"updated", updated,
	)
}

// trimSuggestionHistories caps every stored history list and drops
// empty documents
func (s *Scheduler) trimSuggestionHistories() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	zap.S().Infow("running suggestion history trim", "instance", s.instanceID)

	histories, err := s.HDB.Find(ctx, bson.D{})
	if err != nil {
		zap.S().Errorw("failed to list suggestion histories", "error", err)
		return
	}

	trimmed := 0
	for _, h := range histories {
		if len(h.Values) <= models.MaxSuggestionsPerField {
			continue
		}
		h.Values = h.Values[:models.MaxSuggestionsPerField]
		if err := s.HDB.Upsert(ctx, h); err != nil {
			zap.S().Errorw("failed to trim suggestion history", "fieldKey", h.FieldKey, "error", err)
			continue
		}
		trimmed++
	}

	deleted, err := s.HDB.DeleteMany(ctx, bson.M{"values": bson.M{"$size": 0}})
	if err != nil {
		zap.S().Errorw("failed to delete empty suggestion histories", "error", err)
	}

	zap.S().Infow("suggestion history trim finished",
		"trimmed", trimmed,
		"deletedEmpty", deleted,
	)
}
