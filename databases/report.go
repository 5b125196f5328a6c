package databases

// go generate: mockery --name ReportDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/satlantas/laka-report-api/models"
)

const reportName = "reports"

// ReportDatabase contains the methods to use with the accident report collection
type ReportDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.AccidentReport, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.AccidentReport, error)
	InsertOne(ctx context.Context, report models.AccidentReport, opts ...*options.InsertOneOptions) error
	ReplaceOne(ctx context.Context, filter interface{}, report models.AccidentReport, opts ...*options.ReplaceOptions) error
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (int64, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type reportDatabase struct {
	db DatabaseHelper
}

// NewReportDatabase initializes a new instance of report database with the provided db connection
func NewReportDatabase(db DatabaseHelper) ReportDatabase {
	return &reportDatabase{
		db: db,
	}
}

func (c *reportDatabase) FindOne(ctx context.Context, filter interface{}) (*models.AccidentReport, error) {
	report := &models.AccidentReport{}
	err := c.db.Collection(reportName).FindOne(ctx, filter).Decode(report)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (c *reportDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.AccidentReport, error) {
	cursor, err := c.db.Collection(reportName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var reports []models.AccidentReport
	if err := cursor.Decode(&reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *reportDatabase) InsertOne(ctx context.Context, report models.AccidentReport, opts ...*options.InsertOneOptions) error {
	_, err := c.db.Collection(reportName).InsertOne(ctx, report, opts...)
	return err
}

func (c *reportDatabase) ReplaceOne(ctx context.Context, filter interface{}, report models.AccidentReport, opts ...*options.ReplaceOptions) error {
	_, err := c.db.Collection(reportName).ReplaceOne(ctx, filter, report, opts...)
	return err
}

func (c *reportDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (int64, error) {
	res, err := c.db.Collection(reportName).DeleteOne(ctx, filter, opts...)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (c *reportDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return c.db.Collection(reportName).CountDocuments(ctx, filter, opts...)
}
