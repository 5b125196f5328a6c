package databases

// go generate: mockery --name SuggestionHistoryDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/satlantas/laka-report-api/models"
)

const suggestionHistoryName = "fieldSuggestions"

// SuggestionHistoryDatabase stores the accepted suggestion values per
// field key, most recently used first.
type SuggestionHistoryDatabase interface {
	FindOne(ctx context.Context, fieldKey string) (*models.FieldSuggestionHistory, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.FieldSuggestionHistory, error)
	Upsert(ctx context.Context, history models.FieldSuggestionHistory) error
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)
}

type suggestionHistoryDatabase struct {
	db DatabaseHelper
}

// NewSuggestionHistoryDatabase initializes a new instance of suggestion history database with the provided db connection
func NewSuggestionHistoryDatabase(db DatabaseHelper) SuggestionHistoryDatabase {
	return &suggestionHistoryDatabase{
		db: db,
	}
}

func (s *suggestionHistoryDatabase) FindOne(ctx context.Context, fieldKey string) (*models.FieldSuggestionHistory, error) {
	history := &models.FieldSuggestionHistory{}
	err := s.db.Collection(suggestionHistoryName).FindOne(ctx, bson.M{"_id": fieldKey}).Decode(history)
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (s *suggestionHistoryDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.FieldSuggestionHistory, error) {
	cursor, err := s.db.Collection(suggestionHistoryName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var histories []models.FieldSuggestionHistory
	if err := cursor.Decode(&histories); err != nil {
		return nil, err
	}
	return histories, nil
}

func (s *suggestionHistoryDatabase) Upsert(ctx context.Context, history models.FieldSuggestionHistory) error {
	_, err := s.db.Collection(suggestionHistoryName).UpdateOne(ctx,
		bson.M{"_id": history.FieldKey},
		bson.M{"$set": bson.M{"values": history.Values}},
		options.Update().SetUpsert(true))
	return err
}

func (s *suggestionHistoryDatabase) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	res, err := s.db.Collection(suggestionHistoryName).DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
