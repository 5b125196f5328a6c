package databases

// go generate: mockery --name UserDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/satlantas/laka-report-api/models"
)

const userName = "users"

// UserDatabase contains the methods to use with the officer account collection
type UserDatabase interface {
	FindOne(ctx context.Context, filter interface{}) SingleResultHelper
	InsertOne(ctx context.Context, userDetails models.UserDetails) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type userDatabase struct {
	db DatabaseHelper
}

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(db DatabaseHelper) UserDatabase {
	return &userDatabase{
		db: db,
	}
}

func (u *userDatabase) FindOne(ctx context.Context, filter interface{}) SingleResultHelper {
	return u.db.Collection(userName).FindOne(ctx, filter)
}

func (u *userDatabase) InsertOne(ctx context.Context, userDetails models.UserDetails) (InsertOneResultHelper, error) {
	type user struct {
		User models.UserDetails `bson:"user"`
	}
	return u.db.Collection(userName).InsertOne(ctx, user{User: userDetails})
}

func (u *userDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return u.db.Collection(userName).UpdateOne(ctx, filter, update, opts...)
}

func (u *userDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return u.db.Collection(userName).CountDocuments(ctx, filter, opts...)
}
