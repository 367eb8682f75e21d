package repository

import (
	"cinema_reservation/model"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IMovieRepository stores the denormalized movie snapshots. This is the
// cached `movies` collection of the storefront: its rating field holds the
// local review average and is never reconciled with the catalog's own
// rating.
type IMovieRepository interface {
	GetMovieSnapshot(movieId int64) (*model.MovieSnapshot, error)
	UpsertMovieSnapshot(snapshot *model.MovieSnapshot) error
	UpdateSnapshotRating(movieId int64, rating float64) error
}

type MovieRepository struct {
	mongodb *mongo.Database
}

func NewMovieRepository(mongodb *mongo.Database) *MovieRepository {
	return &MovieRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

func (m *MovieRepository) GetMovieSnapshot(movieId int64) (*model.MovieSnapshot, error) {
	var result model.MovieSnapshot
	err := m.mongodb.
		Collection("movies").
		FindOne(context.TODO(), bson.D{{Key: "movieId", Value: movieId}}).
		Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpsertMovieSnapshot refreshes the catalog fields of the snapshot but
// keeps an already stored rating, that field belongs to the review ledger.
func (m *MovieRepository) UpsertMovieSnapshot(snapshot *model.MovieSnapshot) error {
	filter := bson.D{{Key: "movieId", Value: snapshot.MovieId}}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "title", Value: snapshot.Title},
			{Key: "poster", Value: snapshot.Poster},
			{Key: "startDate", Value: snapshot.StartDate},
			{Key: "runTime", Value: snapshot.RunTime},
			{Key: "director", Value: snapshot.Director},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "movieId", Value: snapshot.MovieId},
			{Key: "rating", Value: snapshot.Rating},
		}},
	}
	opts := options.Update().SetUpsert(true)

	_, err := m.mongodb.
		Collection("movies").
		UpdateOne(context.TODO(), filter, update, opts)

	return err
}

func (m *MovieRepository) UpdateSnapshotRating(movieId int64, rating float64) error {
	filter := bson.D{{Key: "movieId", Value: movieId}}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "rating", Value: rating},
		}},
	}

	_, err := m.mongodb.
		Collection("movies").
		UpdateOne(context.TODO(), filter, update)

	return err
}
