package configs

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DbConfigData struct {
	Id                    primitive.ObjectID `bson:"_id"`
	Title                 string             `bson:"title"`
	CorsAllowedOrigins    []string           `bson:"corsAllowedOrigins"`
	ShowingCinema         string             `bson:"showingCinema"`
	ShowingTimes          []string           `bson:"showingTimes"`
	ShowingSeats          []int              `bson:"showingSeats"`
	ShowingTicketPrice    int                `bson:"showingTicketPrice"`
	ReviewCommentMaxChars int                `bson:"reviewCommentMaxChars"`
	DisableReservations   bool               `bson:"disableReservations"`
	DisableReviews        bool               `bson:"disableReviews"`
}

var rwm sync.RWMutex
var dbConfigs = defaultDbConfigs()

// the constants the storefront fabricated showings from
func defaultDbConfigs() DbConfigData {
	return DbConfigData{
		Title:                 "server configs",
		ShowingCinema:         "Bioskop Filmadzija",
		ShowingTimes:          []string{"14:00", "17:30", "20:15"},
		ShowingSeats:          []int{50, 30, 80},
		ShowingTicketPrice:    1200,
		ReviewCommentMaxChars: 500,
	}
}

func GetDbConfigs() DbConfigData {
	rwm.RLock()
	defer rwm.RUnlock()
	return dbConfigs
}

func LoadDbConfigs(mongodb *mongo.Database) {
	tick := time.NewTicker(15 * time.Minute)
	_ = FetchMongoDbConfigs(mongodb)
	for range tick.C {
		_ = FetchMongoDbConfigs(mongodb)
	}
}

func FetchMongoDbConfigs(mongodb *mongo.Database) error {
	var loaded DbConfigData
	err := mongodb.
		Collection("configs").
		FindOne(context.Background(), bson.D{{Key: "title", Value: "server configs"}}).
		Decode(&loaded)
	if err != nil {
		errorMessage := fmt.Sprintf("could not get dbConfig from mongodb: %s", err)
		if configs.PrintErrors {
			log.Println(errorMessage)
		}
		sentry.CaptureException(err)
		return err
	}

	rwm.Lock()
	defer rwm.Unlock()
	dbConfigs = loaded
	if dbConfigs.ShowingCinema == "" {
		dbConfigs.ShowingCinema = defaultDbConfigs().ShowingCinema
	}
	if len(dbConfigs.ShowingTimes) == 0 {
		dbConfigs.ShowingTimes = defaultDbConfigs().ShowingTimes
	}
	if len(dbConfigs.ShowingSeats) == 0 {
		dbConfigs.ShowingSeats = defaultDbConfigs().ShowingSeats
	}
	if dbConfigs.ShowingTicketPrice == 0 {
		dbConfigs.ShowingTicketPrice = defaultDbConfigs().ShowingTicketPrice
	}
	if dbConfigs.ReviewCommentMaxChars == 0 {
		dbConfigs.ReviewCommentMaxChars = defaultDbConfigs().ReviewCommentMaxChars
	}
	return nil
}

// SetDbConfigsForTest overrides the dynamic configs, tests only.
func SetDbConfigsForTest(c DbConfigData) {
	rwm.Lock()
	defer rwm.Unlock()
	dbConfigs = c
}
