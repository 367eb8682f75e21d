package service

import (
	"cinema_reservation/db/redis"
	"cinema_reservation/model"
	errorHandler "cinema_reservation/pkg/error"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const (
	jwtDataCachePrefix   = "jwtKey:"
	movieDataCachePrefix = "movie:"
)

//------------------------------------------
//------------------------------------------

func GetJwtDataCache(key string) (string, error) {
	result, err := redis.GetRedis(context.Background(), jwtDataCachePrefix+key)
	return result, err
}

func SetJwtDataCache(key string, value string, duration time.Duration) error {
	err := redis.SetRedis(context.Background(), jwtDataCachePrefix+key, value, duration)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving jwt: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}

//------------------------------------------
//------------------------------------------

func getCachedMovieSnapshot(movieId int64) (*model.MovieSnapshot, error) {
	key := movieDataCachePrefix + strconv.FormatInt(movieId, 10)
	result, err := redis.GetRedis(context.Background(), key)
	if err != nil && err.Error() != "redis: nil" {
		return nil, nil
	}
	if result != "" {
		var jsonData model.MovieSnapshot
		err = json.Unmarshal([]byte(result), &jsonData)
		if err != nil {
			return nil, err
		}
		return &jsonData, nil
	}
	return nil, err
}

func setMovieSnapshotCache(snapshot *model.MovieSnapshot) error {
	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving movie snapshot: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return err
	}
	key := movieDataCachePrefix + strconv.FormatInt(snapshot.MovieId, 10)
	err = redis.SetRedis(context.Background(), key, jsonData, 1*time.Hour)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving movie snapshot: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}

func deleteMovieSnapshotCache(movieId int64) {
	key := movieDataCachePrefix + strconv.FormatInt(movieId, 10)
	err := redis.DelRedis(context.Background(), key)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on removing movie snapshot: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
}
