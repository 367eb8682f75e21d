package service

import (
	"cinema_reservation/configs"
	"cinema_reservation/internal/repository"
	"cinema_reservation/model"
	errorHandler "cinema_reservation/pkg/error"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type IReviewService interface {
	AddReview(username string, req *model.AddReviewReq) (*model.Review, error)
	GetMovieReviews(movieId int64) (*model.MovieReviewsRes, error)
	GetMovieSnapshot(movieId int64) (*model.MovieSnapshot, error)
}

type ReviewService struct {
	reviewRepo repository.IReviewRepository
	movieRepo  repository.IMovieRepository
	events     IEventsService
}

func NewReviewService(
	reviewRepo repository.IReviewRepository,
	movieRepo repository.IMovieRepository,
	events IEventsService,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		movieRepo:  movieRepo,
		events:     events,
	}
}

//------------------------------------------
//------------------------------------------

// AddReview appends one review per (user, movie) pair and overwrites the
// cached average rating on the movie snapshot. Reviews are never mutated
// or deleted afterwards.
func (s *ReviewService) AddReview(username string, req *model.AddReviewReq) (*model.Review, error) {
	if configs.GetDbConfigs().DisableReviews {
		return nil, model.ErrReviewsDisabled
	}
	if errs := validateReview(req); errs != nil {
		return nil, errs
	}

	existing, err := s.reviewRepo.GetUserReviewForMovie(req.MovieId, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrAlreadyReviewed
	}

	review := &model.Review{
		MovieId:   req.MovieId,
		Username:  username,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reviewRepo.CreateReview(review); err != nil {
		return nil, err
	}

	s.refreshSnapshotRating(req.MovieId)
	s.events.PublishReviewCreated(review)

	return review, nil
}

func (s *ReviewService) GetMovieReviews(movieId int64) (*model.MovieReviewsRes, error) {
	reviews, err := s.reviewRepo.GetMovieReviews(movieId)
	if err != nil {
		return nil, err
	}
	return &model.MovieReviewsRes{
		Reviews:       reviews,
		ReviewCount:   len(reviews),
		AverageRating: averageRating(reviews),
	}, nil
}

// GetMovieSnapshot reads the denormalized movie snapshot with its locally
// reviewed rating, redis first, mongodb as the source.
func (s *ReviewService) GetMovieSnapshot(movieId int64) (*model.MovieSnapshot, error) {
	cached, _ := getCachedMovieSnapshot(movieId)
	if cached != nil {
		return cached, nil
	}

	snapshot, err := s.movieRepo.GetMovieSnapshot(movieId)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrMovieNotFound
		}
		return nil, err
	}
	_ = setMovieSnapshotCache(snapshot)
	return snapshot, nil
}

//------------------------------------------
//------------------------------------------

// refreshSnapshotRating recomputes the local average and overwrites the
// snapshot rating. Failures only lose cache freshness, the review itself
// is already stored.
func (s *ReviewService) refreshSnapshotRating(movieId int64) {
	reviews, err := s.reviewRepo.GetMovieReviews(movieId)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on reloading reviews of movie %v: %v", movieId, err)
		errorHandler.SaveError(errorMessage, err)
		return
	}

	err = s.movieRepo.UpdateSnapshotRating(movieId, averageRating(reviews))
	if err != nil {
		errorMessage := fmt.Sprintf("Error on updating snapshot rating of movie %v: %v", movieId, err)
		errorHandler.SaveError(errorMessage, err)
		return
	}
	deleteMovieSnapshotCache(movieId)
}

func averageRating(reviews []model.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
