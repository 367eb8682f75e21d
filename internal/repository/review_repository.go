package repository

import (
	"cinema_reservation/model"
	"errors"

	"gorm.io/gorm"
)

type IReviewRepository interface {
	GetUserReviewForMovie(movieId int64, username string) (*model.Review, error)
	GetMovieReviews(movieId int64) ([]model.Review, error)
	CreateReview(review *model.Review) error
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *ReviewRepository) GetUserReviewForMovie(movieId int64, username string) (*model.Review, error) {
	var result model.Review
	err := r.db.
		Model(&model.Review{}).
		Where("\"movieId\" = ? AND username = ?", movieId, username).
		First(&result).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *ReviewRepository) GetMovieReviews(movieId int64) ([]model.Review, error) {
	var result []model.Review
	err := r.db.
		Model(&model.Review{}).
		Where("\"movieId\" = ?", movieId).
		Order("\"createdAt\" DESC, id DESC").
		Find(&result).
		Error
	return result, err
}

func (r *ReviewRepository) CreateReview(review *model.Review) error {
	err := r.db.Create(review).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return model.ErrAlreadyReviewed
	}
	return err
}
