package model

import "time"

type Review struct {
	Id        int64     `gorm:"column:id;type:bigserial;autoIncrement;primaryKey;" json:"reviewId"`
	MovieId   int64     `gorm:"column:movieId;type:bigint;not null;index:Review_movieId_idx;uniqueIndex:Review_movieId_username_key;" json:"movieId"`
	Username  string    `gorm:"column:username;type:text;not null;uniqueIndex:Review_movieId_username_key;" json:"username"`
	Rating    int       `gorm:"column:rating;type:integer;not null;" json:"rating"`
	Comment   string    `gorm:"column:comment;type:text;not null;" json:"comment"`
	CreatedAt time.Time `gorm:"column:createdAt;type:timestamp(3);not null;default:CURRENT_TIMESTAMP;" json:"createdAt"`
}

func (Review) TableName() string {
	return "Review"
}

//---------------------------------------
//---------------------------------------

type AddReviewReq struct {
	MovieId int64  `json:"movieId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type MovieReviewsRes struct {
	Reviews       []Review `json:"reviews"`
	ReviewCount   int      `json:"reviewCount"`
	AverageRating float64  `json:"averageRating"`
}
