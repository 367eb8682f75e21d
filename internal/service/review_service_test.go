package service

import (
	"cinema_reservation/configs"
	"cinema_reservation/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//------------------------------------------
//------------------------------------------

type fakeReviewRepo struct {
	rows   []model.Review
	nextId int64
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{nextId: 1}
}

func (f *fakeReviewRepo) GetUserReviewForMovie(movieId int64, username string) (*model.Review, error) {
	for i := range f.rows {
		if f.rows[i].MovieId == movieId && f.rows[i].Username == username {
			clone := f.rows[i]
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) GetMovieReviews(movieId int64) ([]model.Review, error) {
	res := []model.Review{}
	for _, r := range f.rows {
		if r.MovieId == movieId {
			res = append(res, r)
		}
	}
	return res, nil
}

func (f *fakeReviewRepo) CreateReview(review *model.Review) error {
	for _, r := range f.rows {
		if r.MovieId == review.MovieId && r.Username == review.Username {
			return model.ErrAlreadyReviewed
		}
	}
	review.Id = f.nextId
	f.nextId++
	f.rows = append(f.rows, *review)
	return nil
}

//------------------------------------------
//------------------------------------------

func newTestReviewService() (*ReviewService, *fakeReviewRepo, *fakeMovieRepo, *fakeEvents) {
	configs.SetDbConfigsForTest(testDbConfigs())
	repo := newFakeReviewRepo()
	movieRepo := newFakeMovieRepo()
	events := &fakeEvents{}
	svc := NewReviewService(repo, movieRepo, events)
	return svc, repo, movieRepo, events
}

func TestAddReview(t *testing.T) {
	svc, repo, movieRepo, events := newTestReviewService()
	movieRepo.snapshots[42] = &model.MovieSnapshot{MovieId: 42, Title: "Underground"}

	review, err := svc.AddReview("pera", &model.AddReviewReq{MovieId: 42, Rating: 4, Comment: "Odlican film"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), review.Id)
	assert.Equal(t, "pera", review.Username)
	assert.Len(t, repo.rows, 1)

	// snapshot rating follows the local reviews
	assert.Equal(t, 4.0, movieRepo.ratings[42])
	assert.Equal(t, 1, events.reviewEvents)
}

func TestAddReview_OnePerUserAndMovie(t *testing.T) {
	svc, _, _, _ := newTestReviewService()

	_, err := svc.AddReview("pera", &model.AddReviewReq{MovieId: 42, Rating: 4, Comment: "Odlican film"})
	require.NoError(t, err)

	_, err = svc.AddReview("pera", &model.AddReviewReq{MovieId: 42, Rating: 2, Comment: "Ipak ne"})
	assert.ErrorIs(t, err, model.ErrAlreadyReviewed)

	// same movie, different user is fine
	_, err = svc.AddReview("mika", &model.AddReviewReq{MovieId: 42, Rating: 5, Comment: "Vrh"})
	assert.NoError(t, err)
}

func TestAddReview_Validation(t *testing.T) {
	svc, _, _, _ := newTestReviewService()

	cases := []struct {
		name  string
		req   *model.AddReviewReq
		field string
	}{
		{"missing movie", &model.AddReviewReq{Rating: 3, Comment: "ok"}, "movieId"},
		{"rating too low", &model.AddReviewReq{MovieId: 1, Rating: 0, Comment: "ok"}, "rating"},
		{"rating too high", &model.AddReviewReq{MovieId: 1, Rating: 6, Comment: "ok"}, "rating"},
		{"empty comment", &model.AddReviewReq{MovieId: 1, Rating: 3}, "comment"},
		{"comment too long", &model.AddReviewReq{MovieId: 1, Rating: 3, Comment: strings.Repeat("a", 501)}, "comment"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddReview("pera", tc.req)
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs, tc.field)
		})
	}
}

func TestAddReview_Disabled(t *testing.T) {
	svc, _, _, _ := newTestReviewService()
	disabled := testDbConfigs()
	disabled.DisableReviews = true
	configs.SetDbConfigsForTest(disabled)
	defer configs.SetDbConfigsForTest(testDbConfigs())

	_, err := svc.AddReview("pera", &model.AddReviewReq{MovieId: 42, Rating: 4, Comment: "Odlican film"})
	assert.ErrorIs(t, err, model.ErrReviewsDisabled)
}

func TestGetMovieReviews(t *testing.T) {
	svc, _, _, _ := newTestReviewService()

	_, err := svc.AddReview("pera", &model.AddReviewReq{MovieId: 42, Rating: 5, Comment: "Vrh"})
	require.NoError(t, err)
	_, err = svc.AddReview("mika", &model.AddReviewReq{MovieId: 42, Rating: 2, Comment: "Slabo"})
	require.NoError(t, err)
	_, err = svc.AddReview("pera", &model.AddReviewReq{MovieId: 7, Rating: 1, Comment: "Ne"})
	require.NoError(t, err)

	res, err := svc.GetMovieReviews(42)
	require.NoError(t, err)
	assert.Equal(t, 2, res.ReviewCount)
	assert.Len(t, res.Reviews, 2)
	assert.Equal(t, 3.5, res.AverageRating)
}

func TestGetMovieReviews_Empty(t *testing.T) {
	svc, _, _, _ := newTestReviewService()

	res, err := svc.GetMovieReviews(42)
	require.NoError(t, err)
	assert.Equal(t, 0, res.ReviewCount)
	assert.Equal(t, 0.0, res.AverageRating)
	assert.NotNil(t, res.Reviews)
}

func TestGetMovieSnapshot(t *testing.T) {
	svc, _, movieRepo, _ := newTestReviewService()
	movieRepo.snapshots[42] = &model.MovieSnapshot{MovieId: 42, Title: "Underground", Rating: 4.5}

	snapshot, err := svc.GetMovieSnapshot(42)
	require.NoError(t, err)
	assert.Equal(t, "Underground", snapshot.Title)

	_, err = svc.GetMovieSnapshot(999)
	assert.ErrorIs(t, err, model.ErrMovieNotFound)
}

func TestSnapshotRatingFollowsReviews(t *testing.T) {
	svc, _, movieRepo, _ := newTestReviewService()
	movieRepo.snapshots[42] = &model.MovieSnapshot{MovieId: 42, Title: "Underground", Rating: 4.5}

	_, err := svc.AddReview("pera", &model.AddReviewReq{MovieId: 42, Rating: 1, Comment: "Ne"})
	require.NoError(t, err)
	_, err = svc.AddReview("mika", &model.AddReviewReq{MovieId: 42, Rating: 4, Comment: "Dobar"})
	require.NoError(t, err)

	snapshot, err := svc.GetMovieSnapshot(42)
	require.NoError(t, err)
	assert.Equal(t, 2.5, snapshot.Rating)
}
