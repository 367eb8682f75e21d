package model

// Types mirror the remote catalog API payloads. The catalog is a read-only
// collaborator, none of these are persisted to postgres.

type Movie struct {
	MovieId          int64        `json:"movieId"`
	InternalId       string       `json:"internalId"`
	CorporateId      string       `json:"corporateId"`
	Title            string       `json:"title"`
	OriginalTitle    string       `json:"originalTitle"`
	Description      string       `json:"description"`
	ShortDescription string       `json:"shortDescription"`
	Poster           string       `json:"poster"`
	StartDate        string       `json:"startDate"`
	ShortUrl         string       `json:"shortUrl"`
	RunTime          int          `json:"runTime"`
	Rating           float64      `json:"rating"`
	DirectorId       int64        `json:"directorId"`
	Director         Director     `json:"director"`
	MovieActors      []MovieActor `json:"movieActors"`
	MovieGenres      []MovieGenre `json:"movieGenres"`
	CreatedAt        string       `json:"createdAt"`
}

type Director struct {
	DirectorId int64  `json:"directorId" bson:"directorId"`
	Name       string `json:"name" bson:"name"`
	CreatedAt  string `json:"created_at" bson:"created_at"`
}

type Genre struct {
	GenreId   int64  `json:"genreId"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

type Actor struct {
	ActorId   int64  `json:"actorId"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

type MovieActor struct {
	MovieActorId int64 `json:"movieActorId"`
	MovieId      int64 `json:"movieId"`
	ActorId      int64 `json:"actorId"`
	Actor        Actor `json:"actor"`
}

type MovieGenre struct {
	MovieGenreId int64 `json:"movieGenreId"`
	MovieId      int64 `json:"movieId"`
	GenreId      int64 `json:"genreId"`
	Genre        Genre `json:"genre"`
}

//------------------------------------------
//------------------------------------------

// MovieSnapshot is the denormalized movie copy taken at reservation time.
// It is embedded in reservation rows and kept in the mongodb `movies`
// collection, where the rating field gets overwritten by local reviews.
type MovieSnapshot struct {
	MovieId   int64    `json:"movieId" bson:"movieId"`
	Title     string   `json:"title" bson:"title"`
	Poster    string   `json:"poster" bson:"poster"`
	StartDate string   `json:"startDate" bson:"startDate"`
	RunTime   int      `json:"runTime" bson:"runTime"`
	Rating    float64  `json:"rating" bson:"rating"`
	Director  Director `json:"director" bson:"director"`
}

func NewMovieSnapshot(movie *Movie) MovieSnapshot {
	return MovieSnapshot{
		MovieId:   movie.MovieId,
		Title:     movie.Title,
		Poster:    movie.Poster,
		StartDate: movie.StartDate,
		RunTime:   movie.RunTime,
		Rating:    movie.Rating,
		Director:  movie.Director,
	}
}

//------------------------------------------
//------------------------------------------

// Showing is a synthetic screening slot fabricated from the catalog movie
// and the dynamic configs, it is not sourced from the catalog.
type Showing struct {
	ShowingId      int           `json:"showingId"`
	Date           string        `json:"date"`
	Time           string        `json:"time"`
	Price          int           `json:"price"`
	Cinema         string        `json:"cinema"`
	AvailableSeats int           `json:"availableSeats"`
	Movie          MovieSnapshot `json:"movie"`
}
