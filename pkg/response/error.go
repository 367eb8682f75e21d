package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	MoviesNotFound    = "Movies not found"
	MovieNotFound     = "Movie not found"
	GenresNotFound    = "Genres not found"
	ActorsNotFound    = "Actors not found"
	DirectorsNotFound = "Directors not found"
	ShowingNotFound   = "Showing not found"
	//----------------------
	UserNotFound        = "Cannot find user"
	ReservationNotFound = "Reservation not found"
	//----------------------
	InvalidRefreshToken = "Invalid RefreshToken"
	InvalidToken        = "Invalid/Stale Token"
	//----------------------
	UserPassNotMatch = "Username and password do not match"
	//----------------------
	BadRequestBody = "Incorrect request body"
	//----------------------
	UsernameAlreadyExist = "This username already exists"
	AlreadyReviewed      = "This movie is already reviewed"
	//----------------------
)
