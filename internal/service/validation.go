package service

import (
	"cinema_reservation/configs"
	"cinema_reservation/model"
	"regexp"

	"github.com/badoux/checkmail"
)

// ValidationErrors is the field-keyed message map returned on form-level
// failures, handlers send it back as the errorMessage payload.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	return "invalid request fields"
}

var phoneRegex = regexp.MustCompile(`^\d+$`)

func validateRegister(req *model.RegisterRequest) ValidationErrors {
	errs := ValidationErrors{}
	if req.Username == "" {
		errs["username"] = "Username is required"
	}
	if req.Name == "" {
		errs["name"] = "Name is required"
	}
	if req.LastName == "" {
		errs["lastName"] = "Last name is required"
	}
	if req.Address == "" {
		errs["address"] = "Address is required"
	}
	if err := checkmail.ValidateFormat(req.Email); err != nil {
		errs["email"] = "Invalid email address"
	}
	if !phoneRegex.MatchString(req.Phone) {
		errs["phone"] = "Phone must contain digits only"
	}
	if len(req.Password) < 6 {
		errs["password"] = "Password must have at least 6 characters"
	}
	if len(req.Genres) == 0 {
		errs["genre"] = "At least one genre must be selected"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateProfile(req *model.UpdateProfileRequest) ValidationErrors {
	errs := ValidationErrors{}
	if err := checkmail.ValidateFormat(req.Email); err != nil {
		errs["email"] = "Invalid email address"
	}
	if !phoneRegex.MatchString(req.Phone) {
		errs["phone"] = "Phone must contain digits only"
	}
	if req.Password == "" {
		errs["password"] = "Password is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateReview(req *model.AddReviewReq) ValidationErrors {
	errs := ValidationErrors{}
	if req.MovieId < 1 {
		errs["movieId"] = "Movie id is required"
	}
	if req.Rating < 1 || req.Rating > 5 {
		errs["rating"] = "Rating must be between 1 and 5"
	}
	maxChars := configs.GetDbConfigs().ReviewCommentMaxChars
	if len(req.Comment) == 0 {
		errs["comment"] = "Comment must have at least 1 character"
	} else if len(req.Comment) > maxChars {
		errs["comment"] = "Comment is too long"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
