package entity

import (
	"regexp"
	"strconv"

	"movielist/database/model"
	"movielist/web/validation"
)

var (
	upperRX  = regexp.MustCompile(`[A-Z]`)
	lowerRX  = regexp.MustCompile(`[a-z]`)
	digitRX  = regexp.MustCompile(`[0-9]`)
	symbolRX = regexp.MustCompile(`[!@#$%^&*]`)
)

// RegisterForm carries a registration submission.
type RegisterForm struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

// CheckValid applies every registration rule and returns the accumulated
// violations, or nil when the form is clean. The duplicate-email check is a
// store concern and happens later, in the user service.
func (f *RegisterForm) CheckValid() validation.Errors {
	v := validation.New()

	v.Check(validation.NotBlank(f.Name), "name", "Name is required")

	if !validation.NotBlank(f.Email) {
		v.AddError("email", "Email is required")
	} else {
		v.Check(validation.Matches(f.Email, validation.EmailRX), "email", "Email is invalid")
	}

	if f.Password == "" {
		v.AddError("password", "Password is required")
	}
	v.Check(len(f.Password) >= 8, "password", "Password must be at least 8 characters")
	v.Check(validation.Matches(f.Password, upperRX), "password", "Password must contain at least one uppercase letter")
	v.Check(validation.Matches(f.Password, lowerRX), "password", "Password must contain at least one lowercase letter")
	v.Check(validation.Matches(f.Password, digitRX), "password", "Password must contain at least one number")
	v.Check(validation.Matches(f.Password, symbolRX), "password", "Password must contain at least one special character (!@#$%^&*)")

	v.Check(f.ConfirmPassword == f.Password, "confirm_password", "Passwords must match")

	if !v.Valid() {
		return v.Errors
	}
	return nil
}

// LoginForm carries a login submission.
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (f *LoginForm) CheckValid() validation.Errors {
	v := validation.New()

	if !validation.NotBlank(f.Email) {
		v.AddError("email", "Email is required")
	} else {
		v.Check(validation.Matches(f.Email, validation.EmailRX), "email", "Email is invalid")
	}
	v.Check(f.Password != "", "password", "Password is required")

	if !v.Valid() {
		return v.Errors
	}
	return nil
}

// MovieForm carries a movie create/edit submission. Year and rating stay
// strings so a malformed number is a validation error, not a bind failure.
type MovieForm struct {
	Name        string   `form:"name"`
	Description string   `form:"description"`
	Year        string   `form:"year"`
	Rating      string   `form:"rating"`
	Genres      []string `form:"genres"`
}

const (
	MinYear = 1900
	MaxYear = 2099
)

func (f *MovieForm) CheckValid() validation.Errors {
	v := validation.New()

	v.Check(validation.NotBlank(f.Name), "name", "Name is required")
	v.Check(validation.NotBlank(f.Description), "description", "Description is required")

	year, err := strconv.Atoi(f.Year)
	v.Check(err == nil && year >= MinYear && year <= MaxYear, "year", "Year must be a valid 4-digit number")

	rating, err := strconv.ParseFloat(f.Rating, 64)
	v.Check(err == nil && rating >= 0 && rating <= 10, "rating", "Rating must be a number between 0 and 10")

	v.Check(len(f.Genres) > 0, "genres", "Genre is required")
	for _, genre := range f.Genres {
		v.Check(validation.In(genre, model.Genres...), "genres", "Unknown genre: "+genre)
	}
	v.Check(validation.Unique(f.Genres), "genres", "Genres must not repeat")

	if !v.Valid() {
		return v.Errors
	}
	return nil
}

// MovieFormFromModel pre-fills an edit form from a stored movie.
func MovieFormFromModel(m *model.Movie) *MovieForm {
	return &MovieForm{
		Name:        m.Name,
		Description: m.Description,
		Year:        strconv.Itoa(m.Year),
		Rating:      strconv.FormatFloat(m.Rating, 'f', -1, 64),
		Genres:      []string(m.Genres),
	}
}

// YearValue returns the parsed year. Only meaningful after CheckValid.
func (f *MovieForm) YearValue() int {
	year, _ := strconv.Atoi(f.Year)
	return year
}

// RatingValue returns the parsed rating. Only meaningful after CheckValid.
func (f *MovieForm) RatingValue() float64 {
	rating, _ := strconv.ParseFloat(f.Rating, 64)
	return rating
}
