package entity

import (
	"testing"

	"movielist/database/model"

	"github.com/stretchr/testify/assert"
)

func validRegisterForm() *RegisterForm {
	return &RegisterForm{
		Name:            "Alice",
		Email:           "alice@example.com",
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
	}
}

func TestRegisterFormValid(t *testing.T) {
	assert.Nil(t, validRegisterForm().CheckValid())
}

func TestRegisterFormPasswordRules(t *testing.T) {
	for password, missing := range map[string]string{
		"str0ng!pass": "Password must contain at least one uppercase letter",
		"STR0NG!PASS": "Password must contain at least one lowercase letter",
		"Strong!pass": "Password must contain at least one number",
		"Str0ngpass1": "Password must contain at least one special character (!@#$%^&*)",
		"St0ng!p":     "Password must be at least 8 characters",
	} {
		form := validRegisterForm()
		form.Password = password
		form.ConfirmPassword = password

		errs := form.CheckValid()
		assert.NotNil(t, errs, password)
		assert.Contains(t, errs["password"], missing, password)
		assert.Len(t, errs["password"], 1, password)
	}
}

func TestRegisterFormConfirmMismatch(t *testing.T) {
	form := validRegisterForm()
	form.ConfirmPassword = "Other0!pass"

	errs := form.CheckValid()
	assert.True(t, errs.Has("confirm_password"))
	assert.False(t, errs.Has("password"))
}

func TestLoginFormCheckValid(t *testing.T) {
	assert.Nil(t, (&LoginForm{Email: "alice@example.com", Password: "x"}).CheckValid())

	errs := (&LoginForm{}).CheckValid()
	assert.Contains(t, errs["email"], "Email is required")
	assert.Contains(t, errs["password"], "Password is required")

	errs = (&LoginForm{Email: "not-an-email", Password: "x"}).CheckValid()
	assert.Contains(t, errs["email"], "Email is invalid")
}

func validMovieForm() *MovieForm {
	return &MovieForm{
		Name:        "Blade Runner",
		Description: "A blade runner must pursue and terminate four replicants.",
		Year:        "1982",
		Rating:      "8.1",
		Genres:      []string{"Science fiction", "Tragedy"},
	}
}

func TestMovieFormYearBoundaries(t *testing.T) {
	for year, ok := range map[string]bool{
		"1900": true,
		"2099": true,
		"1899": false,
		"2100": false,
		"abcd": false,
		"":     false,
	} {
		form := validMovieForm()
		form.Year = year

		errs := form.CheckValid()
		if ok {
			assert.Nil(t, errs, year)
		} else {
			assert.Contains(t, errs["year"], "Year must be a valid 4-digit number", year)
		}
	}
}

func TestMovieFormRatingBoundaries(t *testing.T) {
	for rating, ok := range map[string]bool{
		"0":    true,
		"10":   true,
		"7.5":  true,
		"-0.5": false,
		"10.5": false,
		"high": false,
	} {
		form := validMovieForm()
		form.Rating = rating

		errs := form.CheckValid()
		if ok {
			assert.Nil(t, errs, rating)
		} else {
			assert.Contains(t, errs["rating"], "Rating must be a number between 0 and 10", rating)
		}
	}
}

func TestMovieFormGenres(t *testing.T) {
	form := validMovieForm()
	form.Genres = nil
	assert.Contains(t, form.CheckValid()["genres"], "Genre is required")

	form = validMovieForm()
	form.Genres = []string{"Horror", "Western"}
	assert.Contains(t, form.CheckValid()["genres"], "Unknown genre: Western")

	form = validMovieForm()
	form.Genres = []string{"Horror", "Horror"}
	assert.Contains(t, form.CheckValid()["genres"], "Genres must not repeat")
}

func TestMovieFormRoundTrip(t *testing.T) {
	movie := &model.Movie{
		Name:        "Blade Runner",
		Description: "A blade runner must pursue and terminate four replicants.",
		Year:        1982,
		Rating:      8.1,
		Genres:      model.GenreList{"Science fiction", "Tragedy"},
	}

	form := MovieFormFromModel(movie)
	assert.Nil(t, form.CheckValid())
	assert.Equal(t, movie.Year, form.YearValue())
	assert.Equal(t, movie.Rating, form.RatingValue())
	assert.Equal(t, []string(movie.Genres), form.Genres)
}
