package service

import (
	"testing"

	"movielist/database"
	"movielist/database/model"
	"movielist/web/validation"

	"github.com/stretchr/testify/assert"
)

func TestMovieRoundTrip(t *testing.T) {
	setup(t)
	defer teardown()

	owner := registerUser(t, "Alice", "alice@example.com")
	movieService := NewMovieService()

	created, err := movieService.CreateMovie(owner.Id, validMovieForm())
	assert.NoError(t, err)
	assert.NotZero(t, created.Id)

	got, err := movieService.GetMovie(created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Blade Runner", got.Name)
	assert.Equal(t, 1982, got.Year)
	assert.Equal(t, 8.1, got.Rating)
	assert.Equal(t, model.GenreList{"Science fiction", "Tragedy"}, got.Genres)
	assert.Equal(t, owner.Id, got.PostedBy)
	assert.False(t, got.CreatedAt.IsZero())

	movies, err := movieService.ListMovies()
	assert.NoError(t, err)
	assert.Len(t, movies, 1)

	assert.Equal(t, "Alice", movieService.PosterName(got))
}

func TestCreateMovieRejectsInvalidFields(t *testing.T) {
	setup(t)
	defer teardown()

	owner := registerUser(t, "Alice", "alice@example.com")
	movieService := NewMovieService()

	form := validMovieForm()
	form.Year = "1899"
	form.Rating = "10.5"
	form.Genres = nil

	_, err := movieService.CreateMovie(owner.Id, form)
	var verrs validation.Errors
	assert.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("year"))
	assert.True(t, verrs.Has("rating"))
	assert.True(t, verrs.Has("genres"))

	// Invalid input never reaches the store.
	movies, err := movieService.ListMovies()
	assert.NoError(t, err)
	assert.Empty(t, movies)
}

func TestUpdateMovieAuthorization(t *testing.T) {
	setup(t)
	defer teardown()

	owner := registerUser(t, "Alice", "alice@example.com")
	other := registerUser(t, "Bob", "bob@example.com")
	movieService := NewMovieService()

	created, err := movieService.CreateMovie(owner.Id, validMovieForm())
	assert.NoError(t, err)

	update := validMovieForm()
	update.Name = "Blade Runner 2049"
	update.Year = "2017"

	// Nonexistent id wins over ownership, for owner and stranger alike.
	assert.ErrorIs(t, movieService.UpdateMovie(created.Id+100, owner.Id, update), ErrMovieNotFound)
	assert.ErrorIs(t, movieService.UpdateMovie(created.Id+100, other.Id, update), ErrMovieNotFound)

	// A non-owner is rejected and the record stays untouched.
	assert.ErrorIs(t, movieService.UpdateMovie(created.Id, other.Id, update), ErrNotOwner)
	unchanged, err := movieService.GetMovie(created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Blade Runner", unchanged.Name)
	assert.Equal(t, 1982, unchanged.Year)

	// The owner may edit.
	assert.NoError(t, movieService.UpdateMovie(created.Id, owner.Id, update))
	updated, err := movieService.GetMovie(created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Blade Runner 2049", updated.Name)
	assert.Equal(t, 2017, updated.Year)
	assert.Equal(t, owner.Id, updated.PostedBy)
}

func TestDeleteMovieAuthorization(t *testing.T) {
	setup(t)
	defer teardown()

	owner := registerUser(t, "Alice", "alice@example.com")
	other := registerUser(t, "Bob", "bob@example.com")
	movieService := NewMovieService()

	created, err := movieService.CreateMovie(owner.Id, validMovieForm())
	assert.NoError(t, err)

	assert.ErrorIs(t, movieService.DeleteMovie(created.Id+100, owner.Id), ErrMovieNotFound)
	assert.ErrorIs(t, movieService.DeleteMovie(created.Id, other.Id), ErrNotOwner)

	// Still there after the rejected attempts.
	_, err = movieService.GetMovie(created.Id)
	assert.NoError(t, err)

	assert.NoError(t, movieService.DeleteMovie(created.Id, owner.Id))
	_, err = movieService.GetMovie(created.Id)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestPosterNameDegradesToUnknown(t *testing.T) {
	setup(t)
	defer teardown()

	owner := registerUser(t, "Alice", "alice@example.com")
	movieService := NewMovieService()

	created, err := movieService.CreateMovie(owner.Id, validMovieForm())
	assert.NoError(t, err)

	// No cascade exists; removing the user orphans the movie.
	err = database.GetDB().Delete(&model.User{}, owner.Id).Error
	assert.NoError(t, err)

	got, err := movieService.GetMovie(created.Id)
	assert.NoError(t, err)
	assert.Equal(t, UnknownPoster, movieService.PosterName(got))
}

func TestYearAndRatingBoundaries(t *testing.T) {
	setup(t)
	defer teardown()

	owner := registerUser(t, "Alice", "alice@example.com")
	movieService := NewMovieService()

	for _, tc := range []struct {
		year   string
		rating string
		ok     bool
	}{
		{"1900", "0", true},
		{"2099", "10", true},
		{"1899", "5", false},
		{"2100", "5", false},
		{"1982", "-0.1", false},
		{"1982", "10.1", false},
		{"199x", "5", false},
		{"1982", "high", false},
	} {
		form := validMovieForm()
		form.Year = tc.year
		form.Rating = tc.rating

		_, err := movieService.CreateMovie(owner.Id, form)
		if tc.ok {
			assert.NoError(t, err, "year=%s rating=%s", tc.year, tc.rating)
		} else {
			var verrs validation.Errors
			assert.ErrorAs(t, err, &verrs, "year=%s rating=%s", tc.year, tc.rating)
		}
	}
}
