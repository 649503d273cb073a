package service

import (
	"movielist/database"
	"movielist/database/model"
	"movielist/logger"
	"movielist/util/common"
	"movielist/web/entity"
)

// UnknownPoster is shown when a movie's owner no longer resolves.
const UnknownPoster = "Unknown"

var (
	ErrMovieNotFound = common.NewErrorf("movie not found")
	ErrNotOwner      = common.NewErrorf("not the movie's owner")
)

type MovieService struct{}

func NewMovieService() *MovieService {
	return &MovieService{}
}

// ListMovies returns all movies in the store's natural order.
func (s *MovieService) ListMovies() ([]model.Movie, error) {
	db := database.GetDB()

	var movies []model.Movie
	if err := db.Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

// GetMovie loads one movie by id.
func (s *MovieService) GetMovie(id int) (*model.Movie, error) {
	db := database.GetDB()

	movie := &model.Movie{}
	err := db.First(movie, id).Error
	if database.IsNotFound(err) {
		return nil, ErrMovieNotFound
	} else if err != nil {
		return nil, err
	}
	return movie, nil
}

// PosterName resolves the display name of the movie's owner. A missing owner
// degrades to the Unknown sentinel instead of failing the page.
func (s *MovieService) PosterName(movie *model.Movie) string {
	db := database.GetDB()

	user := &model.User{}
	err := db.First(user, movie.PostedBy).Error
	if database.IsNotFound(err) {
		return UnknownPoster
	} else if err != nil {
		logger.Warning("resolve movie poster err:", err)
		return UnknownPoster
	}
	return user.Name
}

// CreateMovie validates the form and stores a new movie owned by ownerId.
func (s *MovieService) CreateMovie(ownerId int, form *entity.MovieForm) (*model.Movie, error) {
	if errs := form.CheckValid(); errs != nil {
		return nil, errs
	}

	movie := &model.Movie{
		Name:        form.Name,
		Description: form.Description,
		Year:        form.YearValue(),
		Genres:      model.GenreList(form.Genres),
		Rating:      form.RatingValue(),
		PostedBy:    ownerId,
	}

	db := database.GetDB()
	if err := db.Create(movie).Error; err != nil {
		return nil, err
	}
	return movie, nil
}

// UpdateMovie validates the form, then applies the shared existence-then-
// ownership check before writing. Concurrent edits are last write wins; the
// store arbitrates.
func (s *MovieService) UpdateMovie(id int, requesterId int, form *entity.MovieForm) error {
	if errs := form.CheckValid(); errs != nil {
		return errs
	}

	movie, err := s.authorize(id, requesterId)
	if err != nil {
		return err
	}

	db := database.GetDB()
	return db.Model(movie).Updates(map[string]any{
		"name":        form.Name,
		"description": form.Description,
		"year":        form.YearValue(),
		"genres":      model.GenreList(form.Genres),
		"rating":      form.RatingValue(),
	}).Error
}

// DeleteMovie permanently removes the movie after the same existence-then-
// ownership check as UpdateMovie.
func (s *MovieService) DeleteMovie(id int, requesterId int) error {
	movie, err := s.authorize(id, requesterId)
	if err != nil {
		return err
	}

	db := database.GetDB()
	return db.Delete(movie).Error
}

// AuthorizeOwner exposes the shared check for handlers that render an edit
// form before any write happens.
func (s *MovieService) AuthorizeOwner(id int, requesterId int) (*model.Movie, error) {
	return s.authorize(id, requesterId)
}

// authorize confirms existence before ownership, so a non-owner probing a
// nonexistent id sees ErrMovieNotFound, never ErrNotOwner.
func (s *MovieService) authorize(id int, requesterId int) (*model.Movie, error) {
	movie, err := s.GetMovie(id)
	if err != nil {
		return nil, err
	}
	if movie.PostedBy != requesterId {
		return nil, ErrNotOwner
	}
	return movie, nil
}
