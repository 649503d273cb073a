package controller

import (
	"errors"
	"net/http"
	"strconv"

	"movielist/database/model"
	"movielist/logger"
	"movielist/web/entity"
	"movielist/web/service"
	"movielist/web/validation"

	"github.com/gin-gonic/gin"
)

// MovieController handles browsing and owner-only mutation of movies.
type MovieController struct {
	BaseController

	movieService *service.MovieService
}

func NewMovieController(g *gin.RouterGroup, movieService *service.MovieService) *MovieController {
	a := &MovieController{movieService: movieService}
	a.initRouter(g)
	return a
}

func (a *MovieController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/movies")

	g.GET("", a.list)
	g.GET("/:id", a.detail)

	g.GET("/add", a.checkLogin, a.addPage)
	g.POST("/add", a.checkLogin, a.add)
	g.GET("/edit/:id", a.checkLogin, a.editPage)
	g.POST("/edit/:id", a.checkLogin, a.edit)
	g.DELETE("/:id", a.checkLogin, a.delete)
}

func (a *MovieController) list(c *gin.Context) {
	movies, err := a.movieService.ListMovies()
	if err != nil {
		logger.Warning("load movies err:", err)
		errorPage(c, http.StatusInternalServerError, "Error retrieving movies")
		return
	}
	html(c, "index.html", "Movies", gin.H{"movies": movies})
}

func (a *MovieController) detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorPage(c, http.StatusNotFound, "Could not find movie")
		return
	}

	movie, err := a.movieService.GetMovie(id)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			errorPage(c, http.StatusNotFound, "Could not find movie")
		} else {
			logger.Warning("load movie err:", err)
			errorPage(c, http.StatusInternalServerError, "Error loading movie")
		}
		return
	}

	html(c, "movie.html", movie.Name, gin.H{
		"movie":     movie,
		"posted_by": a.movieService.PosterName(movie),
	})
}

func (a *MovieController) addPage(c *gin.Context) {
	a.renderForm(c, "add-movie.html", "Add movie", &entity.MovieForm{}, 0, nil)
}

func (a *MovieController) add(c *gin.Context) {
	user := loginUser(c)

	var form entity.MovieForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderForm(c, "add-movie.html", "Add movie", &form, 0, []string{"Invalid form data"})
		return
	}

	movie, err := a.movieService.CreateMovie(user.Id, &form)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			a.renderForm(c, "add-movie.html", "Add movie", &form, 0, verrs.All())
		} else {
			logger.Warning("create movie err:", err)
			a.renderForm(c, "add-movie.html", "Add movie", &form, 0, []string{"Could not save movie"})
		}
		return
	}

	c.Redirect(http.StatusSeeOther, c.GetString("base_path")+"movies/"+strconv.Itoa(movie.Id))
}

func (a *MovieController) editPage(c *gin.Context) {
	user := loginUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorPage(c, http.StatusNotFound, "Could not find movie")
		return
	}

	movie, err := a.movieService.AuthorizeOwner(id, user.Id)
	if err != nil {
		a.renderOwnershipError(c, err)
		return
	}

	a.renderForm(c, "edit-movie.html", "Edit movie", entity.MovieFormFromModel(movie), movie.Id, nil)
}

func (a *MovieController) edit(c *gin.Context) {
	user := loginUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorPage(c, http.StatusNotFound, "Could not find movie")
		return
	}

	var form entity.MovieForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderForm(c, "edit-movie.html", "Edit movie", &form, id, []string{"Invalid form data"})
		return
	}

	if err := a.movieService.UpdateMovie(id, user.Id, &form); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			a.renderForm(c, "edit-movie.html", "Edit movie", &form, id, verrs.All())
			return
		}
		a.renderOwnershipError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, c.GetString("base_path")+"movies/"+strconv.Itoa(id))
}

// delete responds with plain text: the detail page calls it via AJAX.
func (a *MovieController) delete(c *gin.Context) {
	user := loginUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Could not find movie")
		return
	}

	if err := a.movieService.DeleteMovie(id, user.Id); err != nil {
		switch {
		case errors.Is(err, service.ErrMovieNotFound):
			c.String(http.StatusNotFound, "Could not find movie")
		case errors.Is(err, service.ErrNotOwner):
			c.String(http.StatusForbidden, "Unauthorized")
		default:
			logger.Warning("delete movie err:", err)
			c.String(http.StatusInternalServerError, "Error deleting movie")
		}
		return
	}

	c.String(http.StatusOK, "Successfully Deleted")
}

func (a *MovieController) renderOwnershipError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMovieNotFound):
		errorPage(c, http.StatusNotFound, "Could not find movie")
	case errors.Is(err, service.ErrNotOwner):
		errorPage(c, http.StatusForbidden, "Unauthorized")
	default:
		logger.Warning("load movie err:", err)
		errorPage(c, http.StatusInternalServerError, "Error loading movie")
	}
}

func (a *MovieController) renderForm(c *gin.Context, tmpl string, title string, form *entity.MovieForm, movieId int, errs []string) {
	html(c, tmpl, title, gin.H{
		"errors":   errs,
		"form":     form,
		"movie_id": movieId,
		"genres":   model.Genres,
	})
}
