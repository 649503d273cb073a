package controller

import (
	"net/http"

	"movielist/logger"
	"movielist/web/service"

	"github.com/gin-gonic/gin"
)

// IndexController serves the home page: the full movie list.
type IndexController struct {
	BaseController

	movieService *service.MovieService
}

func NewIndexController(g *gin.RouterGroup, movieService *service.MovieService) *IndexController {
	a := &IndexController{movieService: movieService}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
}

func (a *IndexController) index(c *gin.Context) {
	movies, err := a.movieService.ListMovies()
	if err != nil {
		logger.Warning("load movies err:", err)
		errorPage(c, http.StatusInternalServerError, "Error loading movies")
		return
	}
	html(c, "index.html", "Movies", gin.H{"movies": movies})
}
