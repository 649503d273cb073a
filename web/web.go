// Package web provides the movielist web server: routing, templates, the
// cookie-backed session layer and the store maintenance schedule.
package web

import (
	"context"
	"crypto/tls"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"movielist/config"
	"movielist/database"
	"movielist/logger"
	"movielist/util/common"
	"movielist/util/random"
	"movielist/web/controller"
	"movielist/web/middleware"
	"movielist/web/service"
	"movielist/web/session"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

//go:embed assets
var assetsFS embed.FS

//go:embed html/*
var htmlFS embed.FS

// Server is the movielist web server with its controllers, services and
// maintenance cron.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	cfg *config.WebConfig

	index *controller.IndexController
	users *controller.UserController
	movie *controller.MovieController

	authService  *service.AuthService
	userService  *service.UserService
	movieService *service.MovieService

	cron *cron.Cron
}

// NewServer creates a web server around the given settings.
func NewServer(cfg *config.WebConfig) *Server {
	return &Server{
		cfg: cfg,
	}
}

// getHtmlFiles walks the local `web/html` directory. Debug mode only, so
// template edits show up without a rebuild.
func (s *Server) getHtmlFiles() ([]string, error) {
	files := make([]string, 0)
	dir, _ := os.Getwd()
	err := fs.WalkDir(os.DirFS(dir), "web/html", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// getHtmlTemplate parses the embedded templates.
func (s *Server) getHtmlTemplate(funcMap template.FuncMap) (*template.Template, error) {
	return template.New("").Funcs(funcMap).ParseFS(htmlFS, "html/*.html")
}

func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	if s.cfg.Domain != "" {
		engine.Use(middleware.DomainValidatorMiddleware(s.cfg.Domain))
	}

	basePath := s.cfg.NormalizedBasePath()

	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.RequestLog())

	secret := s.cfg.SessionSecret
	if secret == "" {
		secret = random.Seq(32)
		logger.Warning("no session secret configured; sessions will not survive a restart")
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge * 60,
		HttpOnly: true,
	})
	engine.Use(sessions.Sessions(config.GetName(), store))

	s.authService = service.NewAuthService()
	s.userService = service.NewUserService()
	s.movieService = service.NewMovieService()

	// Resolve the session token to a user once per request and expose it to
	// handlers and templates. A stale token means anonymous, not an error.
	engine.Use(func(c *gin.Context) {
		c.Set("base_path", basePath)
		if token := session.GetLoginToken(c); token != "" {
			if user := s.authService.FromToken(token); user != nil {
				c.Set("login_user", user)
			}
		}
		c.Next()
	})

	funcMap := template.FuncMap{
		"contains": func(list []string, value string) bool {
			for _, item := range list {
				if item == value {
					return true
				}
			}
			return false
		},
	}
	engine.SetFuncMap(funcMap)

	if config.IsDebug() {
		files, err := s.getHtmlFiles()
		if err != nil {
			return nil, err
		}
		engine.LoadHTMLFiles(files...)
		engine.StaticFS(basePath+"assets", http.FS(os.DirFS("web/assets")))
	} else {
		tpl, err := s.getHtmlTemplate(funcMap)
		if err != nil {
			return nil, err
		}
		engine.SetHTMLTemplate(tpl)
		assets, err := fs.Sub(assetsFS, "assets")
		if err != nil {
			return nil, err
		}
		engine.StaticFS(basePath+"assets", http.FS(assets))
	}

	engine.Use(middleware.RedirectMiddleware(basePath))

	g := engine.Group(basePath)
	s.index = controller.NewIndexController(g, s.movieService)
	s.users = controller.NewUserController(g, s.userService, s.authService, s.cfg.SessionMaxAge)
	s.movie = controller.NewMovieController(g, s.movieService)

	engine.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"title":     "Not found",
			"message":   "Page not found",
			"base_path": basePath,
			"cur_ver":   config.GetVersion(),
		})
	})

	return engine, nil
}

// startTask schedules store maintenance: a daily WAL checkpoint.
func (s *Server) startTask() {
	if _, err := s.cron.AddFunc("@daily", func() {
		defer common.Recover("checkpoint job panic")
		if err := database.Checkpoint(); err != nil {
			logger.Warning("wal checkpoint failed:", err)
		}
	}); err != nil {
		logger.Warning("schedule checkpoint job:", err)
	}
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(s.cfg.Listen, strconv.Itoa(s.cfg.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	if s.cfg.CertFile != "" || s.cfg.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(s.cfg.CertFile, s.cfg.KeyFile)
		if err != nil {
			listener.Close()
			return err
		}
		listener = tls.NewListener(listener, &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		})
		logger.Infof("web server running HTTPS on %s", listener.Addr())
	} else {
		logger.Infof("web server running HTTP on %s", listener.Addr())
	}
	s.listener = listener

	s.startTask()

	s.httpServer = &http.Server{
		Handler: engine,
	}

	go func() {
		defer common.Recover("web server panic")
		if err := s.httpServer.Serve(s.listener); err != nil && err != http.ErrServerClosed {
			logger.Error("web server error:", err)
		}
	}()

	return nil
}

// Stop shuts down the server, its cron and the listener.
func (s *Server) Stop() error {
	if s.cron != nil {
		s.cron.Stop()
	}

	var err error
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = s.httpServer.Shutdown(ctx)
	}
	if s.listener != nil {
		// Shutdown already closes the listener; this covers the path where
		// Start failed before the http server existed.
		_ = s.listener.Close()
	}
	return err
}
