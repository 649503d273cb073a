package controller

import (
	"errors"
	"net/http"

	"movielist/logger"
	"movielist/web/entity"
	"movielist/web/service"
	"movielist/web/session"
	"movielist/web/validation"

	"github.com/gin-gonic/gin"
)

// UserController handles registration, login and logout.
type UserController struct {
	BaseController

	userService *service.UserService
	authService *service.AuthService

	sessionMaxAge int // minutes
}

func NewUserController(g *gin.RouterGroup, userService *service.UserService, authService *service.AuthService, sessionMaxAge int) *UserController {
	a := &UserController{
		userService:   userService,
		authService:   authService,
		sessionMaxAge: sessionMaxAge,
	}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/users")

	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
}

func (a *UserController) registerPage(c *gin.Context) {
	html(c, "register.html", "Register", nil)
}

func (a *UserController) register(c *gin.Context) {
	var form entity.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderRegister(c, &form, []string{"Invalid form data"})
		return
	}

	_, err := a.userService.Register(&form)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			a.renderRegister(c, &form, verrs.All())
		case errors.Is(err, service.ErrEmailTaken):
			a.renderRegister(c, &form, []string{"Email already registered"})
		default:
			logger.Warning("register err:", err)
			a.renderRegister(c, &form, []string{"Server error"})
		}
		return
	}

	c.Redirect(http.StatusSeeOther, c.GetString("base_path")+"users/login")
}

func (a *UserController) renderRegister(c *gin.Context, form *entity.RegisterForm, errs []string) {
	html(c, "register.html", "Register", gin.H{
		"errors": errs,
		"form":   form,
	})
}

func (a *UserController) loginPage(c *gin.Context) {
	html(c, "login.html", "Log in", nil)
}

func (a *UserController) login(c *gin.Context) {
	var form entity.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderLogin(c, &form, []string{"Invalid form data"})
		return
	}
	if errs := form.CheckValid(); errs != nil {
		a.renderLogin(c, &form, errs.All())
		return
	}

	user, err := a.authService.Authenticate(form.Email, form.Password)
	if err != nil {
		// The two rejection reasons stay distinguishable in the logs; the
		// page shows one message so it does not leak which field was wrong.
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrInvalidCredentials):
			logger.Infof("failed login for %q from %s: %v", form.Email, getRemoteIp(c), err)
			a.renderLogin(c, &form, []string{"Invalid email or password"})
		default:
			logger.Warning("login err:", err)
			a.renderLogin(c, &form, []string{"Server error"})
		}
		return
	}

	if err := session.SetMaxAge(c, a.sessionMaxAge*60); err != nil {
		logger.Warning("unable to set session max age:", err)
	}
	if err := session.SetLoginToken(c, a.authService.ToToken(user)); err != nil {
		logger.Warning("unable to save session:", err)
		a.renderLogin(c, &form, []string{"Login failed"})
		return
	}

	logger.Infof("%s logged in from %s", user.Email, getRemoteIp(c))
	c.Redirect(http.StatusSeeOther, c.GetString("base_path")+"movies")
}

func (a *UserController) renderLogin(c *gin.Context, form *entity.LoginForm, errs []string) {
	html(c, "login.html", "Log in", gin.H{
		"errors": errs,
		"form":   form,
	})
}

func (a *UserController) logout(c *gin.Context) {
	if user := loginUser(c); user != nil {
		logger.Infof("%s logged out", user.Email)
	}
	if err := session.Clear(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusSeeOther, c.GetString("base_path")+"users/login")
}
