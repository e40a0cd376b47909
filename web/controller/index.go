package controller

import (
	"net/http"
	"time"

	"github.com/fengshuifortune/shop/logger"
	"github.com/fengshuifortune/shop/web/service"
	"github.com/fengshuifortune/shop/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// RegisterForm represents the registration request structure. The role is
// deliberately absent; registration always produces a subscriber.
type RegisterForm struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// IndexController handles the home page and the login, registration and
// logout routes.
type IndexController struct {
	BaseController

	userService       *service.UserService
	tipService        *service.TipService
	productService    *service.ProductService
	navigationService *service.NavigationService
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup, userService *service.UserService, tipService *service.TipService,
	productService *service.ProductService, navigationService *service.NavigationService,
) *IndexController {
	a := &IndexController{
		userService:       userService,
		tipService:        tipService,
		productService:    productService,
		navigationService: navigationService,
	}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.POST("/logout", a.logout)
}

// index shows today's tip, the navigation bar and the latest products.
func (a *IndexController) index(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	tip, err := a.tipService.TipForDate(today)
	if err != nil {
		abortWithError(c, err)
		return
	}
	nav, err := a.navigationService.AllEntries()
	if err != nil {
		abortWithError(c, err)
		return
	}
	products, err := a.productService.LatestProducts(6)
	if err != nil {
		abortWithError(c, err)
		return
	}
	html(c, "index.html", "Feng Shui Fortune Shop", gin.H{
		"tip":      tip,
		"nav":      nav,
		"products": products,
	})
}

func (a *IndexController) registerPage(c *gin.Context) {
	html(c, "register.html", "Register", gin.H{"error": nil})
}

// register creates a subscriber account and logs it in immediately.
func (a *IndexController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		htmlStatus(c, http.StatusBadRequest, "register.html", "Register", gin.H{"error": "Invalid form data"})
		return
	}
	user, err := a.userService.Register(form.Name, form.Email, form.Password)
	if err != nil {
		if service.IsValidation(err) {
			htmlStatus(c, http.StatusBadRequest, "register.html", "Register", gin.H{"error": err.Error()})
			return
		}
		abortWithError(c, err)
		return
	}
	if err := session.SetLoginUser(c, user.Id); err != nil {
		logger.Warning("unable to save session:", err)
	}
	c.Redirect(http.StatusFound, "/account")
}

func (a *IndexController) loginPage(c *gin.Context) {
	html(c, "login.html", "Login", gin.H{"error": nil})
}

// login handles user authentication and session creation.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		htmlStatus(c, http.StatusBadRequest, "login.html", "Login", gin.H{"error": "Invalid form data"})
		return
	}
	user := a.userService.CheckUser(form.Email, form.Password)
	if user == nil {
		logger.Warningf("failed login for %q from %s", form.Email, getRemoteIp(c))
		htmlStatus(c, http.StatusUnauthorized, "login.html", "Login", gin.H{"error": "Invalid credentials"})
		return
	}
	if err := session.SetLoginUser(c, user.Id); err != nil {
		logger.Warning("unable to save session:", err)
	}
	logger.Infof("%s logged in from %s", user.Email, getRemoteIp(c))
	c.Redirect(http.StatusFound, "/account")
}

// logout clears the session so a reused cookie resolves to anonymous.
func (a *IndexController) logout(c *gin.Context) {
	if user := loggedUser(c); user != nil {
		logger.Infof("%s logged out", user.Email)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusFound, "/")
}
