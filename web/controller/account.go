package controller

import (
	"net/http"
	"strconv"

	"github.com/fengshuifortune/shop/web/service"

	"github.com/gin-gonic/gin"
)

// AccountController serves the account page and the favorites toggle.
type AccountController struct {
	BaseController

	userService        *service.UserService
	appointmentService *service.AppointmentService
}

func NewAccountController(g *gin.RouterGroup, userService *service.UserService,
	appointmentService *service.AppointmentService,
) *AccountController {
	a := &AccountController{
		userService:        userService,
		appointmentService: appointmentService,
	}
	a.initRouter(g)
	return a
}

func (a *AccountController) initRouter(g *gin.RouterGroup) {
	g.GET("/account", a.checkLogin, a.account)
	g.POST("/favorites/toggle", a.toggleFavorite)
}

func (a *AccountController) account(c *gin.Context) {
	user := loggedUser(c)
	products, err := a.userService.FavoriteProducts(user)
	if err != nil {
		abortWithError(c, err)
		return
	}
	appointments, err := a.appointmentService.AppointmentsForUser(user.Id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	html(c, "account.html", "My Account", gin.H{
		"products":     products,
		"appointments": appointments,
	})
}

// toggleFavorite flips membership of a product id in the user's favorites
// set. Unauthenticated callers get a 401 and no state changes.
func (a *AccountController) toggleFavorite(c *gin.Context) {
	user := loggedUser(c)
	if user == nil {
		pureJsonMsg(c, http.StatusUnauthorized, false, "Unauthorized")
		return
	}
	var body struct {
		ProductId any `json:"productId" form:"productId"`
	}
	if err := c.ShouldBind(&body); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid request body")
		return
	}
	productId, ok := toInt(body.ProductId)
	if !ok {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid product id")
		return
	}
	favorites, err := a.userService.ToggleFavorite(user.Id, productId)
	if err != nil {
		abortWithError(c, err)
		return
	}
	jsonObj(c, favorites, nil)
}

// toInt coerces the productId field, which clients send as either a JSON
// number or a string.
func toInt(v any) (int, bool) {
	switch value := v.(type) {
	case float64:
		return int(value), true
	case string:
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
