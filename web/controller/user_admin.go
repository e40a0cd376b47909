package controller

import (
	"net/http"
	"strconv"

	"github.com/fengshuifortune/shop/database/model"
	"github.com/fengshuifortune/shop/web/service"

	"github.com/gin-gonic/gin"
)

// UserForm carries the CMS user fields.
type UserForm struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

// UserAdminController handles account management. The capability gate admits
// admin and owner; the finer guards (admin-only admin assignment, no
// self-delete, no self-demotion) live in the access package and are applied
// by the user service before any write.
type UserAdminController struct {
	BaseController

	userService *service.UserService
}

func NewUserAdminController(g *gin.RouterGroup, userService *service.UserService) *UserAdminController {
	a := &UserAdminController{userService: userService}
	a.initRouter(g)
	return a
}

func (a *UserAdminController) initRouter(g *gin.RouterGroup) {
	g.GET("", a.list)
	g.POST("", a.create)
	g.POST("/:id/update", a.update)
	g.POST("/:id/delete", a.delete)
}

func (a *UserAdminController) renderList(c *gin.Context, status int, errMsg any) {
	users, err := a.userService.AllUsers()
	if err != nil {
		abortWithError(c, err)
		return
	}
	htmlStatus(c, status, "admin_users.html", "Manage Users", gin.H{
		"users": users,
		"roles": model.Roles(),
		"error": errMsg,
	})
}

func (a *UserAdminController) list(c *gin.Context) {
	a.renderList(c, http.StatusOK, nil)
}

func (a *UserAdminController) create(c *gin.Context) {
	var form UserForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderList(c, http.StatusBadRequest, "Invalid form data")
		return
	}
	err := a.userService.CreateUser(loggedUser(c), form.Name, form.Email, form.Password, model.Role(form.Role))
	if err != nil {
		if service.IsValidation(err) {
			a.renderList(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/users")
}

func (a *UserAdminController) update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	var form UserForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderList(c, http.StatusBadRequest, "Invalid form data")
		return
	}
	err = a.userService.UpdateUser(loggedUser(c), id, form.Name, form.Email, model.Role(form.Role))
	if err != nil {
		if service.IsValidation(err) {
			a.renderList(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/users")
}

func (a *UserAdminController) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	if err := a.userService.DeleteUser(loggedUser(c), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/users")
}
