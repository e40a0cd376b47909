package controller

import (
	"net/http"
	"strconv"

	"github.com/fengshuifortune/shop/web/service"

	"github.com/gin-gonic/gin"
)

// NavigationForm carries the CMS navigation fields. The order index is
// assigned by the service, never by the caller.
type NavigationForm struct {
	Label string `json:"label" form:"label"`
	Url   string `json:"url" form:"url"`
}

// NavigationAdminController handles navigation bar management. Entries are
// created and deleted only; there is no update surface.
type NavigationAdminController struct {
	BaseController

	navigationService *service.NavigationService
}

func NewNavigationAdminController(g *gin.RouterGroup, navigationService *service.NavigationService) *NavigationAdminController {
	a := &NavigationAdminController{navigationService: navigationService}
	a.initRouter(g)
	return a
}

func (a *NavigationAdminController) initRouter(g *gin.RouterGroup) {
	g.GET("", a.list)
	g.POST("", a.create)
	g.POST("/:id/delete", a.delete)
}

func (a *NavigationAdminController) renderList(c *gin.Context, status int, errMsg any) {
	nav, err := a.navigationService.AllEntries()
	if err != nil {
		abortWithError(c, err)
		return
	}
	htmlStatus(c, status, "admin_navigation.html", "Manage Navigation", gin.H{
		"nav":   nav,
		"error": errMsg,
	})
}

func (a *NavigationAdminController) list(c *gin.Context) {
	a.renderList(c, http.StatusOK, nil)
}

func (a *NavigationAdminController) create(c *gin.Context) {
	var form NavigationForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderList(c, http.StatusBadRequest, "Invalid form data")
		return
	}
	if err := a.navigationService.CreateEntry(form.Label, form.Url); err != nil {
		if service.IsValidation(err) {
			a.renderList(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/navigation")
}

func (a *NavigationAdminController) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	if err := a.navigationService.DeleteEntry(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/navigation")
}
