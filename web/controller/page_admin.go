package controller

import (
	"net/http"
	"strconv"

	"github.com/fengshuifortune/shop/web/service"

	"github.com/gin-gonic/gin"
)

// PageForm carries the CMS page fields.
type PageForm struct {
	Slug  string `json:"slug" form:"slug"`
	Title string `json:"title" form:"title"`
	Body  string `json:"body" form:"body"`
}

// PageAdminController handles content page management.
type PageAdminController struct {
	BaseController

	pageService *service.PageService
}

func NewPageAdminController(g *gin.RouterGroup, pageService *service.PageService) *PageAdminController {
	a := &PageAdminController{pageService: pageService}
	a.initRouter(g)
	return a
}

func (a *PageAdminController) initRouter(g *gin.RouterGroup) {
	g.GET("", a.list)
	g.POST("", a.create)
	g.POST("/:id/update", a.update)
	g.POST("/:id/delete", a.delete)
}

func (a *PageAdminController) renderList(c *gin.Context, status int, errMsg any) {
	pages, err := a.pageService.AllPages()
	if err != nil {
		abortWithError(c, err)
		return
	}
	htmlStatus(c, status, "admin_pages.html", "Manage Pages", gin.H{
		"pages": pages,
		"error": errMsg,
	})
}

func (a *PageAdminController) list(c *gin.Context) {
	a.renderList(c, http.StatusOK, nil)
}

func (a *PageAdminController) create(c *gin.Context) {
	var form PageForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderList(c, http.StatusBadRequest, "Invalid form data")
		return
	}
	if err := a.pageService.CreatePage(form.Slug, form.Title, form.Body); err != nil {
		if service.IsValidation(err) {
			a.renderList(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/pages")
}

func (a *PageAdminController) update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	var form PageForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderList(c, http.StatusBadRequest, "Invalid form data")
		return
	}
	if err := a.pageService.UpdatePage(id, form.Slug, form.Title, form.Body); err != nil {
		if service.IsValidation(err) {
			a.renderList(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/pages")
}

func (a *PageAdminController) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	if err := a.pageService.DeletePage(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/pages")
}
