package controller

import (
	"errors"
	"net/http"

	"github.com/fengshuifortune/shop/web/service"

	"github.com/gin-gonic/gin"
)

// PageController serves the public content pages by slug plus the static
// services page.
type PageController struct {
	BaseController

	pageService *service.PageService
}

func NewPageController(g *gin.RouterGroup, pageService *service.PageService) *PageController {
	a := &PageController{pageService: pageService}
	a.initRouter(g)
	return a
}

func (a *PageController) initRouter(g *gin.RouterGroup) {
	g.GET("/p/:slug", a.page)
	g.GET("/services", a.services)
}

func (a *PageController) page(c *gin.Context) {
	page, err := a.pageService.PageBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.String(http.StatusNotFound, "Page not found")
			return
		}
		abortWithError(c, err)
		return
	}
	html(c, "page.html", page.Title, gin.H{"page": page})
}

func (a *PageController) services(c *gin.Context) {
	html(c, "services.html", "Services", nil)
}
