package controller

import (
	"github.com/fengshuifortune/shop/web/access"
	"github.com/fengshuifortune/shop/web/middleware"
	"github.com/fengshuifortune/shop/web/service"

	"github.com/gin-gonic/gin"
)

// CMSController mounts the admin area. Every resource group carries the
// capability gate the policy table assigns it; the gate runs before any
// handler, so a denied request performs no work.
type CMSController struct {
	BaseController

	productAdmin    *ProductAdminController
	tipAdmin        *TipAdminController
	pageAdmin       *PageAdminController
	navigationAdmin *NavigationAdminController
	userAdmin       *UserAdminController
	settingAdmin    *SettingAdminController
}

func NewCMSController(g *gin.RouterGroup, userService *service.UserService, productService *service.ProductService,
	tipService *service.TipService, pageService *service.PageService,
	navigationService *service.NavigationService, settingService *service.SettingService,
) *CMSController {
	a := &CMSController{}

	g = g.Group("/admin")
	g.GET("/", middleware.RequireCapability(access.ViewAdmin), a.index)

	a.productAdmin = NewProductAdminController(
		g.Group("/products", middleware.RequireCapability(access.ManageProducts)), productService)
	a.tipAdmin = NewTipAdminController(
		g.Group("/tips", middleware.RequireCapability(access.ManageContent)), tipService)
	a.pageAdmin = NewPageAdminController(
		g.Group("/pages", middleware.RequireCapability(access.ManageContent)), pageService)
	a.navigationAdmin = NewNavigationAdminController(
		g.Group("/navigation", middleware.RequireCapability(access.ManageSystem)), navigationService)
	a.userAdmin = NewUserAdminController(
		g.Group("/users", middleware.RequireCapability(access.ManageUsers)), userService)
	a.settingAdmin = NewSettingAdminController(
		g.Group("/settings", middleware.RequireCapability(access.ManageSystem)), settingService)

	return a
}

func (a *CMSController) index(c *gin.Context) {
	html(c, "admin_index.html", "CMS", nil)
}
