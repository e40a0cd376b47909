package controller

import (
	"net/http"

	"github.com/fengshuifortune/shop/web/entity"
	"github.com/fengshuifortune/shop/web/service"

	"github.com/gin-gonic/gin"
)

// SettingAdminController handles the site settings form. Updates are upserts
// over the fixed key set; binding to entity.SiteSettings drops any unknown
// keys a caller submits.
type SettingAdminController struct {
	BaseController

	settingService *service.SettingService
}

func NewSettingAdminController(g *gin.RouterGroup, settingService *service.SettingService) *SettingAdminController {
	a := &SettingAdminController{settingService: settingService}
	a.initRouter(g)
	return a
}

func (a *SettingAdminController) initRouter(g *gin.RouterGroup) {
	g.GET("", a.settings)
	g.POST("", a.update)
}

func (a *SettingAdminController) settings(c *gin.Context) {
	settings, err := a.settingService.GetAllSettings()
	if err != nil {
		abortWithError(c, err)
		return
	}
	html(c, "admin_settings.html", "Site Settings", gin.H{"settings": settings})
}

func (a *SettingAdminController) update(c *gin.Context) {
	var form entity.SiteSettings
	if err := c.ShouldBind(&form); err != nil {
		settings, loadErr := a.settingService.GetAllSettings()
		if loadErr != nil {
			abortWithError(c, loadErr)
			return
		}
		htmlStatus(c, http.StatusBadRequest, "admin_settings.html", "Site Settings", gin.H{
			"settings": settings,
			"error":    "Invalid form data",
		})
		return
	}
	if err := a.settingService.UpdateAllSettings(&form); err != nil {
		abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/settings")
}
