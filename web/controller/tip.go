package controller

import (
	"github.com/fengshuifortune/shop/web/service"

	"github.com/gin-gonic/gin"
)

// TipController serves the public daily tips listing.
type TipController struct {
	BaseController

	tipService *service.TipService
}

func NewTipController(g *gin.RouterGroup, tipService *service.TipService) *TipController {
	a := &TipController{tipService: tipService}
	a.initRouter(g)
	return a
}

func (a *TipController) initRouter(g *gin.RouterGroup) {
	g.GET("/tips", a.tips)
}

func (a *TipController) tips(c *gin.Context) {
	tips, err := a.tipService.AllTips()
	if err != nil {
		abortWithError(c, err)
		return
	}
	html(c, "tips.html", "Daily Tips", gin.H{"tips": tips})
}
