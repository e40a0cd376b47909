package controller

import (
	"net/http"
	"strconv"

	"github.com/fengshuifortune/shop/web/service"

	"github.com/gin-gonic/gin"
)

// TipForm carries the CMS tip fields.
type TipForm struct {
	Title    string `json:"title" form:"title"`
	Body     string `json:"body" form:"body"`
	Date     string `json:"date" form:"date"`
	VideoUrl string `json:"videoUrl" form:"videoUrl"`
}

// TipAdminController handles daily tip management.
type TipAdminController struct {
	BaseController

	tipService *service.TipService
}

func NewTipAdminController(g *gin.RouterGroup, tipService *service.TipService) *TipAdminController {
	a := &TipAdminController{tipService: tipService}
	a.initRouter(g)
	return a
}

func (a *TipAdminController) initRouter(g *gin.RouterGroup) {
	g.GET("", a.list)
	g.POST("", a.create)
	g.POST("/:id/update", a.update)
	g.POST("/:id/delete", a.delete)
}

func (a *TipAdminController) renderList(c *gin.Context, status int, errMsg any) {
	tips, err := a.tipService.AllTips()
	if err != nil {
		abortWithError(c, err)
		return
	}
	htmlStatus(c, status, "admin_tips.html", "Manage Tips", gin.H{
		"tips":  tips,
		"error": errMsg,
	})
}

func (a *TipAdminController) list(c *gin.Context) {
	a.renderList(c, http.StatusOK, nil)
}

func (a *TipAdminController) create(c *gin.Context) {
	var form TipForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderList(c, http.StatusBadRequest, "Invalid form data")
		return
	}
	if err := a.tipService.CreateTip(form.Title, form.Body, form.Date, form.VideoUrl); err != nil {
		if service.IsValidation(err) {
			a.renderList(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/tips")
}

func (a *TipAdminController) update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	var form TipForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderList(c, http.StatusBadRequest, "Invalid form data")
		return
	}
	if err := a.tipService.UpdateTip(id, form.Title, form.Body, form.Date, form.VideoUrl); err != nil {
		if service.IsValidation(err) {
			a.renderList(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/tips")
}

func (a *TipAdminController) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	if err := a.tipService.DeleteTip(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/tips")
}
