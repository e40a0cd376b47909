package controller

import (
	"net/http"
	"strconv"

	"github.com/fengshuifortune/shop/web/service"

	"github.com/gin-gonic/gin"
)

// ProductForm carries the CMS product fields.
type ProductForm struct {
	Name        string  `json:"name" form:"name"`
	Description string  `json:"description" form:"description"`
	Price       float64 `json:"price" form:"price"`
	Stock       int     `json:"stock" form:"stock"`
	ImageUrl    string  `json:"imageUrl" form:"imageUrl"`
}

// ProductAdminController handles catalog management.
type ProductAdminController struct {
	BaseController

	productService *service.ProductService
}

func NewProductAdminController(g *gin.RouterGroup, productService *service.ProductService) *ProductAdminController {
	a := &ProductAdminController{productService: productService}
	a.initRouter(g)
	return a
}

func (a *ProductAdminController) initRouter(g *gin.RouterGroup) {
	g.GET("", a.list)
	g.POST("", a.create)
	g.POST("/:id/update", a.update)
	g.POST("/:id/delete", a.delete)
}

func (a *ProductAdminController) renderList(c *gin.Context, status int, errMsg any) {
	products, err := a.productService.AllProducts()
	if err != nil {
		abortWithError(c, err)
		return
	}
	htmlStatus(c, status, "admin_products.html", "Manage Products", gin.H{
		"products": products,
		"error":    errMsg,
	})
}

func (a *ProductAdminController) list(c *gin.Context) {
	a.renderList(c, http.StatusOK, nil)
}

func (a *ProductAdminController) create(c *gin.Context) {
	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderList(c, http.StatusBadRequest, "Invalid form data")
		return
	}
	err := a.productService.CreateProduct(form.Name, form.Description, form.Price, form.Stock, form.ImageUrl)
	if err != nil {
		if service.IsValidation(err) {
			a.renderList(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/products")
}

func (a *ProductAdminController) update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderList(c, http.StatusBadRequest, "Invalid form data")
		return
	}
	err = a.productService.UpdateProduct(id, form.Name, form.Description, form.Price, form.Stock, form.ImageUrl)
	if err != nil {
		if service.IsValidation(err) {
			a.renderList(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/products")
}

func (a *ProductAdminController) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	if err := a.productService.DeleteProduct(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/products")
}
