package controller

import (
	"github.com/fengshuifortune/shop/web/service"

	"github.com/gin-gonic/gin"
)

// ProductController serves the public catalog.
type ProductController struct {
	BaseController

	productService *service.ProductService
}

func NewProductController(g *gin.RouterGroup, productService *service.ProductService) *ProductController {
	a := &ProductController{productService: productService}
	a.initRouter(g)
	return a
}

func (a *ProductController) initRouter(g *gin.RouterGroup) {
	g.GET("/products", a.products)
}

func (a *ProductController) products(c *gin.Context) {
	products, err := a.productService.AllProducts()
	if err != nil {
		abortWithError(c, err)
		return
	}
	html(c, "products.html", "Shop", gin.H{"products": products})
}
