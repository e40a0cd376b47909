package controller

import (
	"net/http"

	"github.com/fengshuifortune/shop/web/service"

	"github.com/gin-gonic/gin"
)

// BookingController serves the appointment booking form. Booking is open to
// any visitor, authenticated or not.
type BookingController struct {
	BaseController

	appointmentService *service.AppointmentService
}

func NewBookingController(g *gin.RouterGroup, appointmentService *service.AppointmentService) *BookingController {
	a := &BookingController{appointmentService: appointmentService}
	a.initRouter(g)
	return a
}

func (a *BookingController) initRouter(g *gin.RouterGroup) {
	g.GET("/book", a.bookPage)
	g.POST("/book", a.book)
}

func (a *BookingController) bookPage(c *gin.Context) {
	html(c, "book.html", "Book Appointment", nil)
}

func (a *BookingController) book(c *gin.Context) {
	var form service.BookingForm
	if err := c.ShouldBind(&form); err != nil {
		htmlStatus(c, http.StatusBadRequest, "book.html", "Book Appointment", gin.H{"error": "Invalid form data"})
		return
	}
	appt, err := a.appointmentService.Book(loggedUser(c), form)
	if err != nil {
		if service.IsValidation(err) {
			htmlStatus(c, http.StatusBadRequest, "book.html", "Book Appointment", gin.H{"error": err.Error()})
			return
		}
		abortWithError(c, err)
		return
	}
	html(c, "book_success.html", "Booking Received", gin.H{"appointment": appt})
}
