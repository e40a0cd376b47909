package service

import (
	"github.com/fengshuifortune/shop/database/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentService handles booking requests. Any visitor may book; there
// is no update or delete surface.
type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

// BookingForm carries the booking request fields.
type BookingForm struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Service string `json:"service" form:"service"`
	Date    string `json:"date" form:"date"`
	Time    string `json:"time" form:"time"`
	Message string `json:"message" form:"message"`
}

// Book records an appointment with status pending and an opaque reference
// code. A logged-in booker is attached by id, and their profile fills in
// name or email the form left blank.
func (s *AppointmentService) Book(user *model.User, form BookingForm) (*model.Appointment, error) {
	if form.Service == "" || form.Date == "" {
		return nil, newValidationError("Service and date required")
	}
	appt := &model.Appointment{
		Reference: uuid.NewString(),
		Name:      form.Name,
		Email:     form.Email,
		Service:   form.Service,
		Date:      form.Date,
		Time:      form.Time,
		Message:   form.Message,
		Status:    "pending",
	}
	if user != nil {
		id := user.Id
		appt.UserId = &id
		if appt.Name == "" {
			appt.Name = user.Name
		}
		if appt.Email == "" {
			appt.Email = user.Email
		}
	}
	if err := s.db.Create(appt).Error; err != nil {
		return nil, err
	}
	return appt, nil
}

// AppointmentsForUser lists a user's booking history, newest first.
func (s *AppointmentService) AppointmentsForUser(userId int) ([]model.Appointment, error) {
	appointments := make([]model.Appointment, 0)
	err := s.db.Model(model.Appointment{}).
		Where("user_id = ?", userId).
		Order("id desc").
		Find(&appointments).
		Error
	return appointments, err
}
