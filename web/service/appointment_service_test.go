package service

import (
	"testing"

	"github.com/fengshuifortune/shop/database/model"
)

func TestAnonymousBookingCreatesPending(t *testing.T) {
	db := newTestDB(t)
	svc := NewAppointmentService(db)

	appt, err := svc.Book(nil, BookingForm{
		Name:    "Walk In",
		Email:   "walkin@example.com",
		Service: "home-consultation",
		Date:    "2026-09-15",
		Time:    "10:00",
	})
	if err != nil {
		t.Fatalf("Book() error: %v", err)
	}
	if appt.Status != "pending" {
		t.Errorf("status = %s, expected pending", appt.Status)
	}
	if appt.UserId != nil {
		t.Errorf("anonymous booking attached to user %d", *appt.UserId)
	}
	if appt.Reference == "" {
		t.Error("reference code is empty")
	}
}

func TestLoggedInBookingFillsProfileFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewAppointmentService(db)
	user := createUser(t, db, "alice@example.com", model.RoleSubscriber)

	appt, err := svc.Book(user, BookingForm{
		Service: "office-consultation",
		Date:    "2026-09-20",
	})
	if err != nil {
		t.Fatalf("Book() error: %v", err)
	}
	if appt.UserId == nil || *appt.UserId != user.Id {
		t.Errorf("booking user id = %v, expected %d", appt.UserId, user.Id)
	}
	if appt.Name != user.Name || appt.Email != user.Email {
		t.Errorf("profile fields not filled: name=%q email=%q", appt.Name, appt.Email)
	}
}

func TestBookValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAppointmentService(db)

	if _, err := svc.Book(nil, BookingForm{Date: "2026-09-15"}); !IsValidation(err) {
		t.Errorf("missing service: error = %v, expected validation failure", err)
	}
	if _, err := svc.Book(nil, BookingForm{Service: "home-consultation"}); !IsValidation(err) {
		t.Errorf("missing date: error = %v, expected validation failure", err)
	}
}

func TestAppointmentsForUserNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewAppointmentService(db)
	user := createUser(t, db, "alice@example.com", model.RoleSubscriber)

	for _, date := range []string{"2026-09-01", "2026-09-02", "2026-09-03"} {
		if _, err := svc.Book(user, BookingForm{Service: "home-consultation", Date: date}); err != nil {
			t.Fatalf("Book() error: %v", err)
		}
	}
	if _, err := svc.Book(nil, BookingForm{Service: "home-consultation", Date: "2026-09-04"}); err != nil {
		t.Fatalf("Book() error: %v", err)
	}

	appointments, err := svc.AppointmentsForUser(user.Id)
	if err != nil {
		t.Fatalf("AppointmentsForUser() error: %v", err)
	}
	if len(appointments) != 3 {
		t.Fatalf("appointments = %d, expected the user's 3", len(appointments))
	}
	if appointments[0].Date != "2026-09-03" {
		t.Errorf("first appointment date = %s, expected newest first", appointments[0].Date)
	}
}
