package entity

import "time"

type Appointment struct {
	ID          int64
	PatientID   int64
	DentistName string
	Reason      string
	Status      AppointmentStatus
	ScheduledAt time.Time
	UpdatedAt   time.Time
}
