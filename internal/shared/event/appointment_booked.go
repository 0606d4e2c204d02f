package event

import "time"

const AppointmentBookedDestination string = "appointment_booked"
const AppointmentBookedConsumerNotification string = "appointment_booked_notification"

type AppointmentBookedMessage struct {
	AppointmentID int64     `json:"appointment_id"`
	PatientID     int64     `json:"patient_id"`
	PatientName   string    `json:"patient_name"`
	PatientEmail  string    `json:"patient_email"`
	DentistName   string    `json:"dentist_name"`
	ScheduledAt   time.Time `json:"scheduled_at"`
}
