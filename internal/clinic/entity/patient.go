package entity

import "time"

type Patient struct {
	ID        int64
	FullName  string
	Email     string
	Phone     string
	BirthDate time.Time
	Address   string
	Notes     string
	UpdatedAt time.Time
}

type PatientListFilter struct {
	Search string
	Page   int32
	Limit  int32
}

type DentalRecord struct {
	ID            int64
	PatientID     int64
	Diagnosis     string
	Treatment     string
	AttachmentKey string
	UpdatedAt     time.Time
}
