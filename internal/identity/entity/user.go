package entity

import "time"

type User struct {
	ID        int64
	Username  string
	Email     string
	Phone     string
	FullName  string
	Role      string
	Password  string // hashed
	UpdatedAt time.Time
}

type UserCredentialInfo struct {
	ID       int64
	Email    string
	Role     string
	Password string
}
