package models

import "time"

type Role string

const (
	StudentRole    Role = "STUDENT"
	ManagementRole Role = "MANAGEMENT"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	Hostel    string    `json:"hostel"`
	Block     string    `json:"block"`
	Room      string    `json:"room"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserRegister struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     Role   `json:"role" binding:"required"`
	Hostel   string `json:"hostel"`
	Block    string `json:"block"`
	Room     string `json:"room"`
}

type UserLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r Role) Valid() bool {
	return r == StudentRole || r == ManagementRole
}
