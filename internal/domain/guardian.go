package domain

import "time"

const (
	RoleGuardian = "guardian"
	RoleAdmin    = "admin"
)

type Guardian struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	Role        string    `json:"role"`
	ContactName string    `json:"contact_name"`
	Phone       string    `json:"phone"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContactSnapshot is the guardian contact data frozen onto a registration
// header at creation time.
type ContactSnapshot struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (g Guardian) Snapshot() ContactSnapshot {
	return ContactSnapshot{
		Name:  g.ContactName,
		Email: g.Email,
		Phone: g.Phone,
	}
}
