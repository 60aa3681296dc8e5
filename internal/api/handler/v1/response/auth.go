package response

import "github.com/keeperschule/booking-api/internal/domain"

type LoginResponse struct {
	Token    string          `json:"token"`
	Guardian domain.Guardian `json:"guardian"`
}
