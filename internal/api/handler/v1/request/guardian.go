package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var phoneExp = regexp.MustCompile(`^\+?[0-9 /-]{5,20}$`)

type UpdateContactRequest struct {
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
}

func (req *UpdateContactRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ContactName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Phone, validation.Required, validation.Match(phoneExp)),
	)
}
