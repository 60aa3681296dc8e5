package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateKeeperRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	BirthDate      string `json:"birth_date"` // "2006-01-02"
	Gender         string `json:"gender"`
	GloveSize      string `json:"glove_size"`
	ClothingSize   string `json:"clothing_size"`
	Vegetarian     bool   `json:"vegetarian"`
	MedicalNotes   string `json:"medical_notes"`
	Relationship   string `json:"relationship"`
	PrimaryContact bool   `json:"primary_contact"`
}

func (req *CreateKeeperRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.LastName, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.BirthDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.Gender, validation.In("male", "female", "other")),
		validation.Field(&req.MedicalNotes, validation.Length(0, 1000)),
		validation.Field(&req.Relationship, validation.Required, validation.In("mother", "father", "grandparent", "other")),
	)
}

func (req *CreateKeeperRequest) ParsedBirthDate() time.Time {
	parsed, _ := time.Parse("2006-01-02", req.BirthDate)
	return parsed
}

type UpdateKeeperRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	BirthDate    string `json:"birth_date"`
	Gender       string `json:"gender"`
	GloveSize    string `json:"glove_size"`
	ClothingSize string `json:"clothing_size"`
	Vegetarian   bool   `json:"vegetarian"`
	MedicalNotes string `json:"medical_notes"`
}

func (req *UpdateKeeperRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.LastName, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.BirthDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.Gender, validation.In("male", "female", "other")),
		validation.Field(&req.MedicalNotes, validation.Length(0, 1000)),
	)
}

func (req *UpdateKeeperRequest) ParsedBirthDate() time.Time {
	parsed, _ := time.Parse("2006-01-02", req.BirthDate)
	return parsed
}
