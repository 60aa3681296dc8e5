package domain

import "time"

// Keeper is a registrant enrolled in events by a guardian. A keeper with
// ID == 0 is a draft that has never been persisted; drafts never take part
// in registration reconciliation.
type Keeper struct {
	ID           uint       `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	BirthDate    time.Time  `json:"birth_date"`
	Gender       string     `json:"gender"`
	GloveSize    string     `json:"glove_size"`
	ClothingSize string     `json:"clothing_size"`
	Vegetarian   bool       `json:"vegetarian"`
	MedicalNotes string     `json:"medical_notes"`
	RetiredAt    *time.Time `json:"retired_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (k Keeper) Persisted() bool {
	return k.ID != 0
}

func (k Keeper) FullName() string {
	return k.FirstName + " " + k.LastName
}

// Guardianship links a guardian to a keeper.
type Guardianship struct {
	GuardianID     uint   `json:"guardian_id"`
	KeeperID       uint   `json:"keeper_id"`
	Relationship   string `json:"relationship"`
	PrimaryContact bool   `json:"primary_contact"`
}
