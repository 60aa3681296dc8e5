package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Guardian{},
		&Keeper{},
		&Guardianship{},
		&Event{},
		&RegistrationHeader{},
		&ParticipationRecord{},
	)
}
