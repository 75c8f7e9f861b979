package database

import (
	"castingfy/internal/models"

	"gorm.io/gorm"
)

// Migrate runs AutoMigrate for every persisted entity. Schema
// evolution beyond this is managed outside the codebase.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.TalentProfile{},
		&models.ProducerProfile{},
		&models.Project{},
		&models.ProjectRole{},
		&models.RoleCompensation{},
		&models.PrescreenQuestion{},
		&models.Connection{},
		&models.Conversation{},
		&models.Message{},
		&models.GalleryImage{},
		&models.Review{},
		&models.Favorite{},
		&models.Notification{},
	)
}
