package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4()" json:"id"`
	GoogleID                    string    `gorm:"column:google_id;uniqueIndex" json:"-"`
	Email                       string    `gorm:"uniqueIndex" json:"email"`
	Name                        string    `json:"name"`
	EncryptedGoogleAccessToken  string    `gorm:"column:encrypted_google_access_token" json:"-"`
	EncryptedGoogleRefreshToken string    `gorm:"column:encrypted_google_refresh_token" json:"-"`
	CreatedAt                   time.Time `json:"created_at"`
	UpdatedAt                   time.Time `json:"updated_at"`
}
