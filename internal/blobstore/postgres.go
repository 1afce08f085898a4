package blobstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserCollection is one persisted blob row.
type UserCollection struct {
	UserID     string         `gorm:"primaryKey;column:user_id"`
	Collection string         `gorm:"primaryKey"`
	Data       datatypes.JSON `gorm:"not null"`
	UpdatedAt  time.Time
}

func (UserCollection) TableName() string {
	return "user_collections"
}

type postgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) Load(ctx context.Context, userID, collection string) ([]byte, bool, error) {
	var row UserCollection
	err := s.db.WithContext(ctx).
		First(&row, "user_id = ? AND collection = ?", userID, collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(row.Data), true, nil
}

func (s *postgresStore) Save(ctx context.Context, userID, collection string, data []byte) error {
	row := UserCollection{
		UserID:     userID,
		Collection: collection,
		Data:       datatypes.JSON(data),
		UpdatedAt:  time.Now(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "collection"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&row).Error
}

func (s *postgresStore) Delete(ctx context.Context, userID, collection string) error {
	return s.db.WithContext(ctx).
		Delete(&UserCollection{}, "user_id = ? AND collection = ?", userID, collection).Error
}
