package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot is the single table behind the gorm backend: one row per
// persisted collection.
type Slot struct {
	Name  string `gorm:"primaryKey;size:64"`
	Value string `gorm:"type:longtext"`
}

func (Slot) TableName() string {
	return "slots"
}

// GormBackend persists slots through a gorm handle (MySQL in
// deployment, SQLite locally).
type GormBackend struct {
	DB *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{DB: db}
}

func (g *GormBackend) Get(key string) ([]byte, bool, error) {
	var slot Slot
	err := g.DB.First(&slot, "name = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(slot.Value), true, nil
}

func (g *GormBackend) Put(key string, value []byte) error {
	return g.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Slot{Name: key, Value: string(value)}).Error
}
