package db_models

import "github.com/google/uuid"

type Child struct {
	BaseModel
	Name     string    `json:"name"`
	ParentID uuid.UUID `gorm:"type:uuid;index" json:"parentId"`
	Gems     int       `gorm:"default:0" json:"gems"`
}
