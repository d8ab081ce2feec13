package models

import "time"

type Personnel struct {
	Id           int64     `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Department   string    `gorm:"size:100;not null;index" json:"department"`
	FaceEncoding []float64 `gorm:"type:json;serializer:json" json:"face_encoding"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Personnel) TableName() string {
	return "personnel"
}

// NewPersonnel adalah payload POST /api/personnel/. FaceEncoding dikirim
// apa adanya dari textarea dashboard.
type NewPersonnel struct {
	Name         string `json:"name"`
	Department   string `json:"department"`
	FaceEncoding string `json:"face_encoding"`
}
