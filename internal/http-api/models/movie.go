package models

import "time"

type Movie struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CategoryID  int64     `json:"category_id" gorm:"not null"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:30;not null"`
	ReleaseDate time.Time `json:"release_date" gorm:"type:date;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Movie) TableName() string {
	return "movies"
}
