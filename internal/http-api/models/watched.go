package models

// Watched links a user to a movie they have seen. The composite primary
// key keeps the pair unique at the schema level.
type Watched struct {
	UserID  int64 `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	MovieID int64 `json:"movie_id" gorm:"primaryKey;autoIncrement:false"`

	User  *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Movie *Movie `json:"-" gorm:"foreignKey:MovieID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Watched) TableName() string {
	return "watched"
}
