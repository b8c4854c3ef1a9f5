package model

import "time"

const (
	MinRating = 0
	MaxRating = 5

	AnonymousUserName  = "Anonymous"
	AnonymousUserEmail = "anonymous@shreeraagaswaadghar.com"
)

// Review keeps the legacy column names of the reviews table.
type Review struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName string    `gorm:"column:productname" json:"product_name"`
	UserEmail   string    `gorm:"column:useremail" json:"user_email"`
	UserName    string    `gorm:"column:username" json:"-"`
	Rating      int       `gorm:"column:rating" json:"rating"`
	Comment     string    `gorm:"column:comment" json:"comment"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
