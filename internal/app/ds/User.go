package ds

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"lastName"`
	Username  string    `gorm:"type:varchar(100);unique;not null" json:"username"`
	Email     string    `gorm:"type:varchar(120);unique;not null" json:"email"`
	Password  string    `gorm:"column:password_hash;type:varchar(200);not null" json:"-"`
	Age       int       `gorm:"not null" json:"age"`
	Gender    string    `gorm:"type:varchar(10);not null" json:"gender"`
	IsAdmin   bool      `gorm:"type:boolean;default:false" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// FullName is the display name used in admin listings.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
