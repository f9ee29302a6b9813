package repository

type User struct {
	Username     string `gorm:"primaryKey;size:20"`
	PasswordHash string `gorm:"not null"`
	Email        string `gorm:"size:50;uniqueIndex;not null"`
	FirstName    string `gorm:"size:30;not null"`
	LastName     string `gorm:"size:30;not null"`
}

type Feedback struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"size:100;not null"`
	Content  string `gorm:"type:text;not null"`
	Username string `gorm:"size:20;index;not null"` // owner reference
}
