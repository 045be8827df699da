package models

// User roles. The first admin is seeded out of band; registration only
// mints an admin when the acting user is already one.
const (
	RoleAdmin     = "admin"
	RoleCommentor = "commentor"
)

// User represents a registered account. UserID is the externally visible
// identifier: posts and comments reference it instead of the numeric
// primary key, so public links never leak row ids.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"userId" gorm:"type:varchar(64);uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"type:varchar(100);not null"`
	Role         string    `json:"role" gorm:"type:varchar(100);not null;default:commentor"`
	PasswordHash string    `json:"-" gorm:"type:varchar(1000);not null"`
	Posts        []Post    `json:"-" gorm:"foreignKey:AuthorID;references:UserID"`
	Comments     []Comment `json:"-" gorm:"foreignKey:AuthorID;references:UserID"`
}

func (User) TableName() string {
	return "users_data"
}

// IsAdmin is nil-safe so an anonymous (nil) actor can be checked directly.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
