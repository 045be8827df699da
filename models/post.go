package models

// Post is a published article. Author and Date are snapshots taken when the
// post is created: Author copies the acting user's display name and is not
// kept in sync with later renames, and Date is a pre-formatted string, not a
// native timestamp.
type Post struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Title    string    `json:"title" gorm:"type:varchar(250);uniqueIndex;not null"`
	Subtitle string    `json:"subtitle" gorm:"type:varchar(250);not null"`
	Date     string    `json:"date" gorm:"type:varchar(250);not null"`
	Body     string    `json:"body" gorm:"type:text;not null"`
	Author   string    `json:"author" gorm:"type:varchar(250);not null"`
	ImgURL   string    `json:"imgUrl" gorm:"column:img_url;type:varchar(250);not null"`
	AuthorID string    `json:"authorId" gorm:"type:varchar(64);index;not null"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Post) TableName() string {
	return "blogs_post"
}
