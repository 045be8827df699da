package models

// Comment belongs to exactly one post and one user. Comments are append-only:
// there is no edit or delete route, they only disappear when their parent
// post is deleted. Author is a display-name snapshot like Post.Author.
type Comment struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Author   string `json:"author" gorm:"type:varchar(250);not null"`
	AuthorID string `json:"authorId" gorm:"type:varchar(64);index;not null"`
	Body     string `json:"comment" gorm:"column:comment;type:varchar(250);not null"`
	PostID   uint   `json:"postId" gorm:"index;not null"`
}

func (Comment) TableName() string {
	return "comments"
}
