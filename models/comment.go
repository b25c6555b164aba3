package models

import "time"

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	IssueID   string    `json:"issueId" gorm:"column:issue_id"`
	UserID    string    `json:"userId" gorm:"column:user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentCreate struct {
	Content string `json:"content" binding:"required"`
}

func (Comment) TableName() string {
	return "comments"
}
