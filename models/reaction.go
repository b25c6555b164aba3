package models

import "time"

type ReactionType string

const (
	Upvote ReactionType = "UPVOTE"
	Like   ReactionType = "LIKE"
	Urgent ReactionType = "URGENT"
	MeToo  ReactionType = "ME_TOO"
)

// Reaction is one user's single reaction on an issue. The composite unique
// index makes the one-reaction-per-user-per-issue rule a schema invariant,
// not just an application-level check.
type Reaction struct {
	ID        string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	IssueID   string       `json:"issueId" gorm:"column:issue_id;uniqueIndex:idx_reactions_issue_user"`
	UserID    string       `json:"userId" gorm:"column:user_id;uniqueIndex:idx_reactions_issue_user"`
	Type      ReactionType `json:"type"`
	CreatedAt time.Time    `json:"createdAt"`
}

type ReactionCreate struct {
	Type ReactionType `json:"type" binding:"required"`
}

func (t ReactionType) Valid() bool {
	switch t {
	case Upvote, Like, Urgent, MeToo:
		return true
	}
	return false
}
