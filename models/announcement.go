package models

import (
	"time"

	"github.com/lib/pq"
)

type AnnouncementType string

const (
	CleaningNotice    AnnouncementType = "CLEANING"
	PestControlNotice AnnouncementType = "PEST_CONTROL"
	DowntimeNotice    AnnouncementType = "DOWNTIME"
	MaintenanceNotice AnnouncementType = "MAINTENANCE"
	GeneralNotice     AnnouncementType = "GENERAL"
)

// Announcement is a management broadcast. Empty target arrays mean the
// announcement is unrestricted along that dimension.
type Announcement struct {
	ID            string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title         string           `json:"title"`
	Content       string           `json:"content"`
	Type          AnnouncementType `json:"type"`
	TargetHostels pq.StringArray   `json:"targetHostels" gorm:"column:target_hostels;type:text[]"`
	TargetBlocks  pq.StringArray   `json:"targetBlocks" gorm:"column:target_blocks;type:text[]"`
	TargetRoles   pq.StringArray   `json:"targetRoles" gorm:"column:target_roles;type:text[]"`
	AuthorID      string           `json:"authorId" gorm:"column:author_id"`
	CreatedAt     time.Time        `json:"createdAt"`
}

type AnnouncementCreate struct {
	Title         string           `json:"title" binding:"required,min=5"`
	Content       string           `json:"content" binding:"required,min=10"`
	Type          AnnouncementType `json:"type" binding:"required"`
	TargetHostels []string         `json:"targetHostels"`
	TargetBlocks  []string         `json:"targetBlocks"`
	TargetRoles   []string         `json:"targetRoles"`
}

func (t AnnouncementType) Valid() bool {
	switch t {
	case CleaningNotice, PestControlNotice, DowntimeNotice, MaintenanceNotice, GeneralNotice:
		return true
	}
	return false
}

// VisibleTo decides whether a user is in the announcement's audience.
// Management sees everything; a student must match the hostel filter and
// the role filter, each of which is open when empty.
func (a *Announcement) VisibleTo(u *User) bool {
	if u.Role == ManagementRole {
		return true
	}
	if len(a.TargetHostels) > 0 && !contains(a.TargetHostels, u.Hostel) {
		return false
	}
	if len(a.TargetRoles) > 0 && !contains(a.TargetRoles, string(StudentRole)) {
		return false
	}
	return true
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
