package models

import (
	"time"

	"github.com/lib/pq"
)

// IssueCategory enum
type IssueCategory string

const (
	Plumbing    IssueCategory = "PLUMBING"
	Electrical  IssueCategory = "ELECTRICAL"
	Cleanliness IssueCategory = "CLEANLINESS"
	Internet    IssueCategory = "INTERNET"
	Furniture   IssueCategory = "FURNITURE"
	Security    IssueCategory = "SECURITY"
	OtherIssue  IssueCategory = "OTHER"
)

// IssuePriority enum
type IssuePriority string

const (
	LowPriority       IssuePriority = "LOW"
	MediumPriority    IssuePriority = "MEDIUM"
	HighPriority      IssuePriority = "HIGH"
	EmergencyPriority IssuePriority = "EMERGENCY"
)

// IssueStatus enum
type IssueStatus string

const (
	Reported   IssueStatus = "REPORTED"
	Assigned   IssueStatus = "ASSIGNED"
	InProgress IssueStatus = "IN_PROGRESS"
	Resolved   IssueStatus = "RESOLVED"
	Closed     IssueStatus = "CLOSED"
)

// IssueVisibility enum
type IssueVisibility string

const (
	PublicIssue  IssueVisibility = "PUBLIC"
	PrivateIssue IssueVisibility = "PRIVATE"
)

// Issue represents a maintenance issue reported by a resident
type Issue struct {
	ID           string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Category     IssueCategory   `json:"category"`
	Priority     IssuePriority   `json:"priority"`
	Status       IssueStatus     `json:"status"`
	Visibility   IssueVisibility `json:"visibility"`
	Hostel       string          `json:"hostel"`
	Block        string          `json:"block"`
	Room         string          `json:"room"`
	ReporterID   string          `json:"reporterId" gorm:"column:reporter_id"`
	AssignedTo   *string         `json:"assignedTo,omitempty" gorm:"column:assigned_to"`
	MediaUrls    pq.StringArray  `json:"mediaUrls" gorm:"column:media_urls;type:text[]"`
	ReportedAt   time.Time       `json:"reportedAt" gorm:"column:reported_at"`
	AssignedAt   *time.Time      `json:"assignedAt,omitempty" gorm:"column:assigned_at"`
	InProgressAt *time.Time      `json:"inProgressAt,omitempty" gorm:"column:in_progress_at"`
	ResolvedAt   *time.Time      `json:"resolvedAt,omitempty" gorm:"column:resolved_at"`
	ClosedAt     *time.Time      `json:"closedAt,omitempty" gorm:"column:closed_at"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type IssueCreate struct {
	Title       string          `json:"title" binding:"required,min=5"`
	Description string          `json:"description" binding:"required,min=10"`
	Category    IssueCategory   `json:"category" binding:"required"`
	Priority    IssuePriority   `json:"priority" binding:"required"`
	Visibility  IssueVisibility `json:"visibility" binding:"required"`
	MediaUrls   []string        `json:"mediaUrls"`
}

type IssueStatusUpdate struct {
	Status     IssueStatus `json:"status"`
	AssignedTo *string     `json:"assignedTo"`
}

func (c IssueCategory) Valid() bool {
	switch c {
	case Plumbing, Electrical, Cleanliness, Internet, Furniture, Security, OtherIssue:
		return true
	}
	return false
}

func (p IssuePriority) Valid() bool {
	switch p {
	case LowPriority, MediumPriority, HighPriority, EmergencyPriority:
		return true
	}
	return false
}

func (s IssueStatus) Valid() bool {
	switch s {
	case Reported, Assigned, InProgress, Resolved, Closed:
		return true
	}
	return false
}

func (v IssueVisibility) Valid() bool {
	return v == PublicIssue || v == PrivateIssue
}

// StatusTimestampColumn maps each status to the column stamped the first
// time an issue enters it. REPORTED has no entry: reported_at is set at
// creation and never touched again.
var StatusTimestampColumn = map[IssueStatus]string{
	Assigned:   "assigned_at",
	InProgress: "in_progress_at",
	Resolved:   "resolved_at",
	Closed:     "closed_at",
}

// PendingStatuses and ResolvedStatuses partition the lifecycle for the
// analytics counters.
var (
	PendingStatuses  = []IssueStatus{Reported, Assigned, InProgress}
	ResolvedStatuses = []IssueStatus{Resolved, Closed}
)

// PriorityOrderExpr ranks priorities for list ordering, most severe first.
const PriorityOrderExpr = "CASE priority WHEN 'EMERGENCY' THEN 4 WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 ELSE 1 END DESC"

// CanBeReadBy is the single read-authorization rule for issues. Management
// reads everything; a student reads public issues and their own.
func (i *Issue) CanBeReadBy(userID string, role Role) bool {
	if role == ManagementRole {
		return true
	}
	return i.Visibility == PublicIssue || i.ReporterID == userID
}

func (i *Issue) IsResolved() bool {
	return i.Status == Resolved || i.Status == Closed
}
