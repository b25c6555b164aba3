package models

import (
	"time"

	"github.com/lib/pq"
)

type LostFoundType string

const (
	LostItem  LostFoundType = "LOST"
	FoundItem LostFoundType = "FOUND"
)

type LostFoundStatus string

const (
	ActiveItem  LostFoundStatus = "ACTIVE"
	ClaimedItem LostFoundStatus = "CLAIMED"
	ClosedItem  LostFoundStatus = "CLOSED"
)

type ClaimStatus string

const (
	ClaimPending   ClaimStatus = "PENDING"
	ClaimConfirmed ClaimStatus = "CONFIRMED"
)

type LostFound struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Type        LostFoundType   `json:"type"`
	ItemName    string          `json:"itemName" gorm:"column:item_name"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Date        time.Time       `json:"date"`
	ContactInfo string          `json:"contactInfo,omitempty" gorm:"column:contact_info"`
	ImageUrls   pq.StringArray  `json:"imageUrls" gorm:"column:image_urls;type:text[]"`
	Status      LostFoundStatus `json:"status"`
	ClaimStatus *ClaimStatus    `json:"claimStatus,omitempty" gorm:"column:claim_status"`
	ReporterID  string          `json:"reporterId" gorm:"column:reporter_id"`
	ClaimedBy   *string         `json:"claimedBy,omitempty" gorm:"column:claimed_by"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type LostFoundCreate struct {
	Type        LostFoundType `json:"type" binding:"required"`
	ItemName    string        `json:"itemName" binding:"required,min=2"`
	Description string        `json:"description" binding:"required,min=10"`
	Location    string        `json:"location" binding:"required,min=2"`
	ContactInfo string        `json:"contactInfo"`
	Date        string        `json:"date" binding:"required"`
	ImageUrls   []string      `json:"imageUrls"`
}

type ClaimResponse struct {
	Decision string `json:"decision" binding:"required,oneof=confirm reject"`
}

func (t LostFoundType) Valid() bool {
	return t == LostItem || t == FoundItem
}

// CanBeClaimedBy centralizes the claim rule: the item must still be ACTIVE
// and the claimant must not be the reporter.
func (l *LostFound) CanBeClaimedBy(userID string) (active bool, selfClaim bool) {
	return l.Status == ActiveItem, l.ReporterID == userID
}

func (LostFound) TableName() string {
	return "lost_found_items"
}
