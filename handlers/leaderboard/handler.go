package leaderboard

import (
	"net/http"
	"sort"
	"time"

	"hostelhub-backend/db"
	"hostelhub-backend/models"

	"github.com/gin-gonic/gin"
)

type Entry struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Points         int      `json:"points"`
	Badges         []string `json:"badges"`
	IssuesReported int      `json:"issuesReported"`
	IssuesResolved int      `json:"issuesResolved"`
	Rank           int      `json:"rank"`

	commentsCount int
	memberSince   time.Time
}

const (
	pointsPerReport  = 10
	pointsPerResolve = 15
	pointsPerComment = 5
)

// @Summary Community leaderboard
// @Description Top 10 users ranked by engagement points with threshold badges
// @Tags leaderboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]Entry
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /leaderboard [get]
func GetLeaderboard(c *gin.Context) {
	if _, exists := c.Get("user_id"); !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var users []models.User
	if err := db.DB.Select("id, name, created_at").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving users: " + err.Error()})
		return
	}

	var issues []models.Issue
	if err := db.DB.Select("reporter_id, status").Find(&issues).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving issues: " + err.Error()})
		return
	}

	var comments []models.Comment
	if err := db.DB.Select("user_id").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving comments: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": Rank(users, issues, comments)})
}

// Rank computes points, badges and 1-based ranks, truncated to the top 10.
// Ties are broken deterministically by membership date (earlier first), then
// by id.
func Rank(users []models.User, issues []models.Issue, comments []models.Comment) []Entry {
	reported := map[string]int{}
	resolved := map[string]int{}
	for _, issue := range issues {
		reported[issue.ReporterID]++
		if issue.IsResolved() {
			resolved[issue.ReporterID]++
		}
	}

	commented := map[string]int{}
	for _, comment := range comments {
		commented[comment.UserID]++
	}

	entries := make([]Entry, 0, len(users))
	for _, user := range users {
		entry := Entry{
			ID:             user.ID,
			Name:           user.Name,
			IssuesReported: reported[user.ID],
			IssuesResolved: resolved[user.ID],
			commentsCount:  commented[user.ID],
			memberSince:    user.CreatedAt,
			Badges:         []string{},
		}
		entry.Points = entry.IssuesReported*pointsPerReport +
			entry.IssuesResolved*pointsPerResolve +
			entry.commentsCount*pointsPerComment

		if entry.IssuesReported >= 10 {
			entry.Badges = append(entry.Badges, "First Reporter")
		}
		if entry.IssuesResolved >= 5 {
			entry.Badges = append(entry.Badges, "Problem Solver")
		}
		if entry.commentsCount >= 10 {
			entry.Badges = append(entry.Badges, "Helpful Neighbor")
		}

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		if !entries[i].memberSince.Equal(entries[j].memberSince) {
			return entries[i].memberSince.Before(entries[j].memberSince)
		}
		return entries[i].ID < entries[j].ID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	if len(entries) > 10 {
		entries = entries[:10]
	}
	return entries
}
