package analytics

import (
	"math"
	"net/http"
	"time"

	"hostelhub-backend/ai"
	"hostelhub-backend/db"
	"hostelhub-backend/models"

	"github.com/gin-gonic/gin"
)

type chartPoint struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type timedIssue struct {
	ReportedAt time.Time
	AssignedAt *time.Time
	ResolvedAt *time.Time
}

// @Summary Analytics overview
// @Description Management-only aggregated metrics over issues, announcements, lost & found and users
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /analytics [get]
func GetOverview(c *gin.Context) {
	role, _ := c.Get("role")
	if role != string(models.ManagementRole) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: management role required"})
		return
	}

	var totalIssues, totalAnnouncements, totalLostFound, totalUsers int64
	db.DB.Model(&models.Issue{}).Count(&totalIssues)
	db.DB.Model(&models.Announcement{}).Count(&totalAnnouncements)
	db.DB.Model(&models.LostFound{}).Count(&totalLostFound)
	db.DB.Model(&models.User{}).Count(&totalUsers)

	issuesByStatus, err := groupCount("status")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error grouping by status"})
		return
	}
	issuesByCategory, err := groupCount("category")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error grouping by category"})
		return
	}
	issuesByPriority, err := groupCount("priority")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error grouping by priority"})
		return
	}
	issuesByHostel, err := groupCount("hostel")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error grouping by hostel"})
		return
	}

	// Response time: issues that were never assigned are excluded, not
	// counted as zero. Same rule for resolution time.
	var assigned []timedIssue
	db.DB.Model(&models.Issue{}).
		Select("reported_at, assigned_at").
		Where("assigned_at IS NOT NULL").
		Scan(&assigned)

	var resolved []timedIssue
	db.DB.Model(&models.Issue{}).
		Select("reported_at, resolved_at").
		Where("status IN ? AND resolved_at IS NOT NULL", models.ResolvedStatuses).
		Scan(&resolved)

	avgResponseTime := averageHours(assigned, func(i timedIssue) *time.Time { return i.AssignedAt })
	avgResolutionTime := averageHours(resolved, func(i timedIssue) *time.Time { return i.ResolvedAt })

	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	var recentIssues int64
	db.DB.Model(&models.Issue{}).Where("created_at >= ?", sevenDaysAgo).Count(&recentIssues)

	var pendingIssues, resolvedIssues int64
	db.DB.Model(&models.Issue{}).Where("status IN ?", models.PendingStatuses).Count(&pendingIssues)
	db.DB.Model(&models.Issue{}).Where("status IN ?", models.ResolvedStatuses).Count(&resolvedIssues)

	c.JSON(http.StatusOK, gin.H{
		"overview": gin.H{
			"totalIssues":        totalIssues,
			"totalAnnouncements": totalAnnouncements,
			"totalLostFound":     totalLostFound,
			"totalUsers":         totalUsers,
			"pendingIssues":      pendingIssues,
			"resolvedIssues":     resolvedIssues,
			"recentIssues":       recentIssues,
			"avgResponseTime":    avgResponseTime,
			"avgResolutionTime":  avgResolutionTime,
		},
		"charts": gin.H{
			"issuesByStatus":   issuesByStatus,
			"issuesByCategory": issuesByCategory,
			"issuesByPriority": issuesByPriority,
			"issuesByHostel":   issuesByHostel,
		},
	})
}

// @Summary Resident mood
// @Description Keyword-based sentiment over issues from the last 30 days
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ai.SentimentReport
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /analytics/sentiment [get]
func GetSentiment(c *gin.Context) {
	if _, exists := c.Get("user_id"); !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)

	var issues []models.Issue
	if err := db.DB.Select("title, description, category").
		Where("created_at >= ?", thirtyDaysAgo).
		Find(&issues).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving issues: " + err.Error()})
		return
	}

	samples := make([]ai.IssueSample, 0, len(issues))
	for _, issue := range issues {
		samples = append(samples, ai.IssueSample{
			Title:       issue.Title,
			Description: issue.Description,
			Category:    string(issue.Category),
		})
	}

	c.JSON(http.StatusOK, ai.AnalyzeSentiment(samples))
}

func groupCount(column string) ([]chartPoint, error) {
	var points []chartPoint
	err := db.DB.Model(&models.Issue{}).
		Select(column + " AS name, COUNT(*) AS value").
		Group(column).
		Scan(&points).Error
	return points, err
}

// averageHours computes the mean duration from reportedAt to the extracted
// timestamp, in hours rounded to one decimal. Rows with a nil timestamp are
// skipped.
func averageHours(issues []timedIssue, at func(timedIssue) *time.Time) float64 {
	var total time.Duration
	var count int

	for _, issue := range issues {
		ts := at(issue)
		if ts == nil {
			continue
		}
		total += ts.Sub(issue.ReportedAt)
		count++
	}

	if count == 0 {
		return 0
	}

	hours := total.Hours() / float64(count)
	return math.Round(hours*10) / 10
}
