package announcements

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"hostelhub-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func asUser(userID, role string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		handler(c)
	}
}

func TestCreateAnnouncement_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "announcements" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ann-1"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/announcements", asUser("admin-1", "MANAGEMENT", CreateAnnouncement))

	body, _ := json.Marshal(map[string]interface{}{
		"title":         "Water supply downtime",
		"content":       "Water will be unavailable on Saturday morning for tank cleaning",
		"type":          "DOWNTIME",
		"targetHostels": []string{"North Wing"},
	})
	req, _ := http.NewRequest(http.MethodPost, "/announcements", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "DOWNTIME", respBody["type"])
}

func TestCreateAnnouncement_StudentForbidden(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/announcements", asUser("user-1", "STUDENT", CreateAnnouncement))

	body, _ := json.Marshal(map[string]interface{}{
		"title":   "Water supply downtime",
		"content": "Water will be unavailable on Saturday morning",
		"type":    "DOWNTIME",
	})
	req, _ := http.NewRequest(http.MethodPost, "/announcements", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestCreateAnnouncement_InvalidType(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/announcements", asUser("admin-1", "MANAGEMENT", CreateAnnouncement))

	body, _ := json.Marshal(map[string]interface{}{
		"title":   "Water supply downtime",
		"content": "Water will be unavailable on Saturday morning",
		"type":    "WEATHER",
	})
	req, _ := http.NewRequest(http.MethodPost, "/announcements", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid announcement type", respBody["error"])
}

func TestGetAnnouncements_StudentAudienceFilter(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := "user-1"

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = \$1`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hostel", "role"}).
			AddRow(userID, "North Wing", "STUDENT"))

	// Empty target arrays leave a dimension unrestricted, so the filter is
	// cardinality-or-membership on each dimension
	mock.ExpectQuery(`SELECT (.+) FROM "announcements" WHERE \(cardinality\(target_hostels\) = 0 OR \$1 = ANY\(target_hostels\)\) AND \(cardinality\(target_roles\) = 0 OR \$2 = ANY\(target_roles\)\) ORDER BY created_at DESC`).
		WithArgs("North Wing", "STUDENT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "type"}).
			AddRow("ann-1", "Water supply downtime", "DOWNTIME"))

	r := testutils.SetupTestRouter()
	r.GET("/announcements", asUser(userID, "STUDENT", GetAnnouncements))

	req, _ := http.NewRequest(http.MethodGet, "/announcements", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody []map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Len(t, respBody, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAnnouncements_ManagementSeesAll(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "announcements" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "type"}).
			AddRow("ann-1", "Water supply downtime", "DOWNTIME").
			AddRow("ann-2", "Pest control schedule", "PEST_CONTROL"))

	r := testutils.SetupTestRouter()
	r.GET("/announcements", asUser("admin-1", "MANAGEMENT", GetAnnouncements))

	req, _ := http.NewRequest(http.MethodGet, "/announcements", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody []map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Len(t, respBody, 2)
}

func TestGetAnnouncements_TypeFilter(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "announcements" WHERE type = \$1 ORDER BY created_at DESC`).
		WithArgs("CLEANING").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "type"}))

	r := testutils.SetupTestRouter()
	r.GET("/announcements", asUser("admin-1", "MANAGEMENT", GetAnnouncements))

	req, _ := http.NewRequest(http.MethodGet, "/announcements?type=CLEANING", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}
