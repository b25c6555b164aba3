package models

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestAnnouncement_VisibleTo(t *testing.T) {
	student := &User{ID: "u1", Role: StudentRole, Hostel: "North Wing"}
	manager := &User{ID: "m1", Role: ManagementRole}

	unrestricted := &Announcement{}
	assert.True(t, unrestricted.VisibleTo(student))
	assert.True(t, unrestricted.VisibleTo(manager))

	hostelTargeted := &Announcement{TargetHostels: pq.StringArray{"South Wing"}}
	assert.False(t, hostelTargeted.VisibleTo(student))
	assert.True(t, hostelTargeted.VisibleTo(manager))

	matchingHostel := &Announcement{TargetHostels: pq.StringArray{"North Wing", "South Wing"}}
	assert.True(t, matchingHostel.VisibleTo(student))

	managementOnly := &Announcement{TargetRoles: pq.StringArray{"MANAGEMENT"}}
	assert.False(t, managementOnly.VisibleTo(student))
	assert.True(t, managementOnly.VisibleTo(manager))

	studentRole := &Announcement{TargetRoles: pq.StringArray{"STUDENT"}}
	assert.True(t, studentRole.VisibleTo(student))
}

func TestAnnouncementType_Valid(t *testing.T) {
	for _, a := range []AnnouncementType{CleaningNotice, PestControlNotice, DowntimeNotice, MaintenanceNotice, GeneralNotice} {
		assert.True(t, a.Valid())
	}
	assert.False(t, AnnouncementType("WEATHER").Valid())
}
