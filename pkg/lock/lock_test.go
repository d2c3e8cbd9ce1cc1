package lock

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestActivityDayKey(t *testing.T) {
	id := uuid.MustParse("0190a000-0000-7000-8000-000000000001")
	day := time.Date(2025, 6, 2, 15, 30, 0, 0, time.Local)

	key := ActivityDayKey(id, day)
	assert.Equal(t, "lock:activity:0190a000-0000-7000-8000-000000000001:2025-06-02", key)

	// time of day does not change the key
	assert.Equal(t, key, ActivityDayKey(id, day.Add(5*time.Hour)))
}

func TestPractitionerDayKey(t *testing.T) {
	id := uuid.MustParse("0190a000-0000-7000-8000-000000000002")
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)

	assert.Equal(t, "lock:physio:0190a000-0000-7000-8000-000000000002:2025-06-02", PractitionerDayKey(id, day))
}
