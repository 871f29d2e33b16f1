package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fukimorihigh/server/model"
	"github.com/fukimorihigh/server/testutil"
)

func TestLog_EnqueuedAndFlushed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := New(db, zap.NewNop())

	svc.Log(Entry{
		TraceID:        "trace-123",
		WorldID:        "w1",
		ActorID:        "player",
		Action:         "compliments a classmate",
		Classification: "positive",
		Impact:         3,
		Witnesses:      []string{"student_a", "student_b"},
		Location:       "library",
		Request:        map[string]string{"action": "compliment"},
		Response:       map[string]bool{"ok": true},
		IP:             "127.0.0.1",
		DurationMs:     42,
	})

	// Stop flushes remaining entries.
	svc.Stop(context.Background())

	var logs []model.InteractionLog
	db.Find(&logs)
	require.Len(t, logs, 1)
	assert.Equal(t, "trace-123", logs[0].TraceID)
	assert.Equal(t, "w1", logs[0].WorldID)
	assert.Equal(t, "positive", logs[0].Classification)
	assert.Equal(t, 3, logs[0].Impact)
	assert.Equal(t, []string{"student_a", "student_b"}, []string(logs[0].Witnesses))
	assert.Equal(t, 42, logs[0].DurationMs)
}

func TestLog_MultipleEntries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := New(db, zap.NewNop())

	for i := 0; i < 10; i++ {
		svc.Log(Entry{WorldID: "w1", Action: "wave"})
	}
	svc.Stop(context.Background())

	var count int64
	db.Model(&model.InteractionLog{}).Count(&count)
	assert.Equal(t, int64(10), count)
}

func TestLog_BatchFlush(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := New(db, zap.NewNop())

	// 100 entries trigger an immediate batch flush inside the worker.
	for i := 0; i < 100; i++ {
		svc.Log(Entry{Action: "batch"})
	}
	svc.Stop(context.Background())

	var count int64
	db.Model(&model.InteractionLog{}).Count(&count)
	assert.GreaterOrEqual(t, count, int64(100))
}

func TestLog_TimerFlush(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := New(db, zap.NewNop())

	svc.Log(Entry{Action: "timer_test"})

	// Wait for the 2s ticker to fire, then make sure shutdown is clean.
	time.Sleep(2500 * time.Millisecond)
	svc.Stop(context.Background())

	var count int64
	db.Model(&model.InteractionLog{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestStop_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := New(db, zap.NewNop())
	svc.Stop(context.Background())
	svc.Stop(context.Background()) // must not panic
}

func TestLog_DropsWhenFull(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := New(db, zap.NewNop())

	// Flood past the 1024 channel buffer; extra entries drop instead of
	// blocking the caller.
	for i := 0; i < 1030; i++ {
		svc.Log(Entry{Action: "flood"})
	}
	svc.Stop(context.Background())
}
