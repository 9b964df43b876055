package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/maisonbelle/salon-api/internal/config"
	dbpkg "github.com/maisonbelle/salon-api/internal/db"
	"github.com/maisonbelle/salon-api/internal/models"
	"github.com/maisonbelle/salon-api/internal/store"
)

func setupAuditStore(t *testing.T) (*store.Store, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	return store.NewWithDB(db, &config.Config{}), db
}

func TestDispatcher_WritesEvent(t *testing.T) {
	st, db := setupAuditStore(t)
	d := NewDispatcher(New(st))

	userID := uint(7)
	entityID := uint(3)
	d.Dispatch(Event{
		UserID:   &userID,
		Action:   "blog_post_created",
		Entity:   "blog_post",
		EntityID: &entityID,
		Metadata: map[string]string{"slug": "summer-hair-care"},
	})

	var entry models.AuditLog
	require.Eventually(t, func() bool {
		return db.Where("action = ?", "blog_post_created").First(&entry).Error == nil
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, "blog_post", entry.Entity)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, uint(7), *entry.UserID)
	assert.Contains(t, entry.Metadata, "summer-hair-care")
}

func TestDispatch_DropsWhenQueueFull(t *testing.T) {
	st, _ := setupAuditStore(t)

	// no worker draining this queue, so the third event must be dropped
	d := &Dispatcher{
		logger: New(st),
		queue:  make(chan Event, 2),
	}

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			d.Dispatch(Event{Action: "overflow"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}

	assert.Equal(t, 2, len(d.queue))
}
