package audit

import (
	"context"
	"encoding/json"

	"github.com/maisonbelle/salon-api/internal/models"
	"github.com/maisonbelle/salon-api/internal/store"
)

type Logger struct {
	st *store.Store
}

func New(st *store.Store) *Logger {
	return &Logger{st: st}
}

func (l *Logger) Log(
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.st.CreateAuditLog(context.Background(), &entry)
}
