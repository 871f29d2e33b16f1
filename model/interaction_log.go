package model

import (
	"time"

	"gorm.io/datatypes"
)

// InteractionLog records processed interaction events for auditing and
// debugging. Written asynchronously in batches; not part of gameplay state.
type InteractionLog struct {
	ID             int64                       `gorm:"primaryKey;autoIncrement" json:"id"`
	TraceID        string                      `gorm:"index:idx_ilog_trace;size:36;not null" json:"trace_id"`
	WorldID        string                      `gorm:"index:idx_ilog_world;size:36" json:"world_id"`
	ActorID        string                      `gorm:"size:64" json:"actor_id"`
	Action         string                      `gorm:"size:255" json:"action"`
	Classification string                      `gorm:"size:32" json:"classification"`
	Impact         int                         `json:"impact"`
	Witnesses      datatypes.JSONSlice[string] `json:"witnesses"`
	Location       string                      `gorm:"size:64" json:"location"`
	Request        datatypes.JSON              `json:"request"`
	Response       datatypes.JSON              `json:"response"`
	Error          string                      `gorm:"type:text" json:"error"`
	IP             string                      `gorm:"size:45" json:"ip"`
	DurationMs     int                         `json:"duration_ms"`
	CreatedAt      time.Time                   `gorm:"index:idx_ilog_created;autoCreateTime:milli" json:"created_at"`
}
