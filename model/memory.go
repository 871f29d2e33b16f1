package model

import (
	"time"

	"gorm.io/datatypes"
)

// StoryMemory is one immutable entry in a world's interaction log. Rows are
// appended only; the oldest rows (lowest ID) are evicted once the world's
// log exceeds its capacity.
type StoryMemory struct {
	ID                 int64                       `gorm:"primaryKey;autoIncrement" json:"id"`
	WorldID            string                      `gorm:"index:idx_world_memory;uniqueIndex:idx_memory_event;size:36;not null" json:"world_id"`
	EventID            string                      `gorm:"uniqueIndex:idx_memory_event;size:64;not null" json:"event_id"`
	Participants       datatypes.JSONSlice[string] `json:"participants"`
	Location           string                      `gorm:"size:64" json:"location"`
	Summary            string                      `gorm:"type:text" json:"summary"`
	EmotionalTone      string                      `gorm:"size:64" json:"emotional_tone"`
	Consequences       datatypes.JSONSlice[string] `json:"consequences"`
	DialogueHighlights datatypes.JSONSlice[string] `json:"dialogue_highlights"`
	CreatedAt          time.Time                   `gorm:"autoCreateTime" json:"created_at"`
}
