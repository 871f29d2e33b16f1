package model

import (
	"time"

	"gorm.io/datatypes"
)

// Relationship status labels, derived from affection.
const (
	StatusCloseFriend  = "close friend"
	StatusFriend       = "friend"
	StatusAcquaintance = "acquaintance"
	StatusDistant      = "distant"
	StatusDislike      = "dislike"
)

// Relationship is the owner's directional view of another character.
// A's record of B is distinct from B's record of A; nothing mirrors them
// automatically, since social perception is asymmetric.
type Relationship struct {
	ID              int64                       `gorm:"primaryKey;autoIncrement" json:"id"`
	WorldID         string                      `gorm:"uniqueIndex:idx_world_rel;size:36;not null" json:"world_id"`
	OwnerID         string                      `gorm:"uniqueIndex:idx_world_rel;size:64;not null" json:"owner_id"`
	OtherID         string                      `gorm:"uniqueIndex:idx_world_rel;size:64;not null" json:"other_id"`
	Type            string                      `gorm:"size:32;default:acquaintance" json:"type"`
	Affection       int                         `gorm:"default:50" json:"affection"`
	Trust           int                         `gorm:"default:50" json:"trust"`
	Status          string                      `gorm:"size:16" json:"status"`
	SharedMemories  datatypes.JSONSlice[string] `json:"shared_memories"`
	ConflictHistory datatypes.JSONSlice[string] `json:"conflict_history"`
	CreatedAt       time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}
