package model

import (
	"time"

	"gorm.io/datatypes"
)

// Progression is the per-world singleton holding the player's level,
// experience pool, eight characteristics, money and inventory limits.
// Experience is spent on level-ups (cost = ExperienceToNext, remainder
// carried over); it is never negative.
type Progression struct {
	ID               int64                       `gorm:"primaryKey;autoIncrement" json:"id"`
	WorldID          string                      `gorm:"uniqueIndex:idx_world_prog;size:36;not null" json:"world_id"`
	Level            int                         `gorm:"default:1" json:"level"`
	Experience       int                         `gorm:"default:0" json:"experience"`
	ExperienceToNext int                         `gorm:"default:100" json:"experience_to_next"`
	Academics        int                         `gorm:"default:50" json:"academics"`
	Athletics        int                         `gorm:"default:50" json:"athletics"`
	Charm            int                         `gorm:"default:50" json:"charm"`
	Creativity       int                         `gorm:"default:50" json:"creativity"`
	Reputation       int                         `gorm:"default:50" json:"reputation"`
	Courage          int                         `gorm:"default:50" json:"courage"`
	Empathy          int                         `gorm:"default:50" json:"empathy"`
	Leadership       int                         `gorm:"default:50" json:"leadership"`
	Money            int64                       `gorm:"default:1000" json:"money"`
	MaxCapacity      int                         `gorm:"default:10" json:"max_capacity"`
	UnlockedActions  datatypes.JSONSlice[string] `json:"unlocked_actions"`
	UpdatedAt        time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

// PlayerSkill is one skill's level and experience pool. Skills are seeded
// at world creation; Unlocked gates use, not XP accumulation.
type PlayerSkill struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	WorldID    string    `gorm:"uniqueIndex:idx_world_skill;size:36;not null" json:"world_id"`
	Name       string    `gorm:"uniqueIndex:idx_world_skill;size:32;not null" json:"name"`
	Level      int       `gorm:"default:1" json:"level"`
	Experience int       `gorm:"default:0" json:"experience"`
	Unlocked   bool      `gorm:"default:false" json:"unlocked"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// InventoryItem is one owned item. Special items bypass the capacity cap.
type InventoryItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	WorldID   string    `gorm:"index:idx_world_item;size:36;not null" json:"world_id"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	Special   bool      `gorm:"default:false" json:"special"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
