package model

import "time"

// ReputationState is the per-world singleton holding the player's four
// reputation axes plus the derived notoriety and title.
type ReputationState struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	WorldID        string    `gorm:"uniqueIndex:idx_world_rep;size:36;not null" json:"world_id"`
	Popularity     int       `gorm:"default:50" json:"popularity"`
	Respect        int       `gorm:"default:50" json:"respect"`
	Fear           int       `gorm:"default:0" json:"fear"`
	Attractiveness int       `gorm:"default:50" json:"attractiveness"`
	Notoriety      int       `gorm:"default:10" json:"notoriety"`
	Title          string    `gorm:"size:64;default:The Transfer Student" json:"title"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// UnlockedAchievement records a one-time achievement unlock. The unique
// index makes re-unlocking the same achievement impossible at the storage
// layer as well.
type UnlockedAchievement struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	WorldID       string    `gorm:"uniqueIndex:idx_world_achievement;size:36;not null" json:"world_id"`
	AchievementID string    `gorm:"uniqueIndex:idx_world_achievement;size:64;not null" json:"achievement_id"`
	UnlockedAt    time.Time `gorm:"not null" json:"unlocked_at"`
}
