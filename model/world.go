package model

import "time"

// World is one game save. Every gameplay aggregate (characters, memories,
// reputation, progression) is keyed by WorldID; resetting a world deletes
// the whole subgraph and reseeds it.
type World struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	AccountID  int64     `gorm:"index:idx_world_account;not null" json:"account_id"`
	PlayerName string    `gorm:"size:32;not null" json:"player_name"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
