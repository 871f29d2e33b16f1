package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/fukimorihigh/server/model"
	"github.com/fukimorihigh/server/testutil"
)

func TestAutoMigrate_InsertAndQuery(t *testing.T) {
	db := testutil.SetupTestDB(t)

	// Account
	acc := &model.Account{Username: "test_user", PasswordHash: "hash", Status: 1}
	require.NoError(t, db.Create(acc).Error)
	assert.Greater(t, acc.ID, int64(0))

	var found model.Account
	require.NoError(t, db.First(&found, acc.ID).Error)
	assert.Equal(t, "test_user", found.Username)

	// World
	w := &model.World{ID: "world-1", AccountID: acc.ID, PlayerName: "Kenji"}
	require.NoError(t, db.Create(w).Error)

	// Character
	ch := &model.Character{
		WorldID:        w.ID,
		CharID:         "student_hana",
		Name:           "Hana",
		Gender:         "female",
		ReputationTags: datatypes.NewJSONSlice([]string{"student"}),
	}
	require.NoError(t, db.Create(ch).Error)
	assert.Greater(t, ch.ID, int64(0))
	var gotChar model.Character
	require.NoError(t, db.First(&gotChar, ch.ID).Error)
	assert.Equal(t, 16, gotChar.Age)

	// Relationship
	rel := &model.Relationship{WorldID: w.ID, OwnerID: "player", OtherID: "student_hana"}
	require.NoError(t, db.Create(rel).Error)
	var gotRel model.Relationship
	require.NoError(t, db.First(&gotRel, rel.ID).Error)
	assert.Equal(t, 50, gotRel.Affection)
	assert.Equal(t, "acquaintance", gotRel.Type)

	// StoryMemory
	mem := &model.StoryMemory{
		WorldID:      w.ID,
		EventID:      "evt_1",
		Participants: datatypes.NewJSONSlice([]string{"player", "student_hana"}),
		Summary:      "met in the hallway",
	}
	require.NoError(t, db.Create(mem).Error)

	// ReputationState
	rep := &model.ReputationState{WorldID: w.ID}
	require.NoError(t, db.Create(rep).Error)
	var gotRep model.ReputationState
	require.NoError(t, db.First(&gotRep, rep.ID).Error)
	assert.Equal(t, "The Transfer Student", gotRep.Title)
	assert.Equal(t, 10, gotRep.Notoriety)

	// UnlockedAchievement
	ua := &model.UnlockedAchievement{WorldID: w.ID, AchievementID: "party_king"}
	require.NoError(t, db.Create(ua).Error)

	// Progression
	prog := &model.Progression{WorldID: w.ID}
	require.NoError(t, db.Create(prog).Error)
	var gotProg model.Progression
	require.NoError(t, db.First(&gotProg, prog.ID).Error)
	assert.Equal(t, 1, gotProg.Level)
	assert.Equal(t, 100, gotProg.ExperienceToNext)
	assert.EqualValues(t, 1000, gotProg.Money)

	// PlayerSkill / InventoryItem
	require.NoError(t, db.Create(&model.PlayerSkill{WorldID: w.ID, Name: "academics"}).Error)
	require.NoError(t, db.Create(&model.InventoryItem{WorldID: w.ID, Name: "school_bag"}).Error)

	// InteractionLog
	require.NoError(t, db.Create(&model.InteractionLog{
		TraceID: "trace-001",
		WorldID: w.ID,
		Action:  "greeted a classmate",
	}).Error)
}

func TestUniqueConstraints(t *testing.T) {
	db := testutil.SetupTestDB(t)

	require.NoError(t, db.Create(&model.Account{Username: "dup", PasswordHash: "h"}).Error)
	assert.Error(t, db.Create(&model.Account{Username: "dup", PasswordHash: "h"}).Error)

	require.NoError(t, db.Create(&model.Character{WorldID: "w1", CharID: "player", Name: "Kenji"}).Error)
	assert.Error(t, db.Create(&model.Character{WorldID: "w1", CharID: "player", Name: "Clone"}).Error)
	assert.NoError(t, db.Create(&model.Character{WorldID: "w2", CharID: "player", Name: "Kenji"}).Error)

	// Seeded event IDs repeat across worlds, so uniqueness is per world.
	require.NoError(t, db.Create(&model.StoryMemory{WorldID: "w1", EventID: "school_opening"}).Error)
	assert.Error(t, db.Create(&model.StoryMemory{WorldID: "w1", EventID: "school_opening"}).Error)
	assert.NoError(t, db.Create(&model.StoryMemory{WorldID: "w2", EventID: "school_opening"}).Error)
}
