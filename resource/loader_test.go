package resource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	assert.Len(t, cat.Achievements, 14)
	assert.Len(t, cat.Locations, 17)
	assert.Len(t, cat.Staff, 5)
	assert.Len(t, cat.Presence, 4)
	assert.Len(t, cat.Skills, 18)
}

func TestAchievementByTrigger(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	a := cat.AchievementByTrigger("first_kiss_success")
	require.NotNil(t, a)
	assert.Equal(t, "first_kiss", a.ID)
	assert.Equal(t, "Not a Simp Anymore", a.Name)
	assert.Equal(t, 15, a.Effect.Popularity)
	assert.Equal(t, 20, a.Effect.Attractiveness)

	assert.Nil(t, cat.AchievementByTrigger("no_such_event"))
}

func TestAchievementByID(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	a := cat.AchievementByID("dating_popular_girl")
	require.NotNil(t, a)
	assert.Equal(t, "dating_most_popular_girl", a.TriggerEvent)
	assert.Equal(t, -30, a.Effect.Popularity)
	assert.Equal(t, "legendary", a.Rarity)
}

func TestLocationByID(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	loc := cat.LocationByID("rooftop")
	require.NotNil(t, loc)
	assert.Equal(t, "School Rooftop", loc.Name)

	assert.Nil(t, cat.LocationByID("basement"))
}

func TestPresenceRules(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	assert.Contains(t, cat.LocationsForTag("teacher"), "faculty_room")
	assert.Contains(t, cat.LocationsForTag("student"), "cafeteria")
	assert.Contains(t, cat.LocationsForTag("athletic"), "gymnasium")
	assert.Nil(t, cat.LocationsForTag("ghost"))
	assert.Contains(t, cat.DefaultPresenceLocations(), "courtyard")
}

func TestStaffSeeds(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	byID := make(map[string]StaffSeed, len(cat.Staff))
	for _, s := range cat.Staff {
		byID[s.CharID] = s
	}

	require.Contains(t, byID, "teacher_tanaka")
	assert.Equal(t, 85, byID["teacher_tanaka"].Abilities.Social.Reputation)
	assert.Equal(t, 90, byID["teacher_anderson"].Abilities.Social.Reputation)
	assert.Equal(t, 95, byID["principal_yoshida"].Abilities.Social.Reputation)
	assert.Equal(t, 88, byID["nurse_kimura"].Abilities.Social.Reputation)
	assert.Equal(t, 82, byID["coach_saito"].Abilities.Social.Reputation)
}

func TestLoad_OverrideSection(t *testing.T) {
	dir := t.TempDir()
	override := `[{"name":"mathematics","unlocked":true}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skills.json"), []byte(override), 0o644))

	cat, err := Load(dir)
	require.NoError(t, err)

	// skills replaced, everything else keeps defaults
	assert.Len(t, cat.Skills, 1)
	assert.Len(t, cat.Achievements, 14)
}

func TestLoad_InvalidOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "achievements.json"), []byte("{not json"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_MissingTriggerRejected(t *testing.T) {
	dir := t.TempDir()
	override := `[{"id":"x","name":"X","trigger_event":""}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "achievements.json"), []byte(override), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
