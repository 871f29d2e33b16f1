package reputation

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fukimorihigh/server/cache"
	"github.com/fukimorihigh/server/model"
	"github.com/fukimorihigh/server/resource"
	"github.com/fukimorihigh/server/testutil"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	svc, db, _ := newTestServiceWithCache(t)
	return svc, db
}

func newTestServiceWithCache(t *testing.T) (*Service, *gorm.DB, cache.Cache) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	c := testutil.SetupTestCache(t)
	cat, err := resource.Load("")
	require.NoError(t, err)
	return NewService(db, c, cat, zap.NewNop()), db, c
}

func TestTrigger_UnknownKeyReturnsNil(t *testing.T) {
	svc, _ := newTestService(t)

	unlocked, err := svc.Trigger(context.Background(), "w1", "no_such_event")
	require.NoError(t, err)
	assert.Nil(t, unlocked)
}

func TestTrigger_UnlockAppliesEffect(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	unlocked, err := svc.Trigger(ctx, "w1", "first_kiss_success")
	require.NoError(t, err)
	require.NotNil(t, unlocked)
	assert.Equal(t, "first_kiss", unlocked.ID)
	assert.False(t, unlocked.UnlockedAt.IsZero())

	status, err := svc.GetStatus(ctx, "w1")
	require.NoError(t, err)
	// defaults 50/50/0/50 + (15/10/0/20)
	assert.Equal(t, 65, status.Popularity)
	assert.Equal(t, 60, status.Respect)
	assert.Equal(t, 0, status.Fear)
	assert.Equal(t, 70, status.Attractiveness)
	// max deviation: |0-50| = 50, notoriety = 100
	assert.Equal(t, 100, status.Notoriety)
	require.Len(t, status.Achievements, 1)
}

func TestTrigger_Idempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Trigger(ctx, "w1", "accessed_rooftop")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := svc.Trigger(ctx, "w1", "accessed_rooftop")
	require.NoError(t, err)
	assert.Nil(t, second)

	status, err := svc.GetStatus(ctx, "w1")
	require.NoError(t, err)
	require.Len(t, status.Achievements, 1)
	// effect applied exactly once: 50+20
	assert.Equal(t, 70, status.Popularity)
}

func TestTrigger_ClampsAxes(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.ReputationState{
		WorldID: "w1", Popularity: 95, Respect: 50, Fear: 0, Attractiveness: 90, Notoriety: 90, Title: "School Royalty",
	}).Error)

	// won_student_president: +50/+40/0/+20
	unlocked, err := svc.Trigger(ctx, "w1", "won_student_president")
	require.NoError(t, err)
	require.NotNil(t, unlocked)

	status, err := svc.GetStatus(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, 100, status.Popularity)
	assert.Equal(t, 90, status.Respect)
	assert.Equal(t, 100, status.Attractiveness)
}

func TestNotorietyFormula(t *testing.T) {
	s := &model.ReputationState{Popularity: 90, Respect: 50, Fear: 50, Attractiveness: 50}
	assert.Equal(t, 80, notoriety(s))

	s = &model.ReputationState{Popularity: 50, Respect: 50, Fear: 50, Attractiveness: 50}
	assert.Equal(t, 0, notoriety(s))

	s = &model.ReputationState{Popularity: 100, Respect: 50, Fear: 0, Attractiveness: 50}
	assert.Equal(t, 100, notoriety(s))
}

func TestTitleLadder_Precedence(t *testing.T) {
	// fear>80 outranks popularity>90
	s := &model.ReputationState{Popularity: 95, Respect: 50, Fear: 85, Attractiveness: 50}
	assert.Equal(t, "The Untouchable", titleFor(s))

	s = &model.ReputationState{Popularity: 95, Respect: 50, Fear: 50, Attractiveness: 50}
	assert.Equal(t, "School Royalty", titleFor(s))

	s = &model.ReputationState{Popularity: 85, Respect: 50, Fear: 0, Attractiveness: 75}
	assert.Equal(t, "The Golden Student", titleFor(s))

	s = &model.ReputationState{Popularity: 50, Respect: 65, Fear: 65, Attractiveness: 50}
	assert.Equal(t, "Respected & Feared", titleFor(s))

	s = &model.ReputationState{Popularity: 50, Respect: 50, Fear: 65, Attractiveness: 50}
	assert.Equal(t, "The Intimidator", titleFor(s))

	s = &model.ReputationState{Popularity: 62, Respect: 62, Fear: 0, Attractiveness: 50}
	assert.Equal(t, "Well-Rounded Student", titleFor(s))

	s = &model.ReputationState{Popularity: 15, Respect: 50, Fear: 30, Attractiveness: 50}
	assert.Equal(t, "Social Outcast", titleFor(s))

	s = &model.ReputationState{Popularity: 35, Respect: 50, Fear: 5, Attractiveness: 50}
	assert.Equal(t, "The Invisible Student", titleFor(s))

	s = &model.ReputationState{Popularity: 50, Respect: 50, Fear: 30, Attractiveness: 50}
	assert.Equal(t, "Regular Student", titleFor(s))
}

func TestRecent_NewestFirstCapped(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	keys := []string{"first_kiss_success", "accessed_rooftop", "won_championship", "organized_3_parties", "spread_10_true_rumors", "perfect_scores_5_tests"}
	for _, k := range keys {
		_, err := svc.Trigger(ctx, "w1", k)
		require.NoError(t, err)
	}

	recent, err := svc.Recent(ctx, "w1", 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, "perfect_student", recent[0].ID)
}

func TestReactionModifier(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.ReputationState{
		WorldID: "w1", Popularity: 85, Respect: 50, Fear: 55, Attractiveness: 75, Notoriety: 70, Title: "School Celebrity",
	}).Error)

	r, err := svc.ReactionModifier(ctx, "w1", []string{"popular"})
	require.NoError(t, err)
	assert.Equal(t, "impressed", r.AttitudeShift)
	assert.Equal(t, 15, r.RelationshipBonus)

	r, err = svc.ReactionModifier(ctx, "w1", []string{"shy"})
	require.NoError(t, err)
	assert.Equal(t, "intimidated", r.AttitudeShift)
	assert.Equal(t, -15, r.RelationshipBonus)

	r, err = svc.ReactionModifier(ctx, "w1", []string{"bookish"})
	require.NoError(t, err)
	assert.Equal(t, "normal", r.AttitudeShift)
	assert.Equal(t, 0, r.RelationshipBonus)
}

func TestReactionModifier_Rebellious(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.ReputationState{
		WorldID: "w1", Popularity: 50, Respect: 20, Fear: 10, Attractiveness: 50,
	}).Error)

	r, err := svc.ReactionModifier(ctx, "w1", []string{"rebellious"})
	require.NoError(t, err)
	assert.Equal(t, "contemptuous", r.AttitudeShift)
	assert.Equal(t, -20, r.RelationshipBonus)
}

func TestLeaderboard(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Trigger(ctx, "w_low", "accessed_rooftop")
	require.NoError(t, err)
	_, err = svc.Trigger(ctx, "w_high", "first_kiss_success")
	require.NoError(t, err)

	entries, err := svc.Leaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "w_high", entries[0].WorldID)
}

func TestTrigger_WritesSnapshot(t *testing.T) {
	svc, db, c := newTestServiceWithCache(t)
	ctx := context.Background()

	_, err := svc.Trigger(ctx, "w1", "first_kiss_success")
	require.NoError(t, err)

	fields, err := c.HGetAll(ctx, snapshotKey("w1"))
	require.NoError(t, err)

	var state model.ReputationState
	require.NoError(t, db.Where("world_id = ?", "w1").First(&state).Error)
	assert.Equal(t, strconv.Itoa(state.Popularity), fields["popularity"])
	assert.Equal(t, strconv.Itoa(state.Notoriety), fields["notoriety"])
	assert.Equal(t, state.Title, fields["title"])
}

func TestReactionModifier_ServedFromSnapshot(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.ReputationState{
		WorldID: "w1", Popularity: 85, Respect: 50, Fear: 0, Attractiveness: 50, Title: "School Celebrity",
	}).Error)

	// First call fills the snapshot from the DB.
	r, err := svc.ReactionModifier(ctx, "w1", []string{"popular"})
	require.NoError(t, err)
	assert.Equal(t, "impressed", r.AttitudeShift)

	// With the row gone the snapshot still answers.
	require.NoError(t, db.Where("world_id = ?", "w1").Delete(&model.ReputationState{}).Error)
	r, err = svc.ReactionModifier(ctx, "w1", []string{"popular"})
	require.NoError(t, err)
	assert.Equal(t, "impressed", r.AttitudeShift)
}

func TestInvalidate_ForcesDBReread(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.ReputationState{
		WorldID: "w1", Popularity: 85, Respect: 50, Fear: 0, Attractiveness: 50, Title: "School Celebrity",
	}).Error)
	_, err := svc.ReactionModifier(ctx, "w1", []string{"popular"})
	require.NoError(t, err)

	// Reset-style flow: row replaced with defaults, snapshot dropped.
	require.NoError(t, db.Model(&model.ReputationState{}).
		Where("world_id = ?", "w1").
		Update("popularity", 50).Error)
	svc.Invalidate(ctx, "w1")

	r, err := svc.ReactionModifier(ctx, "w1", []string{"popular"})
	require.NoError(t, err)
	assert.Equal(t, "normal", r.AttitudeShift)
}

func TestLeaderboard_TitlesFromSnapshot(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Trigger(ctx, "w1", "first_kiss_success")
	require.NoError(t, err)

	entries, err := svc.Leaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].Title)
}

func TestRefreshLeaderboard(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.ReputationState{WorldID: "w1", Popularity: 50, Respect: 50, Fear: 0, Attractiveness: 50, Notoriety: 42}).Error)

	require.NoError(t, svc.RefreshLeaderboard(ctx))

	entries, err := svc.Leaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(42), entries[0].Notoriety)
}
