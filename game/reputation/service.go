package reputation

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fukimorihigh/server/cache"
	"github.com/fukimorihigh/server/model"
	"github.com/fukimorihigh/server/resource"
)

// LeaderboardKey is the cache ZSet ranking worlds by notoriety.
const LeaderboardKey = "leaderboard:notoriety"

// snapshotFields are the hash fields of the per-world reputation
// snapshot under snapshotKey.
var snapshotFields = []string{"popularity", "respect", "fear", "attractiveness", "notoriety", "title"}

func snapshotKey(worldID string) string {
	return "rep:" + worldID
}

// Service is the reputation and achievement engine. Achievement unlocks are
// single-transition and never reversible; axis deltas are additive, clamped
// per axis.
type Service struct {
	db      *gorm.DB
	cache   cache.Cache
	catalog *resource.Catalog
	logger  *zap.Logger
}

// NewService creates the reputation engine.
func NewService(db *gorm.DB, c cache.Cache, cat *resource.Catalog, logger *zap.Logger) *Service {
	return &Service{db: db, cache: c, catalog: cat, logger: logger}
}

// Unlocked is a freshly or previously unlocked achievement joined with its
// static definition.
type Unlocked struct {
	resource.AchievementDef
	UnlockedAt time.Time `json:"unlocked_at"`
}

// Status is the public reputation snapshot.
type Status struct {
	Popularity     int        `json:"popularity"`
	Respect        int        `json:"respect"`
	Fear           int        `json:"fear"`
	Attractiveness int        `json:"attractiveness"`
	Notoriety      int        `json:"notoriety"`
	Title          string     `json:"current_title"`
	Achievements   []Unlocked `json:"achievements"`
}

// Trigger unlocks the achievement bound to eventKey. Returns (nil, nil) when
// no definition matches the key or the achievement is already held. On
// unlock it applies the reputation quadruple, recomputes notoriety and
// title, and refreshes the leaderboard.
func (svc *Service) Trigger(ctx context.Context, worldID, eventKey string) (*Unlocked, error) {
	def := svc.catalog.AchievementByTrigger(eventKey)
	if def == nil {
		return nil, nil
	}

	var out *Unlocked
	err := svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.UnlockedAchievement
		err := tx.Where("world_id = ? AND achievement_id = ?", worldID, def.ID).First(&existing).Error
		if err == nil {
			return nil // already unlocked, idempotent no-op
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now()
		if err := tx.Create(&model.UnlockedAchievement{
			WorldID:       worldID,
			AchievementID: def.ID,
			UnlockedAt:    now,
		}).Error; err != nil {
			return err
		}

		state, err := stateForUpdate(tx, worldID)
		if err != nil {
			return err
		}
		state.Popularity = clamp(state.Popularity + def.Effect.Popularity)
		state.Respect = clamp(state.Respect + def.Effect.Respect)
		state.Fear = clamp(state.Fear + def.Effect.Fear)
		state.Attractiveness = clamp(state.Attractiveness + def.Effect.Attractiveness)
		state.Notoriety = notoriety(state)
		state.Title = titleFor(state)
		if err := tx.Save(state).Error; err != nil {
			return err
		}

		out = &Unlocked{AchievementDef: *def, UnlockedAt: now}
		if err := svc.cache.ZAdd(ctx, LeaderboardKey, float64(state.Notoriety), worldID); err != nil {
			svc.logger.Warn("leaderboard update failed", zap.String("world_id", worldID), zap.Error(err))
		}
		svc.writeSnapshot(ctx, state)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reputation: trigger %s: %w", eventKey, err)
	}
	if out != nil {
		svc.logger.Info("achievement unlocked",
			zap.String("world_id", worldID),
			zap.String("achievement", out.ID),
			zap.String("trigger", eventKey),
		)
	}
	return out, nil
}

// GetStatus returns the world's reputation snapshot including every
// unlocked achievement in unlock order.
func (svc *Service) GetStatus(ctx context.Context, worldID string) (*Status, error) {
	var state model.ReputationState
	err := svc.db.WithContext(ctx).Where("world_id = ?", worldID).First(&state).Error
	if err != nil {
		return nil, fmt.Errorf("reputation: status: %w", err)
	}

	unlocks, err := svc.unlocks(ctx, worldID, 0)
	if err != nil {
		return nil, err
	}
	return &Status{
		Popularity:     state.Popularity,
		Respect:        state.Respect,
		Fear:           state.Fear,
		Attractiveness: state.Attractiveness,
		Notoriety:      state.Notoriety,
		Title:          state.Title,
		Achievements:   unlocks,
	}, nil
}

// Recent returns the latest n unlocked achievements, newest first.
func (svc *Service) Recent(ctx context.Context, worldID string, n int) ([]Unlocked, error) {
	unlocks, err := svc.unlocks(ctx, worldID, n)
	if err != nil {
		return nil, err
	}
	return unlocks, nil
}

func (svc *Service) unlocks(ctx context.Context, worldID string, limit int) ([]Unlocked, error) {
	q := svc.db.WithContext(ctx).Where("world_id = ?", worldID)
	if limit > 0 {
		q = q.Order("unlocked_at DESC, id DESC").Limit(limit)
	} else {
		q = q.Order("unlocked_at, id")
	}
	var rows []model.UnlockedAchievement
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("reputation: unlocks: %w", err)
	}
	out := make([]Unlocked, 0, len(rows))
	for _, r := range rows {
		def := svc.catalog.AchievementByID(r.AchievementID)
		if def == nil {
			continue // definition removed from catalog, skip
		}
		out = append(out, Unlocked{AchievementDef: *def, UnlockedAt: r.UnlockedAt})
	}
	return out, nil
}

// Reaction is how an NPC adjusts its tone toward the player.
type Reaction struct {
	AttitudeShift     string `json:"attitude_shift"`
	DialogueModifier  string `json:"dialogue_modifier"`
	RelationshipBonus int    `json:"relationship_bonus"`
}

// ReactionModifier returns how a character with the given personality tags
// reacts to the player's current reputation. Served from the cached
// snapshot when present; a DB read refills it.
func (svc *Service) ReactionModifier(ctx context.Context, worldID string, personalityTags []string) (*Reaction, error) {
	state, err := svc.stateFor(ctx, worldID)
	if err != nil {
		return nil, fmt.Errorf("reputation: reaction modifier: %w", err)
	}
	r := reactionFor(state, personalityTags)
	return &r, nil
}

// stateFor reads the world's reputation axes, snapshot first, DB on miss.
func (svc *Service) stateFor(ctx context.Context, worldID string) (*model.ReputationState, error) {
	if state, ok := svc.snapshot(ctx, worldID); ok {
		return state, nil
	}
	var state model.ReputationState
	if err := svc.db.WithContext(ctx).Where("world_id = ?", worldID).First(&state).Error; err != nil {
		return nil, err
	}
	svc.writeSnapshot(ctx, &state)
	return &state, nil
}

// snapshot loads the cached axes. A hash missing any field is treated
// as a miss so partial writes never surface as state.
func (svc *Service) snapshot(ctx context.Context, worldID string) (*model.ReputationState, bool) {
	fields, err := svc.cache.HGetAll(ctx, snapshotKey(worldID))
	if err != nil || len(fields) == 0 {
		return nil, false
	}
	state := model.ReputationState{WorldID: worldID, Title: fields["title"]}
	if state.Title == "" {
		return nil, false
	}
	for name, dst := range map[string]*int{
		"popularity":     &state.Popularity,
		"respect":        &state.Respect,
		"fear":           &state.Fear,
		"attractiveness": &state.Attractiveness,
		"notoriety":      &state.Notoriety,
	} {
		v, err := strconv.Atoi(fields[name])
		if err != nil {
			return nil, false
		}
		*dst = v
	}
	return &state, true
}

// writeSnapshot caches the axes. Best-effort: a cache failure is logged
// and the DB stays the source of truth.
func (svc *Service) writeSnapshot(ctx context.Context, state *model.ReputationState) {
	key := snapshotKey(state.WorldID)
	values := map[string]string{
		"popularity":     strconv.Itoa(state.Popularity),
		"respect":        strconv.Itoa(state.Respect),
		"fear":           strconv.Itoa(state.Fear),
		"attractiveness": strconv.Itoa(state.Attractiveness),
		"notoriety":      strconv.Itoa(state.Notoriety),
		"title":          state.Title,
	}
	for _, field := range snapshotFields {
		if err := svc.cache.HSet(ctx, key, field, values[field]); err != nil {
			svc.logger.Warn("reputation snapshot write failed",
				zap.String("world_id", state.WorldID), zap.Error(err))
			svc.Invalidate(ctx, state.WorldID)
			return
		}
	}
}

// Invalidate drops the cached snapshot, used after a world reset.
func (svc *Service) Invalidate(ctx context.Context, worldID string) {
	if err := svc.cache.HDel(ctx, snapshotKey(worldID), snapshotFields...); err != nil {
		svc.logger.Warn("reputation snapshot invalidate failed",
			zap.String("world_id", worldID), zap.Error(err))
	}
}

func reactionFor(state *model.ReputationState, tags []string) Reaction {
	if slices.Contains(tags, "popular") {
		if state.Popularity > 80 {
			return Reaction{AttitudeShift: "impressed", DialogueModifier: "treats you as an equal", RelationshipBonus: 15}
		}
		if state.Popularity < 30 {
			return Reaction{AttitudeShift: "dismissive", DialogueModifier: "barely acknowledges you", RelationshipBonus: -10}
		}
	}
	if slices.Contains(tags, "shy") {
		if state.Fear > 50 {
			return Reaction{AttitudeShift: "intimidated", DialogueModifier: "nervous and stuttering", RelationshipBonus: -15}
		}
		if state.Attractiveness > 70 {
			return Reaction{AttitudeShift: "flustered", DialogueModifier: "blushing and awkward", RelationshipBonus: 5}
		}
	}
	if slices.Contains(tags, "rebellious") {
		if state.Respect < 30 && state.Fear < 20 {
			return Reaction{AttitudeShift: "contemptuous", DialogueModifier: "mocks you openly", RelationshipBonus: -20}
		}
		if state.Fear > 60 {
			return Reaction{AttitudeShift: "respectful", DialogueModifier: "acknowledges your reputation", RelationshipBonus: 10}
		}
	}
	return Reaction{AttitudeShift: "normal", DialogueModifier: "treats you normally", RelationshipBonus: 0}
}

// LeaderboardEntry is one row of the notoriety ranking. Title comes
// from the snapshot hash and may be empty on a cold cache.
type LeaderboardEntry struct {
	WorldID   string  `json:"world_id"`
	Notoriety float64 `json:"notoriety"`
	Title     string  `json:"title,omitempty"`
}

// Leaderboard returns the top n worlds by notoriety, highest first.
func (svc *Service) Leaderboard(ctx context.Context, n int64) ([]LeaderboardEntry, error) {
	members, err := svc.cache.ZRevRange(ctx, LeaderboardKey, 0, n-1)
	if err != nil {
		return nil, fmt.Errorf("reputation: leaderboard: %w", err)
	}
	out := make([]LeaderboardEntry, 0, len(members))
	for _, m := range members {
		score, err := svc.cache.ZScore(ctx, LeaderboardKey, m)
		if err != nil {
			continue
		}
		title, _ := svc.cache.HGet(ctx, snapshotKey(m), "title")
		out = append(out, LeaderboardEntry{WorldID: m, Notoriety: score, Title: title})
	}
	return out, nil
}

// RefreshLeaderboard rewrites every world's leaderboard score from the DB.
// Run periodically by the scheduler to heal cache restarts.
func (svc *Service) RefreshLeaderboard(ctx context.Context) error {
	var states []model.ReputationState
	if err := svc.db.WithContext(ctx).Find(&states).Error; err != nil {
		return fmt.Errorf("reputation: refresh leaderboard: %w", err)
	}
	for _, s := range states {
		if err := svc.cache.ZAdd(ctx, LeaderboardKey, float64(s.Notoriety), s.WorldID); err != nil {
			return fmt.Errorf("reputation: refresh leaderboard: %w", err)
		}
		svc.writeSnapshot(ctx, &s)
	}
	return nil
}

func stateForUpdate(tx *gorm.DB, worldID string) (*model.ReputationState, error) {
	var state model.ReputationState
	err := tx.Where("world_id = ?", worldID).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		state = model.ReputationState{
			WorldID:        worldID,
			Popularity:     50,
			Respect:        50,
			Fear:           0,
			Attractiveness: 50,
			Notoriety:      10,
			Title:          "The Transfer Student",
		}
		if err := tx.Create(&state).Error; err != nil {
			return nil, err
		}
		return &state, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// notoriety measures how far the most extreme axis sits from the neutral
// midpoint: min(100, 2 * max|axis-50|).
func notoriety(s *model.ReputationState) int {
	extremeness := 0
	for _, axis := range []int{s.Popularity, s.Respect, s.Fear, s.Attractiveness} {
		d := axis - 50
		if d < 0 {
			d = -d
		}
		if d > extremeness {
			extremeness = d
		}
	}
	if extremeness*2 > 100 {
		return 100
	}
	return extremeness * 2
}

// titleFor evaluates the title ladder top to bottom; the first match wins.
// The order is load-bearing on boundary values.
func titleFor(s *model.ReputationState) string {
	switch {
	case s.Fear > 80:
		return "The Untouchable"
	case s.Popularity > 90:
		return "School Royalty"
	case s.Respect > 90:
		return "The Legend"
	case s.Attractiveness > 90:
		return "Heartbreaker Supreme"
	case s.Popularity > 80 && s.Attractiveness > 70:
		return "The Golden Student"
	case s.Fear > 60 && s.Respect > 60:
		return "Respected & Feared"
	case s.Popularity > 75:
		return "School Celebrity"
	case s.Respect > 75:
		return "The Respected One"
	case s.Attractiveness > 75:
		return "The Heartbreaker"
	case s.Fear > 60:
		return "The Intimidator"
	case s.Popularity > 60 && s.Respect > 60:
		return "Well-Rounded Student"
	case s.Popularity > 65:
		return "Popular Kid"
	case s.Respect > 65:
		return "The Reliable One"
	case s.Attractiveness > 65:
		return "The Charmer"
	case s.Popularity < 20:
		return "Social Outcast"
	case s.Respect < 20:
		return "The Disappointment"
	case s.Attractiveness < 20:
		return "Romantically Challenged"
	case s.Fear < 10 && s.Popularity < 40:
		return "The Invisible Student"
	default:
		return "Regular Student"
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
