package progression

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fukimorihigh/server/config"
	"github.com/fukimorihigh/server/game/memlog"
	"github.com/fukimorihigh/server/model"
)

var (
	// ErrNegativeAmount rejects experience awards below zero before any
	// state is touched.
	ErrNegativeAmount = errors.New("progression: negative experience amount")
	// ErrInventoryFull is returned when an ordinary item does not fit.
	ErrInventoryFull = errors.New("progression: inventory full")
)

// actionUnlocks maps player levels to the action key granted at that level.
var actionUnlocks = map[int]string{
	3:  "join_club",
	5:  "ask_on_date",
	7:  "start_rumors",
	10: "organize_event",
}

// skillUnlocks maps player levels to the skill unlocked at that level.
var skillUnlocks = map[int]string{
	4:  "persuasion",
	6:  "art",
	8:  "martial_arts",
	12: "supernatural_control",
}

// characteristicHints weights the level-up characteristic draw toward
// whatever the player has been doing lately.
var characteristicHints = []struct {
	words          []string
	characteristic string
}{
	{[]string{"study", "class"}, "academics"},
	{[]string{"exercise", "sports"}, "athletics"},
	{[]string{"social", "friend"}, "charm"},
	{[]string{"art", "creative"}, "creativity"},
	{[]string{"help", "kind"}, "empathy"},
	{[]string{"lead", "organize"}, "leadership"},
	{[]string{"brave", "stand up"}, "courage"},
}

var characteristicNames = []string{
	"academics", "athletics", "charm", "creativity",
	"reputation", "courage", "empathy", "leadership",
}

// inputRules classifies free-text player input into an experience gain.
// First match wins; the activity names the characteristic that scales
// the award.
var inputRules = []struct {
	keywords []string
	baseXP   int
	skill    string
	activity string
}{
	{[]string{"study", "homework", "class", "learn"}, 15, "academics", "academic"},
	{[]string{"hello", "friend", "talk", "chat"}, 12, "charm", "social"},
	{[]string{"art", "music", "creative", "draw"}, 14, "creativity", "creative"},
	{[]string{"exercise", "sports", "gym", "run"}, 13, "athletics", "physical"},
	{[]string{"help", "support", "comfort"}, 16, "empathy", ""},
	{[]string{"organize", "lead", "suggest"}, 18, "leadership", ""},
}

// Gain is one experience award, usually produced by ClassifyInput.
type Gain struct {
	Amount        int    `json:"amount"`
	Source        string `json:"source"`
	SkillCategory string `json:"skill_category,omitempty"`
	Description   string `json:"description"`
}

// AwardResult reports the side effects of one experience award.
type AwardResult struct {
	LeveledUp               bool     `json:"leveled_up"`
	NewLevel                int      `json:"new_level,omitempty"`
	CharacteristicsImproved []string `json:"characteristics_improved,omitempty"`
	ActionsUnlocked         []string `json:"actions_unlocked,omitempty"`
	SkillsUnlocked          []string `json:"skills_unlocked,omitempty"`
	SkillLevel              int      `json:"skill_level,omitempty"`
	Experience              int      `json:"experience"`
	ExperienceToNext        int      `json:"experience_to_next"`
}

// PlayerStats bundles everything the progression endpoints expose.
type PlayerStats struct {
	Progression model.Progression     `json:"progression"`
	Skills      []model.PlayerSkill   `json:"skills"`
	Items       []model.InventoryItem `json:"items"`
}

// Service owns the player's level, characteristics, skills and inventory.
type Service struct {
	db       *gorm.DB
	memories *memlog.Service
	logger   *zap.Logger
	cfg      config.GameConfig
	rng      *rand.Rand
}

// NewService builds a progression service. A nil rng falls back to a
// time-seeded source; tests inject a fixed seed.
func NewService(db *gorm.DB, memories *memlog.Service, logger *zap.Logger, cfg config.GameConfig, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{db: db, memories: memories, logger: logger, cfg: cfg, rng: rng}
}

// AwardExperience adds the gain to the world's experience pools and
// resolves every level-up the new totals afford, carrying remainders
// over. Character level costs grow by the configured factor, skill
// levels cost level x the configured step.
func (svc *Service) AwardExperience(ctx context.Context, worldID string, gain Gain) (*AwardResult, error) {
	if gain.Amount < 0 {
		return nil, ErrNegativeAmount
	}

	recent, err := svc.memories.Recent(ctx, worldID, 10)
	if err != nil {
		return nil, fmt.Errorf("progression: award experience: %w", err)
	}

	result := &AwardResult{}
	err = svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st, err := svc.stateForUpdate(tx, worldID)
		if err != nil {
			return err
		}
		st.Experience += gain.Amount

		if gain.SkillCategory != "" {
			if err := svc.addSkillExperience(tx, worldID, gain.SkillCategory, gain.Amount, result); err != nil {
				return err
			}
		}

		for st.Experience >= st.ExperienceToNext {
			st.Level++
			st.Experience -= st.ExperienceToNext
			st.ExperienceToNext = int(math.Floor(float64(st.ExperienceToNext) * svc.cfg.LevelXPGrowth))
			result.LeveledUp = true
			result.NewLevel = st.Level
			if err := svc.applyLevelRewards(tx, worldID, st, recent, result); err != nil {
				return err
			}
		}

		result.Experience = st.Experience
		result.ExperienceToNext = st.ExperienceToNext
		return tx.Save(st).Error
	})
	if err != nil {
		return nil, fmt.Errorf("progression: award experience: %w", err)
	}

	consequences := []string{}
	if result.LeveledUp {
		consequences = append(consequences, fmt.Sprintf("Level up to %d", result.NewLevel))
	}
	_, err = svc.memories.Append(ctx, worldID, memlog.Entry{
		Participants:  []string{"player"},
		Location:      "progression_system",
		Summary:       fmt.Sprintf("Player gained %d XP from %s: %s", gain.Amount, gain.Source, gain.Description),
		EmotionalTone: "accomplished",
		Consequences:  consequences,
	})
	if err != nil {
		svc.logger.Warn("progression memory append failed",
			zap.String("world_id", worldID), zap.Error(err))
	}

	if result.LeveledUp {
		svc.logger.Info("player leveled up",
			zap.String("world_id", worldID),
			zap.Int("level", result.NewLevel),
			zap.Strings("actions_unlocked", result.ActionsUnlocked))
	}
	return result, nil
}

func (svc *Service) addSkillExperience(tx *gorm.DB, worldID, name string, amount int, result *AwardResult) error {
	var skill model.PlayerSkill
	err := tx.Where("world_id = ? AND name = ?", worldID, name).First(&skill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	skill.Experience += amount
	for cost := skill.Level * svc.cfg.SkillXPCostPerLevel; skill.Experience >= cost; cost = skill.Level * svc.cfg.SkillXPCostPerLevel {
		skill.Level++
		skill.Experience -= cost
		result.SkillLevel = skill.Level
	}
	return tx.Save(&skill).Error
}

func (svc *Service) applyLevelRewards(tx *gorm.DB, worldID string, st *model.Progression, recent []model.StoryMemory, result *AwardResult) error {
	improved := svc.improveCharacteristic(st, recent)
	result.CharacteristicsImproved = append(result.CharacteristicsImproved, improved)

	if action, ok := actionUnlocks[st.Level]; ok && !slices.Contains(st.UnlockedActions, action) {
		st.UnlockedActions = append(st.UnlockedActions, action)
		result.ActionsUnlocked = append(result.ActionsUnlocked, action)
	}
	if skill, ok := skillUnlocks[st.Level]; ok {
		res := tx.Model(&model.PlayerSkill{}).
			Where("world_id = ? AND name = ?", worldID, skill).
			Update("unlocked", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			result.SkillsUnlocked = append(result.SkillsUnlocked, skill)
		}
	}
	if st.Level%3 == 0 {
		st.MaxCapacity += 2
	}
	return nil
}

// improveCharacteristic bumps one characteristic by 5, drawn with
// weights that favor what the last ten memories describe.
func (svc *Service) improveCharacteristic(st *model.Progression, recent []model.StoryMemory) string {
	weights := map[string]float64{}
	for _, name := range characteristicNames {
		weights[name] = 1
	}
	for _, mem := range recent {
		summary := strings.ToLower(mem.Summary)
		for _, hint := range characteristicHints {
			for _, word := range hint.words {
				if strings.Contains(summary, word) {
					weights[hint.characteristic] += 2
					break
				}
			}
		}
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	draw := svc.rng.Float64() * total
	for _, name := range characteristicNames {
		draw -= weights[name]
		if draw <= 0 {
			bumpCharacteristic(st, name, 5)
			return name
		}
	}
	bumpCharacteristic(st, "academics", 5)
	return "academics"
}

// ClassifyInput turns free-text player input into an experience gain.
// It never fails: an unreadable progression row just means neutral
// multipliers.
func (svc *Service) ClassifyInput(ctx context.Context, worldID, input, emotion, charID string) Gain {
	baseXP := 10
	skill := ""
	activity := ""
	lowered := strings.ToLower(input)
	for _, rule := range inputRules {
		for _, word := range rule.keywords {
			if strings.Contains(lowered, word) {
				baseXP = rule.baseXP
				skill = rule.skill
				activity = rule.activity
				break
			}
		}
		if skill != "" {
			break
		}
	}

	multiplier := 1.0
	if activity != "" {
		var st model.Progression
		err := svc.db.WithContext(ctx).Where("world_id = ?", worldID).First(&st).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// defaults sit at 50, multiplier stays 1.0
		case err != nil:
			svc.logger.Warn("classify input: progression lookup failed",
				zap.String("world_id", worldID), zap.Error(err))
		default:
			multiplier = experienceMultiplier(&st, activity)
		}
	}

	switch emotion {
	case "happy", "excited", "grateful":
		multiplier += 0.5
	case "angry", "annoyed":
		multiplier += 0.2
	}
	if strings.Contains(charID, "teacher") || strings.Contains(charID, "principal") {
		multiplier += 0.3
	}

	return Gain{
		Amount:        int(math.Floor(float64(baseXP) * multiplier)),
		Source:        "character_interaction",
		SkillCategory: skill,
		Description:   fmt.Sprintf("Interacted with character using: %s", input),
	}
}

// experienceMultiplier scales awards by the characteristic matching the
// activity, clamped to [0.5, 2.0].
func experienceMultiplier(st *model.Progression, activity string) float64 {
	multiplier := 1.0
	switch activity {
	case "academic":
		multiplier += float64(st.Academics-50) / 100
	case "social":
		multiplier += float64(st.Charm-50) / 100
	case "physical":
		multiplier += float64(st.Athletics-50) / 100
	case "creative":
		multiplier += float64(st.Creativity-50) / 100
	}
	return math.Max(0.5, math.Min(2.0, multiplier))
}

// Stats returns the full progression picture for a world. A world with
// no progression row yet gets the starting defaults without persisting
// them.
func (svc *Service) Stats(ctx context.Context, worldID string) (*PlayerStats, error) {
	stats := &PlayerStats{}
	err := svc.db.WithContext(ctx).Where("world_id = ?", worldID).First(&stats.Progression).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stats.Progression = svc.defaultState(worldID)
	} else if err != nil {
		return nil, fmt.Errorf("progression: stats: %w", err)
	}

	err = svc.db.WithContext(ctx).
		Where("world_id = ?", worldID).
		Order("name").
		Find(&stats.Skills).Error
	if err != nil {
		return nil, fmt.Errorf("progression: stats: %w", err)
	}
	err = svc.db.WithContext(ctx).
		Where("world_id = ?", worldID).
		Order("id").
		Find(&stats.Items).Error
	if err != nil {
		return nil, fmt.Errorf("progression: stats: %w", err)
	}
	return stats, nil
}

// CanPerformAction reports whether the given action key is unlocked.
func (svc *Service) CanPerformAction(ctx context.Context, worldID, action string) (bool, error) {
	var st model.Progression
	err := svc.db.WithContext(ctx).Where("world_id = ?", worldID).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("progression: can perform action: %w", err)
	}
	return slices.Contains(st.UnlockedActions, action), nil
}

// AddItem stores an item. Special items always fit; ordinary items are
// rejected with ErrInventoryFull once the capacity is reached.
func (svc *Service) AddItem(ctx context.Context, worldID, name string, special bool) error {
	err := svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !special {
			capacity := svc.cfg.StartingCapacity
			var st model.Progression
			err := tx.Where("world_id = ?", worldID).First(&st).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err == nil {
				capacity = st.MaxCapacity
			}
			var count int64
			err = tx.Model(&model.InventoryItem{}).
				Where("world_id = ? AND special = ?", worldID, false).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count >= int64(capacity) {
				return ErrInventoryFull
			}
		}
		return tx.Create(&model.InventoryItem{
			WorldID: worldID,
			Name:    name,
			Special: special,
		}).Error
	})
	if errors.Is(err, ErrInventoryFull) {
		return err
	}
	if err != nil {
		return fmt.Errorf("progression: add item: %w", err)
	}
	return nil
}

// RemoveItem drops one item by name and reports whether it was held.
func (svc *Service) RemoveItem(ctx context.Context, worldID, name string) (bool, error) {
	var item model.InventoryItem
	err := svc.db.WithContext(ctx).
		Where("world_id = ? AND name = ?", worldID, name).
		Order("id").
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("progression: remove item: %w", err)
	}
	if err := svc.db.WithContext(ctx).Delete(&item).Error; err != nil {
		return false, fmt.Errorf("progression: remove item: %w", err)
	}
	return true, nil
}

func (svc *Service) stateForUpdate(tx *gorm.DB, worldID string) (*model.Progression, error) {
	var st model.Progression
	err := tx.Where("world_id = ?", worldID).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		st = svc.defaultState(worldID)
		if err := tx.Create(&st).Error; err != nil {
			return nil, err
		}
		return &st, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (svc *Service) defaultState(worldID string) model.Progression {
	return model.Progression{
		WorldID:          worldID,
		Level:            1,
		ExperienceToNext: 100,
		Academics:        50,
		Athletics:        50,
		Charm:            50,
		Creativity:       50,
		Reputation:       50,
		Courage:          50,
		Empathy:          50,
		Leadership:       50,
		Money:            svc.cfg.StartingMoney,
		MaxCapacity:      svc.cfg.StartingCapacity,
		UnlockedActions:  datatypes.JSONSlice[string]{},
	}
}

func bumpCharacteristic(st *model.Progression, name string, delta int) {
	clampTo := func(v int) int {
		if v > 100 {
			return 100
		}
		if v < 0 {
			return 0
		}
		return v
	}
	switch name {
	case "academics":
		st.Academics = clampTo(st.Academics + delta)
	case "athletics":
		st.Athletics = clampTo(st.Athletics + delta)
	case "charm":
		st.Charm = clampTo(st.Charm + delta)
	case "creativity":
		st.Creativity = clampTo(st.Creativity + delta)
	case "reputation":
		st.Reputation = clampTo(st.Reputation + delta)
	case "courage":
		st.Courage = clampTo(st.Courage + delta)
	case "empathy":
		st.Empathy = clampTo(st.Empathy + delta)
	case "leadership":
		st.Leadership = clampTo(st.Leadership + delta)
	}
}
