package world

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fukimorihigh/server/config"
	"github.com/fukimorihigh/server/game/memlog"
	"github.com/fukimorihigh/server/game/registry"
	"github.com/fukimorihigh/server/model"
	"github.com/fukimorihigh/server/resource"
)

// ErrNotFound is returned when a world ID does not exist.
var ErrNotFound = errors.New("world: not found")

var startingActions = []string{"study", "exercise", "socialize", "explore_school"}

var startingItems = []string{"school_bag", "pencil", "notebook"}

// Service creates and resets game saves. A new world gets the full
// starting state: staff characters, opening memories, the reputation
// and progression singletons, the skill table and the starting
// inventory.
type Service struct {
	db       *gorm.DB
	registry *registry.Service
	memories *memlog.Service
	catalog  *resource.Catalog
	logger   *zap.Logger
	cfg      config.GameConfig
}

// NewService wires the world lifecycle service.
func NewService(db *gorm.DB, reg *registry.Service, mem *memlog.Service, cat *resource.Catalog, logger *zap.Logger, cfg config.GameConfig) *Service {
	return &Service{db: db, registry: reg, memories: mem, catalog: cat, logger: logger, cfg: cfg}
}

// Status summarizes one world's seeded state.
type Status struct {
	World      model.World `json:"world"`
	Characters int64       `json:"characters"`
	Memories   int64       `json:"memories"`
	Skills     int64       `json:"skills"`
}

// Init creates a new world for the account and seeds the starting state.
func (svc *Service) Init(ctx context.Context, accountID int64, playerName string) (*model.World, error) {
	if playerName == "" {
		playerName = "Transfer Student"
	}
	w := &model.World{
		ID:         uuid.New().String(),
		AccountID:  accountID,
		PlayerName: playerName,
	}
	if err := svc.db.WithContext(ctx).Create(w).Error; err != nil {
		return nil, fmt.Errorf("world: init: %w", err)
	}
	if err := svc.seed(ctx, w); err != nil {
		return nil, err
	}
	svc.logger.Info("world initialized",
		zap.String("world_id", w.ID),
		zap.Int64("account_id", accountID))
	return w, nil
}

// Get returns a world by ID, nil when absent.
func (svc *Service) Get(ctx context.Context, worldID string) (*model.World, error) {
	var w model.World
	err := svc.db.WithContext(ctx).Where("id = ?", worldID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("world: get: %w", err)
	}
	return &w, nil
}

// GetStatus reports the seeded row counts for a world.
func (svc *Service) GetStatus(ctx context.Context, worldID string) (*Status, error) {
	w, err := svc.Get(ctx, worldID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNotFound
	}
	st := &Status{World: *w}
	db := svc.db.WithContext(ctx)
	if err := db.Model(&model.Character{}).Where("world_id = ?", worldID).Count(&st.Characters).Error; err != nil {
		return nil, fmt.Errorf("world: status: %w", err)
	}
	if err := db.Model(&model.StoryMemory{}).Where("world_id = ?", worldID).Count(&st.Memories).Error; err != nil {
		return nil, fmt.Errorf("world: status: %w", err)
	}
	if err := db.Model(&model.PlayerSkill{}).Where("world_id = ?", worldID).Count(&st.Skills).Error; err != nil {
		return nil, fmt.Errorf("world: status: %w", err)
	}
	return st, nil
}

// Reset wipes every world-keyed row and reseeds the starting state.
func (svc *Service) Reset(ctx context.Context, worldID string) error {
	w, err := svc.Get(ctx, worldID)
	if err != nil {
		return err
	}
	if w == nil {
		return ErrNotFound
	}

	err = svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tables := []interface{}{
			&model.Character{},
			&model.Relationship{},
			&model.StoryMemory{},
			&model.ReputationState{},
			&model.UnlockedAchievement{},
			&model.Progression{},
			&model.PlayerSkill{},
			&model.InventoryItem{},
		}
		for _, table := range tables {
			if err := tx.Where("world_id = ?", worldID).Delete(table).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("world: reset: %w", err)
	}

	if err := svc.seed(ctx, w); err != nil {
		return err
	}
	svc.logger.Info("world reset", zap.String("world_id", worldID))
	return nil
}

func (svc *Service) seed(ctx context.Context, w *model.World) error {
	for i := range svc.catalog.Staff {
		s := &svc.catalog.Staff[i]
		_, err := svc.registry.Create(ctx, w.ID, registry.CreateInput{
			CharID:         s.CharID,
			Name:           s.Name,
			Age:            s.Age,
			Gender:         s.Gender,
			Appearance:     &s.Appearance,
			Personality:    &s.Personality,
			Background:     &s.Background,
			Abilities:      &s.Abilities,
			DailyRoutine:   &s.DailyRoutine,
			ReputationTags: s.ReputationTags,
		})
		if err != nil {
			return fmt.Errorf("world: seed staff %s: %w", s.CharID, err)
		}
	}

	_, err := svc.registry.Create(ctx, w.ID, registry.CreateInput{
		CharID:         "player",
		Name:           w.PlayerName,
		ReputationTags: []string{"student", "new transfer"},
	})
	if err != nil {
		return fmt.Errorf("world: seed player: %w", err)
	}

	if err := svc.seedMemories(ctx, w.ID); err != nil {
		return err
	}

	err = svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.ReputationState{
			WorldID:        w.ID,
			Popularity:     50,
			Respect:        50,
			Fear:           0,
			Attractiveness: 50,
			Notoriety:      10,
			Title:          "The Transfer Student",
		}).Error; err != nil {
			return err
		}
		if err := tx.Create(&model.Progression{
			WorldID:          w.ID,
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
			UnlockedActions:  datatypes.NewJSONSlice(startingActions),
		}).Error; err != nil {
			return err
		}
		for _, sk := range svc.catalog.Skills {
			if err := tx.Create(&model.PlayerSkill{
				WorldID:  w.ID,
				Name:     sk.Name,
				Level:    1,
				Unlocked: sk.Unlocked,
			}).Error; err != nil {
				return err
			}
		}
		for _, item := range startingItems {
			if err := tx.Create(&model.InventoryItem{
				WorldID: w.ID,
				Name:    item,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("world: seed: %w", err)
	}
	return nil
}

func (svc *Service) seedMemories(ctx context.Context, worldID string) error {
	openings := []memlog.Entry{
		{
			EventID:       "school_opening",
			Participants:  []string{"principal_yoshida", "teacher_tanaka", "teacher_anderson", "nurse_kimura", "coach_saito"},
			Location:      "entrance",
			Summary:       "Fukimori High School officially opened for the new academic year with a welcome ceremony",
			EmotionalTone: "ceremonial and hopeful",
			Consequences:  []string{"new academic year begins", "teachers prepared for new students"},
			DialogueHighlights: []string{
				`Principal Yoshida: "Welcome to another year of learning and growth at Fukimori High"`,
				`Ms. Anderson: "I'm excited to meet our new students and help them discover their voices"`,
			},
		},
		{
			EventID:       "teacher_planning_meeting",
			Participants:  []string{"teacher_tanaka", "teacher_anderson", "principal_yoshida"},
			Location:      "faculty_room",
			Summary:       "Teachers collaborated on interdisciplinary approaches to engage students",
			EmotionalTone: "collaborative and enthusiastic",
			Consequences:  []string{"improved teaching coordination", "cross-subject projects planned"},
			DialogueHighlights: []string{
				`Mr. Tanaka: "We could incorporate mathematical concepts into creative writing"`,
				`Ms. Anderson: "That's brilliant! Students love when subjects connect meaningfully"`,
			},
		},
		{
			EventID:       "health_wellness_program",
			Participants:  []string{"nurse_kimura", "coach_saito", "principal_yoshida"},
			Location:      "health_office",
			Summary:       "School launched comprehensive student wellness program",
			EmotionalTone: "caring and proactive",
			Consequences:  []string{"improved student health awareness", "preventive care programs established"},
			DialogueHighlights: []string{
				`Nurse Kimura: "Early intervention is key to student wellbeing"`,
				`Coach Saito: "Physical and mental health go hand in hand"`,
			},
		},
	}
	for _, e := range openings {
		if _, err := svc.memories.Append(ctx, worldID, e); err != nil {
			return fmt.Errorf("world: seed memories: %w", err)
		}
	}
	return nil
}
