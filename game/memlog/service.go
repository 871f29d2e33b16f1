package memlog

import (
	"context"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fukimorihigh/server/model"
)

// Service is the append-only story memory log. Each world keeps at most
// capacity entries; the oldest are evicted first.
type Service struct {
	db       *gorm.DB
	logger   *zap.Logger
	capacity int
}

// NewService creates a memory log Service with the given per-world capacity.
func NewService(db *gorm.DB, logger *zap.Logger, capacity int) *Service {
	return &Service{db: db, logger: logger, capacity: capacity}
}

// Entry is the caller-facing shape of one story memory.
type Entry struct {
	EventID            string   `json:"event_id"`
	Participants       []string `json:"participants"`
	Location           string   `json:"location"`
	Summary            string   `json:"summary"`
	EmotionalTone      string   `json:"emotional_tone"`
	Consequences       []string `json:"consequences"`
	DialogueHighlights []string `json:"dialogue_highlights"`
}

// Append stores a memory at the end of the world's log, assigning a ULID
// event ID when the caller supplies none, then evicts the oldest rows
// beyond capacity.
func (svc *Service) Append(ctx context.Context, worldID string, e Entry) (*model.StoryMemory, error) {
	eventID := e.EventID
	if eventID == "" {
		eventID = ulid.Make().String()
	}
	mem := &model.StoryMemory{
		WorldID:            worldID,
		EventID:            eventID,
		Participants:       e.Participants,
		Location:           e.Location,
		Summary:            e.Summary,
		EmotionalTone:      e.EmotionalTone,
		Consequences:       e.Consequences,
		DialogueHighlights: e.DialogueHighlights,
	}
	err := svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mem).Error; err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&model.StoryMemory{}).Where("world_id = ?", worldID).Count(&count).Error; err != nil {
			return err
		}
		if excess := count - int64(svc.capacity); excess > 0 {
			// Oldest first: creation order, not access order.
			var oldest []int64
			if err := tx.Model(&model.StoryMemory{}).
				Where("world_id = ?", worldID).
				Order("id").
				Limit(int(excess)).
				Pluck("id", &oldest).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", oldest).Delete(&model.StoryMemory{}).Error; err != nil {
				return err
			}
			svc.logger.Debug("memory log evicted",
				zap.String("world_id", worldID),
				zap.Int64("evicted", excess),
			)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("memlog: append: %w", err)
	}
	return mem, nil
}

// CompactAll evicts rows beyond capacity across every world. Append already
// evicts inline, so this only catches worlds whose rows were written outside
// Append or whose capacity was lowered. Run periodically by the scheduler.
func (svc *Service) CompactAll(ctx context.Context) error {
	var worldIDs []string
	err := svc.db.WithContext(ctx).Model(&model.StoryMemory{}).
		Distinct("world_id").
		Pluck("world_id", &worldIDs).Error
	if err != nil {
		return fmt.Errorf("memlog: compact: %w", err)
	}

	for _, worldID := range worldIDs {
		err := svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&model.StoryMemory{}).Where("world_id = ?", worldID).Count(&count).Error; err != nil {
				return err
			}
			excess := count - int64(svc.capacity)
			if excess <= 0 {
				return nil
			}
			var oldest []int64
			if err := tx.Model(&model.StoryMemory{}).
				Where("world_id = ?", worldID).
				Order("id").
				Limit(int(excess)).
				Pluck("id", &oldest).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", oldest).Delete(&model.StoryMemory{}).Error; err != nil {
				return err
			}
			svc.logger.Info("memory log compacted",
				zap.String("world_id", worldID),
				zap.Int64("evicted", excess),
			)
			return nil
		})
		if err != nil {
			return fmt.Errorf("memlog: compact: %w", err)
		}
	}
	return nil
}

// Recent returns the newest limit memories, most recent first.
func (svc *Service) Recent(ctx context.Context, worldID string, limit int) ([]model.StoryMemory, error) {
	var mems []model.StoryMemory
	err := svc.db.WithContext(ctx).
		Where("world_id = ?", worldID).
		Order("id DESC").
		Limit(limit).
		Find(&mems).Error
	if err != nil {
		return nil, fmt.Errorf("memlog: recent: %w", err)
	}
	return mems, nil
}

// QueryRelevant returns the newest limit memories where charID is a
// participant or any lowercase word of freeText appears in the summary or a
// dialogue highlight. Ordering is recency among matches; there is no
// relevance score.
func (svc *Service) QueryRelevant(ctx context.Context, worldID, charID, freeText string, limit int) ([]model.StoryMemory, error) {
	var all []model.StoryMemory
	err := svc.db.WithContext(ctx).
		Where("world_id = ?", worldID).
		Order("id DESC").
		Find(&all).Error
	if err != nil {
		return nil, fmt.Errorf("memlog: query relevant: %w", err)
	}

	words := strings.Fields(strings.ToLower(freeText))
	var out []model.StoryMemory
	for _, m := range all {
		if len(out) >= limit {
			break
		}
		if matchesMemory(&m, charID, words) {
			out = append(out, m)
		}
	}
	return out, nil
}

// QueryByParticipant returns the newest limit memories containing charID.
func (svc *Service) QueryByParticipant(ctx context.Context, worldID, charID string, limit int) ([]model.StoryMemory, error) {
	return svc.QueryRelevant(ctx, worldID, charID, "", limit)
}

func matchesMemory(m *model.StoryMemory, charID string, words []string) bool {
	for _, p := range m.Participants {
		if p == charID {
			return true
		}
	}
	if len(words) == 0 {
		return false
	}
	summary := strings.ToLower(m.Summary)
	for _, w := range words {
		if strings.Contains(summary, w) {
			return true
		}
		for _, h := range m.DialogueHighlights {
			if strings.Contains(strings.ToLower(h), w) {
				return true
			}
		}
	}
	return false
}
