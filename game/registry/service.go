package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fukimorihigh/server/model"
)

// ErrNotFound is returned when an operation requires a character that was
// supposed to exist already. Plain lookups return (nil, nil) instead.
var ErrNotFound = errors.New("registry: character not found")

// Service is the character registry for one server instance. All rows are
// keyed by world ID; characters from different saves never see each other.
type Service struct {
	db         *gorm.DB
	logger     *zap.Logger
	historyCap int
}

// NewService creates a registry Service. historyCap bounds the shared-memory
// and conflict-history lists on each relationship.
func NewService(db *gorm.DB, logger *zap.Logger, historyCap int) *Service {
	return &Service{db: db, logger: logger, historyCap: historyCap}
}

// CreateInput is a partial character sheet. Omitted fields get documented
// defaults; an omitted CharID gets a generated UUID.
type CreateInput struct {
	CharID         string
	Name           string
	Age            int
	Gender         string
	Appearance     *model.Appearance
	Personality    *model.Personality
	Background     *model.Background
	Abilities      *model.Abilities
	DailyRoutine   *model.DailyRoutine
	ReputationTags []string
}

// Create stores a character, filling omitted fields with defaults. Calling
// twice with the same CharID overwrites the previous sheet.
func (svc *Service) Create(ctx context.Context, worldID string, in CreateInput) (*model.Character, error) {
	charID := in.CharID
	if charID == "" {
		charID = "char_" + uuid.New().String()
	}
	name := in.Name
	if name == "" {
		name = "Unknown Student"
	}
	age := in.Age
	if age == 0 {
		age = 16
	}
	gender := in.Gender
	if gender == "" {
		gender = "unspecified"
	}

	appearance := model.Appearance{
		HairColor: "black",
		HairStyle: "medium length",
		EyeColor:  "brown",
		Height:    "average",
		BodyType:  "average",
	}
	if in.Appearance != nil {
		appearance = *in.Appearance
	}
	personality := model.Personality{
		Traits:     []string{"friendly"},
		CoreValues: []string{"honesty", "friendship"},
	}
	if in.Personality != nil {
		personality = *in.Personality
	}
	background := model.Background{EconomicStatus: "middle class"}
	if in.Background != nil {
		background = *in.Background
	}
	abilities := model.Abilities{
		Social: model.SocialAbility{Reputation: 50, PopularityLevel: "average"},
	}
	if in.Abilities != nil {
		abilities = *in.Abilities
	}
	routine := model.DailyRoutine{}
	if in.DailyRoutine != nil {
		routine = *in.DailyRoutine
	}

	ch := &model.Character{
		WorldID:        worldID,
		CharID:         charID,
		Name:           name,
		Age:            age,
		Gender:         gender,
		Appearance:     datatypes.NewJSONType(appearance),
		Personality:    datatypes.NewJSONType(personality),
		Background:     datatypes.NewJSONType(background),
		Abilities:      datatypes.NewJSONType(abilities),
		DailyRoutine:   datatypes.NewJSONType(routine),
		ReputationTags: datatypes.NewJSONSlice(in.ReputationTags),
	}

	err := svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Character
		err := tx.Where("world_id = ? AND char_id = ?", worldID, charID).First(&existing).Error
		if err == nil {
			ch.ID = existing.ID
			ch.CreatedAt = existing.CreatedAt
			return tx.Save(ch).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(ch).Error
	})
	if err != nil {
		return nil, fmt.Errorf("registry: create %s: %w", charID, err)
	}
	svc.logger.Info("character created",
		zap.String("world_id", worldID),
		zap.String("char_id", charID),
		zap.String("name", name),
	)
	return ch, nil
}

// Get returns the character with the given CharID, or (nil, nil) if absent.
func (svc *Service) Get(ctx context.Context, worldID, charID string) (*model.Character, error) {
	var ch model.Character
	err := svc.db.WithContext(ctx).Where("world_id = ? AND char_id = ?", worldID, charID).First(&ch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("registry: get %s: %w", charID, err)
	}
	return &ch, nil
}

// List returns every character in the world.
func (svc *Service) List(ctx context.Context, worldID string) ([]model.Character, error) {
	var chars []model.Character
	err := svc.db.WithContext(ctx).Where("world_id = ?", worldID).Order("id").Find(&chars).Error
	if err != nil {
		return nil, fmt.Errorf("registry: list: %w", err)
	}
	return chars, nil
}

// RelationshipDelta is one directional relationship mutation. Zero-valued
// fields are skipped.
type RelationshipDelta struct {
	Type            string
	AffectionChange int
	TrustChange     int
	NewMemory       string
	ConflictEvent   string
}

// UpdateRelationship applies a delta to the owner's view of the other
// character, creating a default-neutral relationship if none exists yet.
// The reverse direction is never touched; callers wanting symmetric updates
// call twice. Returns ErrNotFound when the owner character does not exist.
func (svc *Service) UpdateRelationship(ctx context.Context, worldID, ownerID, otherID string, delta RelationshipDelta) (*model.Relationship, error) {
	var out *model.Relationship
	err := svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner model.Character
		if err := tx.Where("world_id = ? AND char_id = ?", worldID, ownerID).First(&owner).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var rel model.Relationship
		err := tx.Where("world_id = ? AND owner_id = ? AND other_id = ?", worldID, ownerID, otherID).First(&rel).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rel = model.Relationship{
				WorldID:   worldID,
				OwnerID:   ownerID,
				OtherID:   otherID,
				Type:      "acquaintance",
				Affection: 50,
				Trust:     50,
			}
		} else if err != nil {
			return err
		}

		if delta.Type != "" {
			rel.Type = delta.Type
		}
		rel.Affection = clamp(rel.Affection + delta.AffectionChange)
		rel.Trust = clamp(rel.Trust + delta.TrustChange)
		rel.Status = StatusForAffection(rel.Affection)
		if delta.NewMemory != "" {
			rel.SharedMemories = appendCapped(rel.SharedMemories, delta.NewMemory, svc.historyCap)
		}
		if delta.ConflictEvent != "" {
			rel.ConflictHistory = appendCapped(rel.ConflictHistory, delta.ConflictEvent, svc.historyCap)
		}

		if rel.ID == 0 {
			if err := tx.Create(&rel).Error; err != nil {
				return err
			}
		} else if err := tx.Save(&rel).Error; err != nil {
			return err
		}
		out = &rel
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("registry: update relationship %s->%s: %w", ownerID, otherID, err)
	}
	return out, nil
}

// GetRelationship returns the owner's view of the other character, or
// (nil, nil) when no relationship record exists yet.
func (svc *Service) GetRelationship(ctx context.Context, worldID, ownerID, otherID string) (*model.Relationship, error) {
	var rel model.Relationship
	err := svc.db.WithContext(ctx).Where("world_id = ? AND owner_id = ? AND other_id = ?", worldID, ownerID, otherID).First(&rel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("registry: get relationship %s->%s: %w", ownerID, otherID, err)
	}
	return &rel, nil
}

// ListRelationships returns every relationship owned by the character.
func (svc *Service) ListRelationships(ctx context.Context, worldID, ownerID string) ([]model.Relationship, error) {
	var rels []model.Relationship
	err := svc.db.WithContext(ctx).Where("world_id = ? AND owner_id = ?", worldID, ownerID).Find(&rels).Error
	if err != nil {
		return nil, fmt.Errorf("registry: list relationships %s: %w", ownerID, err)
	}
	return rels, nil
}

// UpdateSocialReputation applies a clamped delta to the character's
// abilities.social.reputation score and returns the new value.
func (svc *Service) UpdateSocialReputation(ctx context.Context, worldID, charID string, delta int) (int, error) {
	var newRep int
	err := svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ch model.Character
		if err := tx.Where("world_id = ? AND char_id = ?", worldID, charID).First(&ch).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		abilities := ch.Abilities.Data()
		abilities.Social.Reputation = clamp(abilities.Social.Reputation + delta)
		newRep = abilities.Social.Reputation
		ch.Abilities = datatypes.NewJSONType(abilities)
		return tx.Save(&ch).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("registry: update social reputation %s: %w", charID, err)
	}
	return newRep, nil
}

// StatusForAffection derives the relationship status label from affection.
func StatusForAffection(affection int) string {
	switch {
	case affection > 80:
		return model.StatusCloseFriend
	case affection > 60:
		return model.StatusFriend
	case affection > 40:
		return model.StatusAcquaintance
	case affection > 20:
		return model.StatusDistant
	default:
		return model.StatusDislike
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

// appendCapped appends s and drops oldest entries beyond limit. limit <= 0
// means unbounded.
func appendCapped(list datatypes.JSONSlice[string], s string, limit int) datatypes.JSONSlice[string] {
	list = append(list, s)
	if limit > 0 && len(list) > limit {
		list = list[len(list)-limit:]
	}
	return list
}
