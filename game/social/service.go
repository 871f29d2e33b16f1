package social

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/fukimorihigh/server/config"
	"github.com/fukimorihigh/server/game/memlog"
	"github.com/fukimorihigh/server/game/registry"
	"github.com/fukimorihigh/server/model"
	"github.com/fukimorihigh/server/resource"
)

// impactRule maps action keywords to a base reputation impact. Rules are
// checked in order; the first rule with a matching keyword wins.
type impactRule struct {
	keywords []string
	base     int
}

var impactRules = []impactRule{
	{keywords: []string{"help", "kind", "generous"}, base: 3},
	{keywords: []string{"rude", "mean", "selfish"}, base: -4},
	{keywords: []string{"funny", "clever"}, base: 2},
}

// Service turns a single witnessed action into graph-wide relationship and
// reputation changes. Everything here is synchronous and deterministic.
type Service struct {
	registry *registry.Service
	memories *memlog.Service
	catalog  *resource.Catalog
	logger   *zap.Logger
	cfg      config.GameConfig
}

// NewService creates the propagation engine.
func NewService(reg *registry.Service, mem *memlog.Service, cat *resource.Catalog, logger *zap.Logger, cfg config.GameConfig) *Service {
	return &Service{registry: reg, memories: mem, catalog: cat, logger: logger, cfg: cfg}
}

// Context describes the social situation around a character at a location.
type Context struct {
	CharactersPresent  []string `json:"characters_present"`
	SocialPressure     int      `json:"social_pressure"`
	ReputationModifier int      `json:"reputation_modifier"`
	GroupDynamics      string   `json:"group_dynamics"`
}

// Result reports what one group interaction changed.
type Result struct {
	MemoryEventID    string         `json:"memory_event_id"`
	WitnessDeltas    map[string]int `json:"witness_deltas"`
	ReputationChange int            `json:"reputation_change"`
	NewReputation    int            `json:"new_reputation"`
	Context          Context        `json:"context"`
}

// ClassifyAction buckets an action description by substring heuristics.
// Every input maps to some bucket; unrecognized actions return 0.
func ClassifyAction(action string) int {
	lower := strings.ToLower(action)
	for _, rule := range impactRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.base
			}
		}
	}
	return 0
}

// ProcessGroupInteraction applies one witnessed action: appends a group
// memory, adjusts actor<->witness affection in both directions, and moves
// the actor's standalone social reputation. Returns registry.ErrNotFound
// when the actor does not exist.
func (svc *Service) ProcessGroupInteraction(ctx context.Context, worldID, actorID, action, emotion string, witnessIDs []string, location string) (*Result, error) {
	actor, err := svc.registry.Get(ctx, worldID, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, registry.ErrNotFound
	}

	sctx, err := svc.SocialContext(ctx, worldID, actorID, location)
	if err != nil {
		return nil, err
	}

	mem, err := svc.memories.Append(ctx, worldID, memlog.Entry{
		Participants:  append([]string{actorID}, witnessIDs...),
		Location:      location,
		Summary:       fmt.Sprintf("%s %s in front of %d others", actor.Name, action, len(witnessIDs)),
		EmotionalTone: emotion,
	})
	if err != nil {
		return nil, err
	}

	base := ClassifyAction(action)
	deltas := make(map[string]int, len(witnessIDs))
	for _, witnessID := range witnessIDs {
		witness, err := svc.registry.Get(ctx, worldID, witnessID)
		if err != nil {
			return nil, err
		}
		if witness == nil {
			continue
		}

		strength := 1.0
		rel, err := svc.registry.GetRelationship(ctx, worldID, actorID, witnessID)
		if err != nil {
			return nil, err
		}
		if rel != nil {
			if rel.Affection > 70 {
				strength = svc.cfg.FriendReactionScale
			} else if rel.Affection < 30 {
				strength = svc.cfg.EnemyReactionScale
			}
		}
		impact := floorScale(base, strength)
		deltas[witnessID] = impact

		if _, err := svc.registry.UpdateRelationship(ctx, worldID, actorID, witnessID, registry.RelationshipDelta{
			AffectionChange: impact,
			NewMemory:       fmt.Sprintf("%s %s in %s", actor.Name, action, location),
		}); err != nil {
			return nil, err
		}
		if _, err := svc.registry.UpdateRelationship(ctx, worldID, witnessID, actorID, registry.RelationshipDelta{
			AffectionChange: impact,
			NewMemory:       fmt.Sprintf("Witnessed %s %s", actor.Name, action),
		}); err != nil {
			return nil, err
		}
	}

	repChange := int(math.Floor(float64(sctx.ReputationModifier+len(witnessIDs)) / 2))
	newRep := actor.Abilities.Data().Social.Reputation
	if base != 0 && repChange != 0 {
		signed := repChange
		if base < 0 {
			signed = -repChange
		}
		newRep, err = svc.registry.UpdateSocialReputation(ctx, worldID, actorID, signed)
		if err != nil {
			return nil, err
		}
		repChange = signed
	} else {
		repChange = 0
	}

	svc.logger.Info("group interaction",
		zap.String("world_id", worldID),
		zap.String("actor", actorID),
		zap.String("location", location),
		zap.Int("witnesses", len(witnessIDs)),
		zap.Int("base_impact", base),
	)
	return &Result{
		MemoryEventID:    mem.EventID,
		WitnessDeltas:    deltas,
		ReputationChange: repChange,
		NewReputation:    newRep,
		Context:          sctx,
	}, nil
}

// SocialContext estimates who is present at a location and how the group
// leans. Read-only; an unknown character yields an empty neutral context.
func (svc *Service) SocialContext(ctx context.Context, worldID, charID, location string) (Context, error) {
	neutral := Context{CharactersPresent: []string{}, GroupDynamics: "neutral"}

	ch, err := svc.registry.Get(ctx, worldID, charID)
	if err != nil {
		return neutral, err
	}
	if ch == nil {
		return neutral, nil
	}

	others, err := svc.registry.List(ctx, worldID)
	if err != nil {
		return neutral, err
	}

	present := []string{}
	pressure := 0
	friends := 0
	enemies := 0
	for i := range others {
		other := &others[i]
		if other.CharID == charID {
			continue
		}
		if !svc.wouldBePresent(other, location) {
			continue
		}
		present = append(present, other.CharID)

		rel, err := svc.registry.GetRelationship(ctx, worldID, charID, other.CharID)
		if err != nil {
			return neutral, err
		}
		if rel != nil {
			if rel.Affection > 60 {
				friends++
			} else if rel.Affection < 40 {
				enemies++
			}
		}
		if other.Abilities.Data().Social.Reputation > 70 {
			pressure += 2
		}
	}

	modifier := 0
	rep := ch.Abilities.Data().Social.Reputation
	if rep > 70 {
		modifier = 2
	} else if rep < 30 {
		modifier = -1
	}

	dynamics := "neutral"
	switch {
	case friends > enemies+1:
		dynamics = "supportive"
	case enemies > friends+1:
		dynamics = "hostile"
	case pressure > 5:
		dynamics = "tense"
	}

	return Context{
		CharactersPresent:  present,
		SocialPressure:     pressure,
		ReputationModifier: modifier,
		GroupDynamics:      dynamics,
	}, nil
}

// SpreadReputation applies a delta to each direct witness's view of the
// player, then a halved hearsay delta to each witness's social-circle
// members. Diffusion stops after one hop.
func (svc *Service) SpreadReputation(ctx context.Context, worldID, action string, witnessIDs []string, baseDelta int) error {
	for _, witnessID := range witnessIDs {
		witness, err := svc.registry.Get(ctx, worldID, witnessID)
		if err != nil {
			return err
		}
		if witness == nil {
			continue
		}
		if _, err := svc.registry.UpdateRelationship(ctx, worldID, witnessID, "player", registry.RelationshipDelta{
			AffectionChange: baseDelta,
			NewMemory:       fmt.Sprintf("Witnessed player %s", action),
		}); err != nil {
			return err
		}

		hearsay := int(math.Floor(float64(baseDelta) * svc.cfg.HearsayFactor))
		for _, friendID := range witness.Abilities.Data().Social.SocialCircle {
			if friendID == "player" {
				continue
			}
			friend, err := svc.registry.Get(ctx, worldID, friendID)
			if err != nil {
				return err
			}
			if friend == nil {
				continue
			}
			if _, err := svc.registry.UpdateRelationship(ctx, worldID, friendID, "player", registry.RelationshipDelta{
				AffectionChange: hearsay,
				NewMemory:       fmt.Sprintf("Heard from %s that player %s", witness.Name, action),
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// wouldBePresent is the locator rule: the first presence rule whose tag the
// character carries decides, the empty-tag rule is the fallback. "athletic"
// matches characters with at least one sport rather than a literal tag.
func (svc *Service) wouldBePresent(ch *model.Character, location string) bool {
	if svc.catalog.LocationByID(location) == nil {
		return false
	}
	for _, rule := range svc.catalog.Presence {
		if rule.Tag == "" {
			return slices.Contains(rule.Locations, location)
		}
		if rule.Tag == "athletic" {
			if len(ch.Abilities.Data().Athletic.Sports) > 0 {
				return slices.Contains(rule.Locations, location)
			}
			continue
		}
		if slices.Contains([]string(ch.ReputationTags), rule.Tag) {
			return slices.Contains(rule.Locations, location)
		}
	}
	return false
}

func floorScale(base int, scale float64) int {
	return int(math.Floor(float64(base) * scale))
}
