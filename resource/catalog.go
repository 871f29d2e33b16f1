package resource

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fukimorihigh/server/model"
)

// AchievementDef is a static achievement definition. Each achievement fires
// at most once per world, keyed by TriggerEvent, and applies its reputation
// effect when unlocked.
type AchievementDef struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Category     string           `json:"category"`
	Rarity       string           `json:"rarity"`
	TriggerEvent string           `json:"trigger_event"`
	Effect       ReputationEffect `json:"reputation_effect"`
}

// ReputationEffect is the delta an achievement applies to the four
// reputation axes. Values may be negative.
type ReputationEffect struct {
	Popularity     int `json:"popularity_change"`
	Respect        int `json:"respect_change"`
	Fear           int `json:"fear_change"`
	Attractiveness int `json:"attractiveness_change"`
}

// LocationDef is a static school location.
type LocationDef struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	Description        string   `json:"description"`
	Atmosphere         string   `json:"atmosphere"`
	KeyFeatures        []string `json:"key_features"`
	ConnectedLocations []string `json:"connected_locations"`
	TypicalActivities  []string `json:"typical_activities"`
}

// PresenceRule maps a reputation tag to the locations where characters
// carrying that tag are found during group interactions. Rules are checked
// in order; the first matching tag wins.
type PresenceRule struct {
	Tag       string   `json:"tag"`
	Locations []string `json:"locations"`
}

// StaffSeed is a fully-specified character the world initializer inserts
// into every new save.
type StaffSeed struct {
	CharID         string             `json:"char_id"`
	Name           string             `json:"name"`
	Age            int                `json:"age"`
	Gender         string             `json:"gender"`
	Appearance     model.Appearance   `json:"appearance"`
	Personality    model.Personality  `json:"personality"`
	Background     model.Background   `json:"background"`
	Abilities      model.Abilities    `json:"abilities"`
	DailyRoutine   model.DailyRoutine `json:"daily_routine"`
	ReputationTags []string           `json:"reputation_tags"`
}

// SkillSeed is one entry in the starting skill table.
type SkillSeed struct {
	Name     string `json:"name"`
	Unlocked bool   `json:"unlocked"`
}

// Catalog holds all static game data. Loaded once at startup and shared
// read-only between services.
type Catalog struct {
	Achievements []AchievementDef
	Locations    []LocationDef
	Presence     []PresenceRule
	Staff        []StaffSeed
	Skills       []SkillSeed

	achievementsByTrigger map[string]*AchievementDef
	achievementsByID      map[string]*AchievementDef
	locationsByID         map[string]*LocationDef
}

// Load builds the catalog from the compiled-in defaults, then applies any
// JSON override files found in dir. An empty dir loads defaults only.
// Override files replace whole sections: achievements.json, locations.json,
// presence.json, staff.json, skills.json.
func Load(dir string) (*Catalog, error) {
	cat := &Catalog{
		Achievements: defaultAchievements(),
		Locations:    defaultLocations(),
		Presence:     defaultPresenceRules(),
		Staff:        defaultStaff(),
		Skills:       defaultSkills(),
	}
	if dir != "" {
		if err := overrideSection(dir, "achievements.json", &cat.Achievements); err != nil {
			return nil, err
		}
		if err := overrideSection(dir, "locations.json", &cat.Locations); err != nil {
			return nil, err
		}
		if err := overrideSection(dir, "presence.json", &cat.Presence); err != nil {
			return nil, err
		}
		if err := overrideSection(dir, "staff.json", &cat.Staff); err != nil {
			return nil, err
		}
		if err := overrideSection(dir, "skills.json", &cat.Skills); err != nil {
			return nil, err
		}
	}
	cat.buildIndexes()
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// overrideSection reads dir/file into out if the file exists. A missing file
// keeps the defaults.
func overrideSection[T any](dir, file string, out *[]T) error {
	path := filepath.Join(dir, file)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("resource: read %s: %w", path, err)
	}
	var arr []T
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("resource: parse %s: %w", path, err)
	}
	*out = arr
	return nil
}

func (c *Catalog) buildIndexes() {
	c.achievementsByTrigger = make(map[string]*AchievementDef, len(c.Achievements))
	c.achievementsByID = make(map[string]*AchievementDef, len(c.Achievements))
	for i := range c.Achievements {
		a := &c.Achievements[i]
		c.achievementsByTrigger[a.TriggerEvent] = a
		c.achievementsByID[a.ID] = a
	}
	c.locationsByID = make(map[string]*LocationDef, len(c.Locations))
	for i := range c.Locations {
		c.locationsByID[c.Locations[i].ID] = &c.Locations[i]
	}
}

func (c *Catalog) validate() error {
	for _, a := range c.Achievements {
		if a.ID == "" || a.TriggerEvent == "" {
			return fmt.Errorf("resource: achievement %q missing id or trigger_event", a.Name)
		}
	}
	for _, l := range c.Locations {
		if l.ID == "" {
			return fmt.Errorf("resource: location %q missing id", l.Name)
		}
	}
	for _, s := range c.Staff {
		if s.CharID == "" || s.Name == "" {
			return fmt.Errorf("resource: staff seed missing char_id or name")
		}
	}
	return nil
}

// AchievementByTrigger returns the achievement fired by the given event key,
// or nil if no achievement is bound to it.
func (c *Catalog) AchievementByTrigger(event string) *AchievementDef {
	return c.achievementsByTrigger[event]
}

// AchievementByID returns the achievement with the given ID, or nil.
func (c *Catalog) AchievementByID(id string) *AchievementDef {
	return c.achievementsByID[id]
}

// LocationByID returns the location with the given ID, or nil.
func (c *Catalog) LocationByID(id string) *LocationDef {
	return c.locationsByID[id]
}

// LocationsForTag returns the location IDs where a character carrying the
// given reputation tag is typically found, or nil if no rule matches.
func (c *Catalog) LocationsForTag(tag string) []string {
	for _, r := range c.Presence {
		if r.Tag == tag {
			return r.Locations
		}
	}
	return nil
}

// DefaultPresenceLocations returns the fallback common areas used when no
// presence rule matches a character.
func (c *Catalog) DefaultPresenceLocations() []string {
	for _, r := range c.Presence {
		if r.Tag == "" {
			return r.Locations
		}
	}
	return nil
}
