package model

import (
	"time"

	"gorm.io/datatypes"
)

// Outfits describes a character's clothing set.
type Outfits struct {
	SchoolUniform  string   `json:"school_uniform"`
	CasualWear     []string `json:"casual_wear"`
	SpecialOutfits []string `json:"special_outfits"`
	Accessories    []string `json:"accessories"`
}

// Appearance holds fixed cosmetic descriptors. Write-once: used for
// consistent prompt/image generation, never for gameplay logic.
type Appearance struct {
	HairColor           string   `json:"hair_color"`
	HairStyle           string   `json:"hair_style"`
	EyeColor            string   `json:"eye_color"`
	Height              string   `json:"height"`
	BodyType            string   `json:"body_type"`
	DistinctiveFeatures []string `json:"distinctive_features"`
	Outfits             Outfits  `json:"outfits"`
	PhysicalMarks       []string `json:"physical_marks"`
}

// Personality is a character's nature. Write-once after creation.
type Personality struct {
	Traits           []string `json:"traits"`
	Likes            []string `json:"likes"`
	Dislikes         []string `json:"dislikes"`
	Fears            []string `json:"fears"`
	Goals            []string `json:"goals"`
	SpeechPattern    string   `json:"speech_pattern"`
	CoreValues       []string `json:"core_values"`
	BehaviorPatterns []string `json:"behavior_patterns"`
	SocialStyle      string   `json:"social_style"`
}

// Parent is one parent entry in a character's family record.
type Parent struct {
	Name        string `json:"name"`
	Occupation  string `json:"occupation"`
	Personality string `json:"personality"`
}

// Sibling is one sibling entry in a character's family record.
type Sibling struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Relationship string `json:"relationship"`
}

// Family describes a character's household.
type Family struct {
	Father           Parent    `json:"father"`
	Mother           Parent    `json:"mother"`
	Siblings         []Sibling `json:"siblings"`
	FamilyWealth     string    `json:"family_wealth"`
	FamilyReputation string    `json:"family_reputation"`
}

// Background is a character's history. Write-once after creation.
type Background struct {
	Family          Family   `json:"family"`
	HomeAddress     string   `json:"home_address"`
	RoomDescription string   `json:"room_description"`
	EconomicStatus  string   `json:"economic_status"`
	Backstory       string   `json:"backstory"`
	Secrets         []string `json:"secrets"`
	PastTrauma      string   `json:"past_trauma,omitempty"`
}

// AcademicAbility covers school performance.
type AcademicAbility struct {
	Subjects     []string `json:"subjects"`
	AverageGrade string   `json:"average_grade"`
	StudyHabits  string   `json:"study_habits"`
}

// AthleticAbility covers sports and physical fitness.
type AthleticAbility struct {
	Sports           []string `json:"sports"`
	PhysicalStrength int      `json:"physical_strength"`
	Endurance        int      `json:"endurance"`
}

// ArtisticAbility covers creative talents.
type ArtisticAbility struct {
	Talents    []string `json:"talents"`
	SkillLevel string   `json:"skill_level"`
}

// SocialAbility covers standing within the school. Reputation is the only
// mutable field on the whole Abilities record: group interactions adjust
// it, clamped to [0,100].
type SocialAbility struct {
	Reputation      int      `json:"reputation"`
	PopularityLevel string   `json:"popularity_level"`
	SocialCircle    []string `json:"social_circle"`
}

// SupernaturalAbility is the optional supernatural-power descriptor.
type SupernaturalAbility struct {
	Powers         []string `json:"powers"`
	PowerLevel     int      `json:"power_level"`
	Limitations    []string `json:"limitations"`
	AwakeningStory string   `json:"awakening_story"`
	ControlLevel   string   `json:"control_level"`
}

// Abilities groups a character's per-domain scores.
type Abilities struct {
	Academic     AcademicAbility      `json:"academic"`
	Athletic     AthleticAbility      `json:"athletic"`
	Artistic     ArtisticAbility      `json:"artistic"`
	Social       SocialAbility        `json:"social"`
	Supernatural *SupernaturalAbility `json:"supernatural,omitempty"`
}

// DailyRoutine is where a character typically spends the day; the social
// presence rule consults it together with ReputationTags.
type DailyRoutine struct {
	Morning     string `json:"morning"`
	Lunch       string `json:"lunch"`
	AfterSchool string `json:"after_school"`
	Weekend     string `json:"weekend"`
}

// Character is a persistent NPC or the player within one world. CharID is
// the stable in-world identifier ("player", "teacher_tanaka", ...).
type Character struct {
	ID             int64                            `gorm:"primaryKey;autoIncrement" json:"id"`
	WorldID        string                           `gorm:"uniqueIndex:idx_world_char;size:36;not null" json:"world_id"`
	CharID         string                           `gorm:"uniqueIndex:idx_world_char;size:64;not null" json:"char_id"`
	Name           string                           `gorm:"size:64;not null" json:"name"`
	Age            int                              `gorm:"default:16" json:"age"`
	Gender         string                           `gorm:"size:16" json:"gender"`
	Appearance     datatypes.JSONType[Appearance]   `json:"appearance"`
	Personality    datatypes.JSONType[Personality]  `json:"personality"`
	Background     datatypes.JSONType[Background]   `json:"background"`
	Abilities      datatypes.JSONType[Abilities]    `json:"abilities"`
	DailyRoutine   datatypes.JSONType[DailyRoutine] `json:"daily_routine"`
	ReputationTags datatypes.JSONSlice[string]      `json:"reputation_tags"`
	CreatedAt      time.Time                        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time                        `gorm:"autoUpdateTime" json:"updated_at"`
}
