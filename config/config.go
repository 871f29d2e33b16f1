package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Game     GameConfig     `mapstructure:"game"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Security SecurityConfig `mapstructure:"security"`
}

type ServerConfig struct {
	Port     int    `mapstructure:"port"`
	Debug    bool   `mapstructure:"debug"`
	AdminKey string `mapstructure:"admin_key"`
}

type DatabaseConfig struct {
	Mode         string        `mapstructure:"mode"` // memory | sqlite | mysql
	SQLitePath   string        `mapstructure:"sqlite_path"`
	MySQLDSN     string        `mapstructure:"mysql_dsn"`
	MySQLMaxOpen int           `mapstructure:"mysql_max_open"`
	MySQLMaxIdle int           `mapstructure:"mysql_max_idle"`
	MySQLMaxLife time.Duration `mapstructure:"mysql_max_life"`
}

type CacheConfig struct {
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisPassword   string        `mapstructure:"redis_password"`
	RedisDB         int           `mapstructure:"redis_db"`
	LocalGCInterval time.Duration `mapstructure:"local_gc_interval"`
}

// GameConfig collects the simulation tunables. The defaults reproduce the
// original balance; none of them is a hard invariant, so they are all
// overridable from the config file.
type GameConfig struct {
	MemoryCapacity         int     `mapstructure:"memory_capacity"`
	RelationshipHistoryCap int     `mapstructure:"relationship_history_cap"`
	HearsayFactor          float64 `mapstructure:"hearsay_factor"`
	FriendReactionScale    float64 `mapstructure:"friend_reaction_scale"`
	EnemyReactionScale     float64 `mapstructure:"enemy_reaction_scale"`
	SkillXPCostPerLevel    int     `mapstructure:"skill_xp_cost_per_level"`
	LevelXPGrowth          float64 `mapstructure:"level_xp_growth"`
	StartingMoney          int64   `mapstructure:"starting_money"`
	StartingCapacity       int     `mapstructure:"starting_capacity"`
	LeaderboardRefreshS    int     `mapstructure:"leaderboard_refresh_s"`
	MemoryCompactS         int     `mapstructure:"memory_compact_s"`
}

type CatalogConfig struct {
	// Dir optionally points at a directory of JSON catalog overrides
	// (achievements.json, locations.json, staff.json). Empty means the
	// embedded defaults are used as-is.
	Dir string `mapstructure:"dir"`
}

type SecurityConfig struct {
	JWTSecret      string        `mapstructure:"jwt_secret"`
	JWTTTLH        time.Duration `mapstructure:"jwt_ttl_h"`
	RateLimitRPS   float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst int           `mapstructure:"rate_limit_burst"`
	// AdminAllowedIPs lists IPs permitted to call admin endpoints.
	// An empty slice allows all (useful for local development only).
	AdminAllowedIPs []string `mapstructure:"admin_allowed_ips"`
}

// Load reads config from the given YAML file path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.debug", false)
	v.SetDefault("database.mode", "sqlite")
	v.SetDefault("database.sqlite_path", "./data/fukimori.db")
	v.SetDefault("database.mysql_max_open", 50)
	v.SetDefault("database.mysql_max_idle", 10)
	v.SetDefault("database.mysql_max_life", "1h")
	v.SetDefault("cache.local_gc_interval", "30s")
	v.SetDefault("game.memory_capacity", 1000)
	v.SetDefault("game.relationship_history_cap", 50)
	v.SetDefault("game.hearsay_factor", 0.5)
	v.SetDefault("game.friend_reaction_scale", 1.5)
	v.SetDefault("game.enemy_reaction_scale", 1.3)
	v.SetDefault("game.skill_xp_cost_per_level", 50)
	v.SetDefault("game.level_xp_growth", 1.2)
	v.SetDefault("game.starting_money", 1000)
	v.SetDefault("game.starting_capacity", 10)
	v.SetDefault("game.leaderboard_refresh_s", 300)
	v.SetDefault("game.memory_compact_s", 600)
	v.SetDefault("security.jwt_ttl_h", "72h")
	v.SetDefault("security.rate_limit_rps", 100)
	v.SetDefault("security.rate_limit_burst", 200)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultGame returns the reference tunables, used when a service is
// constructed outside the config file path (tests, tools).
func DefaultGame() GameConfig {
	return GameConfig{
		MemoryCapacity:         1000,
		RelationshipHistoryCap: 50,
		HearsayFactor:          0.5,
		FriendReactionScale:    1.5,
		EnemyReactionScale:     1.3,
		SkillXPCostPerLevel:    50,
		LevelXPGrowth:          1.2,
		StartingMoney:          1000,
		StartingCapacity:       10,
		LeaderboardRefreshS:    300,
		MemoryCompactS:         600,
	}
}
