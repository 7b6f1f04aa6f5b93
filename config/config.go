// Package config loads and validates the external sim configuration
// (spec.md §6) before any worker touches the hot loop: a structured
// player/target/spells/auras/rotation/duration/seed/iterations object,
// loaded from YAML and environment overrides via
// github.com/knadh/koanf/v2 and checked with struct tags via
// github.com/go-playground/validator/v10, producing simerr.ConfigInvalid
// on any problem.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/legacy3/wowlab-sub002/simcore"
	"github.com/legacy3/wowlab-sub002/simerr"
	"github.com/legacy3/wowlab-sub002/stats"
)

// envPrefix is the prefix config.Load strips from environment overrides
// (e.g. WOWLABSIM_DURATION=450 overrides "duration").
const envPrefix = "WOWLABSIM_"

// SpellConfig is one spell's external definition (spec.md §6).
type SpellConfig struct {
	ID       int     `koanf:"id" validate:"required"`
	Name     string  `koanf:"name" validate:"required"`
	Cooldown float64 `koanf:"cooldown" validate:"gte=0"`
	HastedCD bool    `koanf:"hasted_cd"`
	Charges  uint8   `koanf:"charges" validate:"gte=0"`

	GCD       float64 `koanf:"gcd" validate:"gte=0"`
	CastTime  float64 `koanf:"cast_time" validate:"gte=0"`
	IsChannel bool    `koanf:"is_channel"`

	Cost         float32 `koanf:"cost" validate:"gte=0"`
	ResourceType string  `koanf:"resource_type" validate:"omitempty,oneof=focus energy rage runic_power mana fury chi holy_power combo soul_shard"`

	BaseMin float32 `koanf:"base_min" validate:"gte=0"`
	BaseMax float32 `koanf:"base_max" validate:"gte=0"`
	APCoef  float32 `koanf:"ap_coef"`
	SPCoef  float32 `koanf:"sp_coef"`
	School  string  `koanf:"school" validate:"omitempty,oneof=physical fire frost nature arcane shadow holy chaos"`
}

// AuraConfig is one aura's external definition (spec.md §6).
type AuraConfig struct {
	ID           int     `koanf:"id" validate:"required"`
	Name         string  `koanf:"name" validate:"required"`
	Duration     float64 `koanf:"duration" validate:"gte=0"`
	MaxStacks    uint8   `koanf:"max_stacks" validate:"gte=0"`
	IsDebuff     bool    `koanf:"is_debuff"`
	CanPandemic  bool    `koanf:"can_pandemic"`
	Refreshable  bool    `koanf:"refreshable"`
	TickInterval float64 `koanf:"tick_interval" validate:"gte=0"`
}

// PlayerConfig is the player's external definition (spec.md §6).
type PlayerConfig struct {
	Spec        string  `koanf:"spec" validate:"required"`
	Crit        float32 `koanf:"crit" validate:"gte=0"`
	Haste       float32 `koanf:"haste" validate:"gte=0"`
	Mastery     float32 `koanf:"mastery" validate:"gte=0"`
	Versatility float32 `koanf:"versatility" validate:"gte=0"`
	Leech       float32 `koanf:"leech" validate:"gte=0"`
	Avoidance   float32 `koanf:"avoidance" validate:"gte=0"`
	Speed       float32 `koanf:"speed" validate:"gte=0"`
}

// TargetConfig is the target's external definition (spec.md §6).
type TargetConfig struct {
	Count          int     `koanf:"count" validate:"gte=1"`
	LevelDiff      int     `koanf:"level_diff"`
	MaxHealth      float64 `koanf:"max_health" validate:"gte=0"`
	Armor          float32 `koanf:"armor" validate:"gte=0"`
	IsBoss         bool    `koanf:"is_boss"`
	DistanceYards  float32 `koanf:"distance_yards" validate:"gte=0"`
}

// SimConfig is the complete external sim configuration (spec.md §6):
// player/target/spells/auras/rotation/duration/seed/iterations.
type SimConfig struct {
	Player PlayerConfig `koanf:"player" validate:"required"`
	Target TargetConfig `koanf:"target" validate:"required"`

	Spells []SpellConfig `koanf:"spells" validate:"dive"`
	Auras  []AuraConfig  `koanf:"auras" validate:"dive"`

	RotationFile string `koanf:"rotation_file"`

	DurationSec float64 `koanf:"duration" validate:"required,gt=0"`
	Seed        uint64  `koanf:"seed"`
	Iterations  uint32  `koanf:"iterations" validate:"required,gte=1"`

	TraceEvents bool `koanf:"trace_events"`
	Workers     int  `koanf:"workers" validate:"gte=0"`
}

var validate = validator.New()

// Load reads SimConfig from a YAML file at path, then layers
// WOWLABSIM_-prefixed environment variables on top, and validates the
// result. Either step failing produces simerr.ConfigInvalid.
func Load(path string) (*SimConfig, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", simerr.ConfigInvalid, path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{Prefix: envPrefix, TransformFunc: envKeyTransform}), nil); err != nil {
		return nil, fmt.Errorf("%w: reading environment: %v", simerr.ConfigInvalid, err)
	}

	var cfg SimConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %v", simerr.ConfigInvalid, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envKeyTransform(key, value string) (string, any) {
	return lowerAfterPrefix(key), value
}

func lowerAfterPrefix(key string) string {
	trimmed := key[len(envPrefix):]
	out := make([]byte, len(trimmed))
	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

// Validate checks cfg's struct tags, wrapping any failure in
// simerr.ConfigInvalid so callers can errors.Is against it uniformly
// (spec.md §7).
func Validate(cfg *SimConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", simerr.ConfigInvalid, err)
	}
	for _, s := range cfg.Spells {
		if s.BaseMax < s.BaseMin {
			return fmt.Errorf("%w: spell %q base_max < base_min", simerr.ConfigInvalid, s.Name)
		}
	}
	return nil
}

// ToSimCoreConfig reduces the validated external config into the minimal
// simcore.Config the hot loop consumes, dropping everything that belongs
// to setup time only (spell/aura tables go through a separate
// simcore.Registry built by BuildRegistry).
func (c *SimConfig) ToSimCoreConfig() simcore.Config {
	return simcore.Config{
		Duration:    simtimeFromSeconds(c.DurationSec),
		Seed:        c.Seed,
		TargetCount: c.Target.Count,
		PlayerSpec:  c.Player.Spec,
		PlayerBase: stats.Ratings{
			Crit:        c.Player.Crit,
			Haste:       c.Player.Haste,
			Mastery:     c.Player.Mastery,
			Versatility: c.Player.Versatility,
			Leech:       c.Player.Leech,
			Avoidance:   c.Player.Avoidance,
			Speed:       c.Player.Speed,
		},
		TraceEvents: c.TraceEvents,
	}
}
