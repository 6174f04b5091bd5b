package config

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/Veraticus/venue-sim/internal/common"
	"github.com/Veraticus/venue-sim/internal/staff"
)

// Config is the full application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Venue   VenueConfig   `mapstructure:"venue"`
	Staff   []StaffConfig `mapstructure:"staff"`
}

// LoggingConfig selects the slog level and handler format.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// VenueConfig describes the business being simulated.
type VenueConfig struct {
	Start           time.Time `mapstructure:"start"`
	Name            string    `mapstructure:"name"`
	Currency        string    `mapstructure:"currency"`
	StartingBalance float64   `mapstructure:"starting_balance"`
	OpenMinutes     int       `mapstructure:"open_minutes"`
	TickMinutes     int       `mapstructure:"tick_minutes"`
	Rent            float64   `mapstructure:"rent"`
	BribeRate       float64   `mapstructure:"bribe_rate"`
}

// StaffConfig describes one employee and the work they rotate through.
type StaffConfig struct {
	Attributes map[string]float64 `mapstructure:"attributes"`
	Name       string             `mapstructure:"name"`
	Rota       []string           `mapstructure:"rota"`
	Wage       float64            `mapstructure:"wage"`
}

// OpenDuration returns how long the venue trades each day.
func (v VenueConfig) OpenDuration() time.Duration {
	return time.Duration(v.OpenMinutes) * time.Minute
}

// Tick returns the simulated time between two engine ticks.
func (v VenueConfig) Tick() time.Duration {
	return time.Duration(v.TickMinutes) * time.Minute
}

// DefaultStart is the opening time of day one when none is configured.
var DefaultStart = time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("venue.name", "The Velvet Room")
	v.SetDefault("venue.currency", "$")
	v.SetDefault("venue.starting_balance", 5000.0)
	v.SetDefault("venue.open_minutes", 480)
	v.SetDefault("venue.tick_minutes", 5)
	v.SetDefault("venue.rent", 300.0)
	v.SetDefault("venue.bribe_rate", 0.2)
	v.SetDefault("venue.start", DefaultStart.Format(time.RFC3339))
}

// DefaultStaff is the roster used when the configuration names nobody.
func DefaultStaff() []StaffConfig {
	return []StaffConfig{
		{
			Name: "Ava",
			Wage: 120,
			Rota: []string{staff.FamilyCustomerInteraction, staff.FamilyDrinkService},
			Attributes: map[string]float64{
				staff.AttrCharisma:   7,
				staff.AttrDexterity:  5,
				staff.AttrPerception: 5,
			},
		},
		{
			Name: "Bruno",
			Wage: 140,
			Rota: []string{staff.FamilySecurityPatrol},
			Attributes: map[string]float64{
				staff.AttrStrength:     8,
				staff.AttrPerception:   5,
				staff.AttrIntimidation: 7,
				staff.AttrEndurance:    6,
			},
		},
		{
			Name: "Celeste",
			Wage: 160,
			Rota: []string{staff.FamilyMusicPerformance},
			Attributes: map[string]float64{
				staff.AttrCreativity: 8,
				staff.AttrCharisma:   6,
				staff.AttrEndurance:  4,
			},
		},
		{
			Name: "Dmitri",
			Wage: 110,
			Rota: []string{staff.FamilyFoodPreparation},
			Attributes: map[string]float64{
				staff.AttrDexterity:    5,
				staff.AttrIntelligence: 4,
				staff.AttrCreativity:   5,
			},
		},
		{
			Name: "Vex",
			Wage: 150,
			Rota: []string{staff.FamilyGambling, staff.FamilySubstanceSale},
			Attributes: map[string]float64{
				staff.AttrIntelligence: 6,
				staff.AttrPerception:   5,
				staff.AttrStealth:      6,
				staff.AttrCharisma:     4,
			},
		},
	}
}

// Load reads the configuration held by v, applying defaults and validating it.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}
	if len(cfg.Staff) == 0 {
		cfg.Staff = DefaultStaff()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration can drive a simulation.
func (c *Config) Validate() error {
	v := c.Venue
	if v.TickMinutes <= 0 {
		return fmt.Errorf("%w: venue.tick_minutes must be positive, got %d", common.ErrInvalidConfig, v.TickMinutes)
	}
	if v.OpenMinutes < v.TickMinutes {
		return fmt.Errorf("%w: venue.open_minutes (%d) must be at least venue.tick_minutes (%d)",
			common.ErrInvalidConfig, v.OpenMinutes, v.TickMinutes)
	}
	if v.BribeRate < 0 || v.BribeRate > 1 {
		return fmt.Errorf("%w: venue.bribe_rate must be between 0 and 1, got %.2f", common.ErrInvalidConfig, v.BribeRate)
	}

	seen := make(map[string]bool, len(c.Staff))
	for i, member := range c.Staff {
		if member.Name == "" {
			return fmt.Errorf("%w: staff[%d] has no name", common.ErrInvalidConfig, i)
		}
		if seen[member.Name] {
			return fmt.Errorf("%w: duplicate staff name %q", common.ErrInvalidConfig, member.Name)
		}
		seen[member.Name] = true

		if len(member.Rota) == 0 {
			return fmt.Errorf("%w: staff %q has an empty rota", common.ErrInvalidConfig, member.Name)
		}
		for _, family := range member.Rota {
			if _, ok := staff.Lookup(family); !ok {
				return fmt.Errorf("%w: staff %q: %w", common.ErrInvalidConfig, member.Name,
					fmt.Errorf("%w: %q", common.ErrUnknownTaskFamily, family))
			}
		}
	}
	return nil
}
