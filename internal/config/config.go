// Package config defines the data structures related to configuration and
// includes functions for loading case files and checking them for problems.
package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/penalty-estimator/internal/form"
	"github.com/iwvelando/penalty-estimator/internal/traffic"
	"github.com/iwvelando/penalty-estimator/pkg/datetime"
	"github.com/iwvelando/penalty-estimator/pkg/validation"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected for due and settled dates.
const DateTimeLayout = datetime.DateTimeLayout

// Configuration holds all configuration for penalty-estimator.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Rules   RulesConfig   `yaml:"rules,omitempty"`
	Traffic []TrafficCase `yaml:"traffic,omitempty"`
	Tax     []TaxCase     `yaml:"tax,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format   string `yaml:"format,omitempty"`   // pretty, csv
	Grouping string `yaml:"grouping,omitempty"` // indian, western
	Symbol   string `yaml:"symbol,omitempty"`
}

// RulesConfig holds switches that change evaluator behaviour.
type RulesConfig struct {
	ZeroBaseWithoutSubSelector bool `yaml:"zeroBaseWithoutSubSelector,omitempty"`
}

// TrafficOptions converts the rules into traffic evaluator options.
func (r RulesConfig) TrafficOptions() traffic.Options {
	return traffic.Options{ZeroBaseWithoutSubSelector: r.ZeroBaseWithoutSubSelector}
}

// TrafficCase is one named traffic fine query.
type TrafficCase struct {
	Name             string `yaml:"name"`
	Active           bool   `yaml:"active"`
	form.TrafficForm `mapstructure:",squash" yaml:",inline"`
}

// TaxCase is one named tax penalty query. DueDate and SettledDate may stand
// in for Months.
type TaxCase struct {
	Name         string `yaml:"name"`
	Active       bool   `yaml:"active"`
	form.TaxForm `mapstructure:",squash" yaml:",inline"`
	DueDate      string `yaml:"dueDate,omitempty"`
	SettledDate  string `yaml:"settledDate,omitempty"`
}

// Form returns the tax form for the case, deriving months from the dates
// when Months is empty and both dates are set.
func (c TaxCase) Form() (form.TaxForm, error) {
	f := c.TaxForm
	if strings.TrimSpace(f.Months) != "" || c.DueDate == "" || c.SettledDate == "" {
		return f, nil
	}
	months, err := datetime.MonthsLate(c.DueDate, c.SettledDate)
	if err != nil {
		return f, fmt.Errorf("tax case %s: %w", c.Name, err)
	}
	f.Months = strconv.Itoa(months)
	return f, nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	// Cases start from the same defaults as a freshly reset form.
	for i := range configuration.Traffic {
		configuration.Traffic[i].FillDefaults()
	}
	for i := range configuration.Tax {
		configuration.Tax[i].FillDefaults()
	}
	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	cv := validation.CaseValidator{
		ZeroBaseWithoutSubSelector: c.Rules.ZeroBaseWithoutSubSelector,
	}
	for _, tc := range c.Traffic {
		cv.Traffic = append(cv.Traffic, validation.TrafficCaseInfo{
			Name:         tc.Name,
			Active:       tc.Active,
			Jurisdiction: tc.Jurisdiction,
			Category:     tc.Category,
			SpeedBracket: tc.SpeedBracket,
			Offense:      tc.Offense,
		})
	}
	for _, tc := range c.Tax {
		cv.Tax = append(cv.Tax, validation.TaxCaseInfo{
			Name:        tc.Name,
			Active:      tc.Active,
			PenaltyType: tc.PenaltyType,
			TaxAmount:   tc.TaxAmount,
			Months:      tc.Months,
			DueDate:     tc.DueDate,
			SettledDate: tc.SettledDate,
		})
	}
	return cv.ValidateAll()
}
