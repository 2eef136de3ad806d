// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/bizforge/business-forecast/internal/engine"
	"github.com/bizforge/business-forecast/pkg/constants"
	"github.com/bizforge/business-forecast/pkg/sector"
)

// Configuration holds all configuration for business-forecast.
type Configuration struct {
	Project ProjectConfig
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// ProjectConfig describes the generation request: the stable project
// identity plus the free-text sector and objective.
type ProjectConfig struct {
	UserID      int64
	ProjectID   int64
	Title       string
	Sector      string
	Objective   string
	Investments []InvestmentConfig
}

// InvestmentConfig overrides one default capex line.
type InvestmentConfig struct {
	Label     string
	Amount    float64
	Month     int
	LifeYears int
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. The engine defaults everything it can, so problems here
// are advisory rather than fatal.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Project.Sector == "" {
		warnings = append(warnings, "project.sector is empty; the plan will use the generic_b2b archetype")
	} else if sector.ResolveArchetype(c.Project.Sector) == sector.GenericB2B {
		warnings = append(warnings, fmt.Sprintf("sector %q matched no archetype; falling back to generic_b2b", c.Project.Sector))
	}
	if c.Project.Title == "" {
		warnings = append(warnings, "project.title is empty; calibration will seed from identifiers only")
	}

	for i, inv := range c.Project.Investments {
		if inv.Amount < 0 {
			warnings = append(warnings, fmt.Sprintf("investment %d (%s) has a negative amount", i+1, inv.Label))
		}
		if inv.Month > constants.ForecastHorizonMonths {
			warnings = append(warnings, fmt.Sprintf("investment %d (%s) is acquired after the %d-month horizon; it will not depreciate inside it",
				i+1, inv.Label, constants.ForecastHorizonMonths))
		}
	}

	switch c.Output.Format {
	case "", constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
	default:
		warnings = append(warnings, fmt.Sprintf("unknown output format %q; expected pretty, csv, or json", c.Output.Format))
	}

	return warnings
}

// EngineRequest converts the project configuration into an engine request.
func (c *Configuration) EngineRequest() engine.Request {
	req := engine.Request{
		UserID:    c.Project.UserID,
		ProjectID: c.Project.ProjectID,
		Title:     c.Project.Title,
		Sector:    c.Project.Sector,
		Objective: c.Project.Objective,
	}
	for _, inv := range c.Project.Investments {
		req.Investments = append(req.Investments, sector.InvestmentDefault{
			Label:     inv.Label,
			Amount:    inv.Amount,
			Month:     inv.Month,
			LifeYears: inv.LifeYears,
		})
	}
	return req
}
