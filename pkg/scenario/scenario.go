// Package scenario loads YAML scenario files and runs the calculations
// they describe. A scenario is an ordered list of named calculations, each
// carrying the calculator type and its parameters.
package scenario

import (
	"fmt"

	"github.com/paisawise/paisawise/internal/config"
	"github.com/spf13/viper"
)

// Calculation is one entry in a scenario file.
type Calculation struct {
	Name   string                 `yaml:"name,omitempty"`
	Type   string                 `yaml:"type"`
	Params map[string]interface{} `yaml:"params"`
}

// DisplayName returns the calculation's name, or a positional fallback
// when the scenario file does not name it.
func (c Calculation) DisplayName(index int) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("%s #%d", c.Type, index+1)
}

// Scenario holds every calculation of one scenario file. A scenario may
// also carry logging, output, and currency sections so a single file
// drives a CLI run end to end.
type Scenario struct {
	Logging      config.LoggingConfig  `yaml:"logging,omitempty"`
	Output       config.OutputConfig   `yaml:"output,omitempty"`
	Currency     config.CurrencyConfig `yaml:"currency,omitempty"`
	Calculations []Calculation         `yaml:"calculations"`
}

// LoadScenario takes a file path as input and loads the YAML-formatted
// scenario there.
func LoadScenario(scenarioPath string) (*Scenario, error) {
	viper.SetConfigFile(scenarioPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading scenario file, %s", err)
	}

	var scenario Scenario
	if err := viper.Unmarshal(&scenario); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if len(scenario.Calculations) == 0 {
		return nil, fmt.Errorf("scenario file %s lists no calculations", scenarioPath)
	}
	for i, calc := range scenario.Calculations {
		if calc.Type == "" {
			return nil, fmt.Errorf("calculation %q is missing a type", calc.DisplayName(i))
		}
	}

	return &scenario, nil
}
