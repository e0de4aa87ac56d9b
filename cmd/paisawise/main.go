package main

import (
	"flag"
	"fmt"

	"github.com/paisawise/paisawise/internal/logging"
	"github.com/paisawise/paisawise/pkg/constants"
	"github.com/paisawise/paisawise/pkg/currency"
	"github.com/paisawise/paisawise/pkg/output"
	"github.com/paisawise/paisawise/pkg/scenario"
	"github.com/paisawise/paisawise/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get the scenario location
	scenarioLocation := flag.String("config", constants.DefaultScenarioFile, "path to scenario file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the scenario file, which also carries logging and output settings
	scn, err := scenario.LoadScenario(*scenarioLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load scenario at %s\", \"error\": \"%v\"}\n", *scenarioLocation, err)
		return
	}

	// Initialize logging based on the scenario file and CLI override
	logger, err := logging.New(scn.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over the file)
	outputFormat := scn.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Build the conversion table, applying any rate overrides from the file
	rates, err := currency.NewTable(scn.Currency.Rates)
	if err != nil {
		logger.Fatal("invalid currency rates in scenario",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Run every calculation in order
	outcomes, err := scenario.NewRunner(logger, rates).Run(scn)
	if err != nil {
		logger.Fatal("failed to run scenario",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(outcomes)
	case constants.OutputFormatCSV:
		output.CsvFormat(outcomes)
	case constants.OutputFormatJSON:
		if err := output.JsonFormat(outcomes); err != nil {
			logger.Fatal("failed to encode results",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
