package main

import (
	"flag"
	"fmt"

	"github.com/iwvelando/penalty-estimator/internal/config"
	"github.com/iwvelando/penalty-estimator/internal/estimate"
	"github.com/iwvelando/penalty-estimator/internal/logging"
	"github.com/iwvelando/penalty-estimator/pkg/constants"
	"github.com/iwvelando/penalty-estimator/pkg/format"
	"github.com/iwvelando/penalty-estimator/pkg/output"
	"github.com/iwvelando/penalty-estimator/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to case file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the case file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s, see %s for the format\", \"error\": \"%v\"}\n", *configLocation, constants.ExampleConfigFile, err)
		return
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}
	if err := validation.ValidateGrouping(conf.Output.Grouping); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	results := estimate.GetEstimates(logger, *conf)

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(results, format.NewFormatter(conf.Output.Symbol, conf.Output.Grouping))
	case constants.OutputFormatCSV:
		output.CsvFormat(results)
	}
}
