package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/status-im/status-names/appdatabase"
	"github.com/status-im/status-names/logutils"
	"github.com/status-im/status-names/params"
	"github.com/status-im/status-names/protocol/records"
)

func loadConfig(cCtx *cli.Context) (*params.Config, error) {
	config, err := params.LoadConfigFromFile(cCtx.String(ConfigFlag))
	if err != nil {
		return nil, err
	}
	if cCtx.Bool(DebugLevelFlag) {
		config.LogSettings.Level = "DEBUG"
	}
	return config, nil
}

func setupLogger(settings logutils.LogSettings) (*zap.Logger, error) {
	if err := logutils.OverrideRootLogWithConfig(settings); err != nil {
		return nil, err
	}
	logger := logutils.ZapLogger()
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// openStore opens the application database for the query commands.
func openStore(config *params.Config) (*records.Store, func() error, error) {
	db, err := appdatabase.InitializeDB(config.AppDatabasePath(), config.DatabasePassword, config.KDFIterations)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %v", config.AppDatabasePath(), err)
	}
	return records.NewStore(records.NewPersistence(db), config.Policy()), db.Close, nil
}
