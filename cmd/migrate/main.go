package main

import (
	"fmt"
	"os"
	"todolist/config"
	"todolist/helper"
	"todolist/shared/logger"

	"github.com/spf13/cobra"
)

func newRootCommand(loadConfig func() *config.Config) *cobra.Command {
	var (
		driver     string
		sqlitePath string
	)

	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply or roll back the task table migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "Database driver override (sqlite3 or postgres)")
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite-path", "", "SQLite file override")

	action := func(name, short string) *cobra.Command {
		return &cobra.Command{
			Use:   name,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				cfg := loadConfig()

				if driver != "" {
					cfg.DB.Driver = driver
				}

				if sqlitePath != "" {
					cfg.DB.SQLite.Path = sqlitePath
				}

				return helper.Runner(cfg, name) //nolint:wrapcheck
			},
		}
	}

	rootCmd.AddCommand(
		action(helper.ActionUp, "Apply every pending migration"),
		action(helper.ActionDown, "Roll back the latest migration"),
		action(helper.ActionStepUp, "Apply the next pending migration"),
		action(helper.ActionDrop, "Roll back every migration"),
	)

	return rootCmd
}

func main() {
	logger.InitLogger()
	logger.SetLogLevel(config.Get())

	if err := newRootCommand(config.Get).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
