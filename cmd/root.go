/*
Copyright © 2025 sevenuz
*/
package cmd

import (
	"log/slog"
	"os"

	"github.com/sevenuz/cake/internal/config"
	"github.com/sevenuz/cake/internal/logger"
	"github.com/sevenuz/cake/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// inputFile is the save file commands read from.
	inputFile string
	// outputFile is the save file mutating commands write to.
	outputFile string
	// version is the application version.
	version = "0.3.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cake",
	Short: "cake keeps tasks and notes in a linked tree.",
	Long: `cake is a personal task and note manager for the command line.

Items carry free text, tags and time tracking and link to each other as
parents and children. They are stored in a single save file (json, md, yaml,
toml or sqlite) which is looked up in the working directory and its parents.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		logger.Setup(logger.Options{
			Level:   cfg.Log.Level,
			Format:  cfg.Log.Format,
			Verbose: cfg.Verbose,
			Writer:  cmd.ErrOrStderr(),
		})
		ui.SetColorEnabled(ui.IsInteractive())

		logger.SetVersion(version)
		logger.SetCommand(cmd.CommandPath())
		logger.SetArgs(os.Args[1:])
		if dir, err := config.GetDataDir(); err == nil {
			logger.SetBasePath(dir)
		}
		slog.Debug("command", "path", cmd.CommandPath(), "args", args)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		HandleFatalError(userMessage(err), err)
	}
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/cake/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "save file to read; an empty value selects the global save file")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "save file to write (default is the input file)")

	// Bind persistent flags to Viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}
