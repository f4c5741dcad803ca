package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GabrielleBarskyGiles/AtomDB/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Bootstrap the AtomDB configuration and data directory",
	Long: `Write a default configuration file (unless one exists) and create the
root data directory.

Example:
  atomdb init --datapath ~/atomdb-data`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.DefaultConfigPath()
		}

		if config.Exists(configPath) {
			fmt.Printf("Config already exists at %s\n", configPath)
		} else {
			if err := config.Save(cfg, configPath); err != nil {
				fmt.Printf("Error writing config: %v\n", err)
				return
			}
			fmt.Printf("Wrote config to %s\n", configPath)
		}

		if err := os.MkdirAll(cfg.DataPath, 0o755); err != nil {
			fmt.Printf("Error creating data directory: %v\n", err)
			return
		}
		fmt.Printf("Data directory ready at %s\n", cfg.DataPath)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
