package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/GabrielleBarskyGiles/AtomDB/pkg/config"
	"github.com/GabrielleBarskyGiles/AtomDB/pkg/store"

	// Register the bundled dataset generators.
	_ "github.com/GabrielleBarskyGiles/AtomDB/pkg/datasets/hci"
)

var (
	cfg *config.Config
	db  *store.Store
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "atomdb",
	Short: "AtomDB - a database of atomic and ionic properties",
	Long: `AtomDB stores precomputed electronic-structure properties of atomic
and ionic species, keyed by element, charge, multiplicity, excitation
level, and dataset. Compiled records live as one MessagePack file per
species; stored radial channels can be reconstructed as continuous
functions by cubic-spline interpolation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" && config.Exists(config.DefaultConfigPath()) {
			configPath = config.DefaultConfigPath()
		}
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if datapath, _ := cmd.Flags().GetString("datapath"); datapath != "" {
			cfg.DataPath = datapath
		}
		if dataset, _ := cmd.Flags().GetString("dataset"); dataset != "" {
			cfg.Dataset = dataset
		}
		db = store.New(cfg.DataPath)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the config file")
	rootCmd.PersistentFlags().StringP("datapath", "p", "", "Root directory for raw and compiled data")
	rootCmd.PersistentFlags().StringP("dataset", "s", "", "Dataset to use")
}

// keyFromArgs parses a species key from positional arguments:
// <elem> <charge> <mult> [nexc]
func keyFromArgs(args []string) (store.Key, error) {
	key := store.Key{Elem: args[0], Dataset: cfg.Dataset}
	var err error
	if key.Charge, err = strconv.Atoi(args[1]); err != nil {
		return key, err
	}
	if key.Mult, err = strconv.Atoi(args[2]); err != nil {
		return key, err
	}
	if len(args) > 3 {
		if key.Nexc, err = strconv.Atoi(args[3]); err != nil {
			return key, err
		}
	}
	return key, nil
}
