package cmd

import (
	"fmt"
	"log"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/GabrielleBarskyGiles/AtomDB/pkg/store"
)

// compileCmd represents the compile command
var compileCmd = &cobra.Command{
	Use:   "compile <elem> <charge> <mult> [nexc]",
	Short: "Compile a species record into the database",
	Long: `Run the dataset's registered generator for a species and write the
compiled record into the database, overwriting any existing entry.

The generator reads its raw inputs from the dataset's raw/ directory;
see the dataset documentation for the expected raw-file format.

Example:
  atomdb compile H 0 2 --dataset hci`,
	Args: cobra.RangeArgs(3, 4),
	Run: func(cmd *cobra.Command, args []string) {
		key, err := keyFromArgs(args)
		if err != nil {
			fmt.Printf("Error parsing key: %v\n", err)
			return
		}

		runID := ksuid.New()
		log.Printf("compile run %s: dataset=%s elem=%s charge=%d mult=%d nexc=%d",
			runID, key.Dataset, key.Elem, key.Charge, key.Mult, key.Nexc)

		if err := db.Compile(key); err != nil {
			log.Printf("compile run %s failed: %v", runID, err)
			return
		}

		path, _ := store.RecordPath(db.Datapath(), key)
		log.Printf("compile run %s wrote %s", runID, path)
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
}
