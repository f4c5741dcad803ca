package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <elem> <charge> <mult> [nexc]",
	Short: "Load a species record and print it as JSON",
	Long: `Load a compiled species record from the database and print it as JSON.

Example:
  atomdb get H 0 2
  atomdb get Be 1 2 0 --dataset hci`,
	Args: cobra.RangeArgs(3, 4),
	Run: func(cmd *cobra.Command, args []string) {
		key, err := keyFromArgs(args)
		if err != nil {
			fmt.Printf("Error parsing key: %v\n", err)
			return
		}

		rec, err := db.Load(key)
		if err != nil {
			fmt.Printf("Error loading species: %v\n", err)
			return
		}

		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			fmt.Printf("Error encoding species: %v\n", err)
			return
		}
		fmt.Printf("%s\n", out)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
