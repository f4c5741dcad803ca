package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GabrielleBarskyGiles/AtomDB/pkg/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP query server",
	Long: `Start the read-only HTTP query server. Species records are served as
JSON and stored radial channels can be evaluated through the spline
endpoint. Prometheus metrics are exposed on /metrics.

Examples:
  atomdb serve --port 8080
  atomdb serve --api-key mysecretkey --datapath /srv/atomdb`,
	Run: func(cmd *cobra.Command, args []string) {
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Server.Port = port
		}
		if bind, _ := cmd.Flags().GetString("bind"); bind != "" {
			cfg.Server.Bind = bind
		}
		if apiKey, _ := cmd.Flags().GetString("api-key"); apiKey != "" {
			cfg.Server.APIKey = apiKey
		}

		serverConfig := api.ServerConfig{
			Bind:   cfg.Server.Bind,
			Port:   cfg.Server.Port,
			APIKey: cfg.Server.APIKey,
		}
		if err := api.StartServer(db, serverConfig); err != nil {
			fmt.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "P", 0, "Port to listen on")
	serveCmd.Flags().String("bind", "", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "Require this X-API-Key header on API routes")
}
