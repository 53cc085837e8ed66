package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardsmith/internal/config"
	"github.com/arcanaland/cardsmith/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve card images over HTTP",
	Long: `Serve starts an HTTP server that renders cards on request.

Routes:
  GET /                      index of every card
  GET /card/{suit}-{rank}.svg   one card as SVG, PNG or WebP (also /card/{cid}.{ext})
  GET /uri/{cid}             the card as a data URI
  GET /qr/{file}             QR code linking to /card/{file}
  GET /api/health            health check
  GET /api/cards             list of cards
  GET /api/attributes        render attribute names

Query parameters are render attributes and override the [defaults] table of
the config file, e.g. /card/hearts-queen.png?cardcolor=%23ffe&width=240.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		defaults, err := renderOptions(cmd)
		if err != nil {
			return err
		}
		art, err := loadArtwork(cmd)
		if err != nil {
			return err
		}

		if !verbose {
			gin.SetMode(gin.ReleaseMode)
		}

		addr, _ := cmd.Flags().GetString("listen")
		if addr == "" {
			addr = cfg.Listen
		}

		logger := loggerFromContext(cmd.Context())
		logger.Info("serving cards", "artwork", artworkLabel(art), "url", "http://"+displayAddr(addr)+"/")
		return server.New(art, defaults, logger).Run(cmd.Context(), addr)
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "address to listen on (default from config, "+config.DefaultListen+")")
	addRenderFlags(serveCmd)
}

// displayAddr turns ":3000" into "localhost:3000".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
