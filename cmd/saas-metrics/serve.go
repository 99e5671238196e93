package main

import (
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/saas-metrics/internal/server"
	"github.com/iwvelando/saas-metrics/pkg/constants"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the metrics API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		serverConfigPath, _ := cmd.Flags().GetString("server-config")
		serverCfg, err := server.LoadConfig(serverConfigPath)
		if err != nil {
			return eris.Wrap(err, "serve: load server config")
		}

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			serverCfg.Address = addr
		}

		handler := server.NewHandler(zap.L(), serverCfg.RequestSizeBytes(), Version)
		srv := &http.Server{
			Addr:    serverCfg.Address,
			Handler: handler,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server", zap.String("op", "serve"))
			_ = srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server",
			zap.String("op", "serve"),
			zap.String("address", serverCfg.Address),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "serve: listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address override (default from server config)")
	serveCmd.Flags().String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	rootCmd.AddCommand(serveCmd)
}
