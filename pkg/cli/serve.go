package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ampship/pkg/cli/config"
	"github.com/m-mizutani/ampship/pkg/controller/server"
	"github.com/m-mizutani/ampship/pkg/usecase"
	"github.com/m-mizutani/ampship/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		clients   clientConfig
		serverCfg config.Server
		sentry    config.Sentry
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve deploy, status and env sync operations as HTTP tools",
		Flags: slice.Flatten(
			serverCfg.Flags(),
			clients.flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("server", serverCfg),
				slog.Any("github", clients.github),
				slog.Any("amplify", clients.amplify),
				slog.Any("history", clients.history),
				slog.Any("sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			infraClients, err := clients.newClients(ctx)
			if err != nil {
				return err
			}

			s := server.New(usecase.New(infraClients))
			httpServer := serverCfg.NewHTTPServer(s.Mux())

			serverErr := make(chan error, 1)
			go func() {
				logging.Default().Info("starting http server", "addr", httpServer.Addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
