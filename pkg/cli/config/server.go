package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/urfave/cli/v3"
)

type Server struct {
	addr         string
	writeTimeout time.Duration
}

func (x *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Category:    "Server",
			Value:       "127.0.0.1:8000",
			Destination: &x.addr,
			Sources:     cli.EnvVars("AMPSHIP_ADDR"),
		},
		&cli.DurationFlag{
			Name:        "write-timeout",
			Usage:       "Response write timeout, long enough for a foreground deploy",
			Category:    "Server",
			Value:       15 * time.Minute,
			Destination: &x.writeTimeout,
			Sources:     cli.EnvVars("AMPSHIP_WRITE_TIMEOUT"),
		},
	}
}

func (x *Server) NewHTTPServer(handler http.Handler) *http.Server {
	return &http.Server{
		Addr:    x.addr,
		Handler: handler,

		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      x.writeTimeout,
	}
}

func (x Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", x.addr),
		slog.Duration("writeTimeout", x.writeTimeout),
	)
}
