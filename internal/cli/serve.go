package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/thegoanwedding/marketplace/internal/consumer"
	"github.com/thegoanwedding/marketplace/internal/logging"
	"github.com/thegoanwedding/marketplace/internal/server"
	"github.com/thegoanwedding/marketplace/internal/service"
	"github.com/thegoanwedding/marketplace/pkg/database"
	"github.com/thegoanwedding/marketplace/pkg/rabbitmq"
)

const shutdownTimeout = 10 * time.Second

func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API on SERVER_PORT.

When RABBITMQ_URL is set, domain events are published to the broker and
the response cache is invalidated from vendor, category and blog events.
Without it the cache relies on CACHE_TTL alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, rootOpts)
		},
	}
}

func runServe(ctx context.Context, opts *RootOptions) error {
	l := logging.Component("serve")
	cfg := opts.Config

	db, err := opts.openConfigured()
	if err != nil {
		return err
	}
	defer database.Close(db)

	var publisher service.EventPublisher
	var mqConsumer *rabbitmq.Consumer
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			return WrapExitError(ExitCommandError, "connect publisher to RabbitMQ", err)
		}
		defer p.Close()
		publisher = p

		mqConsumer, err = rabbitmq.NewConsumer(cfg.RabbitURL, consumer.Bindings...)
		if err != nil {
			return WrapExitError(ExitCommandError, "connect consumer to RabbitMQ", err)
		}
		defer mqConsumer.Close()
	} else {
		l.Warn().Msg("RABBITMQ_URL not set; events are not published and cached responses expire by TTL only")
	}

	srv, err := server.New(cfg, db, publisher)
	if err != nil {
		return WrapExitError(ExitCommandError, "build server", err)
	}

	if mqConsumer != nil {
		msgs, err := mqConsumer.Consume()
		if err != nil {
			return WrapExitError(ExitCommandError, "start consuming", err)
		}
		consumer.NewCacheInvalidator(srv.Cache).Start(msgs)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	l.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
