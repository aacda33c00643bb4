package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/kenv-keeper/internal/client"
	"github.com/MKhiriev/kenv-keeper/internal/config"
	"github.com/MKhiriev/kenv-keeper/internal/logger"
	"github.com/MKhiriev/kenv-keeper/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const help = `Install and manage kenvs (script toolkits) from the vendor catalog.

Usage:
  kenv install [name]
  kenv relocate [dir]
  kenv list
  kenv forget <name>
  kenv version
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	root := &cobra.Command{
		Use:           "kenv",
		Long:          help,
		Version:       buildInfo.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().SortFlags = false
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "install [name]",
			Short: "Download and install a kenv",
			Args:  cobra.MaximumNArgs(1),
			RunE: withApp(func(ctx context.Context, app *client.App, args []string) error {
				return app.Install(ctx, firstArg(args))
			}),
		},
		&cobra.Command{
			Use:   "relocate [dir]",
			Short: "Move a downloaded script folder into the kenvs directory",
			Args:  cobra.MaximumNArgs(1),
			RunE: withApp(func(ctx context.Context, app *client.App, args []string) error {
				return app.Relocate(ctx, firstArg(args))
			}),
		},
		&cobra.Command{
			Use:   "list",
			Short: "Show the vendor catalog",
			Args:  cobra.NoArgs,
			RunE: withApp(func(ctx context.Context, app *client.App, _ []string) error {
				return app.List(ctx)
			}),
		},
		&cobra.Command{
			Use:   "forget <name>",
			Short: "Delete the stored license of a kenv",
			Args:  cobra.ExactArgs(1),
			RunE: withApp(func(ctx context.Context, app *client.App, args []string) error {
				return app.Forget(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				client.Version(cmd.OutOrStdout(), buildInfo)
				return nil
			},
		},
	)

	return root
}

// withApp loads the configuration, opens the client app and runs fn with it.
func withApp(fn func(ctx context.Context, app *client.App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.GetClientConfig(cmd.Flags())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}

		log := logger.NewClientLogger("kenv", os.Stderr, cfg.App.Debug)

		app, err := client.Open(cmd.Context(), cfg, log)
		if err != nil {
			log.Error().Err(err).Msg("init client app error")
			return err
		}
		defer func() {
			if err := app.Close(); err != nil {
				log.Warn().Err(err).Msg("close client app")
			}
		}()

		return fn(cmd.Context(), app, args)
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
