package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/kenv-keeper/internal/adapter"
	"github.com/MKhiriev/kenv-keeper/internal/app"
	"github.com/MKhiriev/kenv-keeper/internal/config"
	"github.com/MKhiriev/kenv-keeper/internal/logger"
	"github.com/MKhiriev/kenv-keeper/internal/service"
	"github.com/MKhiriev/kenv-keeper/internal/store"
	"github.com/MKhiriev/kenv-keeper/internal/tui"
	"github.com/MKhiriev/kenv-keeper/internal/utils"
	"github.com/MKhiriev/kenv-keeper/models"
)

// ErrFailed is returned by the App commands once the failure has been shown
// to the user, so callers only need to set the exit code.
var ErrFailed = errors.New("kenv command failed")

type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	ui       UI
	ids      service.IDGenerator
	logger   *logger.Logger

	out     io.Writer
	closers []io.Closer
}

// NewApp builds an App from already constructed dependencies.
func NewApp(cfg *config.ClientConfig, services *service.ClientServices, ui UI, log *logger.Logger) *App {
	return &App{
		cfg:      cfg,
		services: services,
		ui:       ui,
		ids:      utils.NewUUIDGenerator(),
		logger:   log,
		out:      os.Stdout,
	}
}

// Open wires the production dependencies: the SQLite credential store, the
// HTTP vendor adapter and the terminal UI. Close releases them.
func Open(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create credential storage: %w", err)
	}

	vendor, err := adapter.NewHTTPVendorAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create vendor adapter: %w", err)
	}

	ui := tui.New(log)
	services := service.NewClientServices(storages.Credentials, vendor, ui, cfg.App)

	a := NewApp(cfg, services, ui, log)
	a.closers = append(a.closers, storages)
	return a, nil
}

// Close releases the resources opened by [Open].
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Install runs the install flow for name, or for the item the user picks
// when name is empty.
func (a *App) Install(ctx context.Context, name string) error {
	if err := a.cfg.ValidateForVendor(); err != nil {
		return a.fail(ctx, err)
	}

	ctx, log := a.startRun(ctx, "install")

	path, err := a.services.KenvInstaller.Run(ctx, name)
	if err != nil {
		return a.fail(ctx, err)
	}

	log.Debug().Str("path", path).Msg("install finished")
	return nil
}

// Relocate moves a downloaded script folder into the kenvs directory.
func (a *App) Relocate(ctx context.Context, dir string) error {
	ctx, log := a.startRun(ctx, "relocate")

	dst, err := a.services.RelocateService.Relocate(ctx, dir)
	if err != nil {
		// the relocator already showed why
		if errors.Is(err, service.ErrMoveFailed) {
			return ErrFailed
		}
		return a.fail(ctx, err)
	}

	log.Debug().Str("dst", dst).Msg("relocate finished")
	return nil
}

// List prints the catalog. Items with a stored license are marked.
func (a *App) List(ctx context.Context) error {
	if err := a.cfg.ValidateForVendor(); err != nil {
		return a.fail(ctx, err)
	}

	ctx, _ = a.startRun(ctx, "list")

	items, err := a.services.CatalogService.List(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}

	licensed, err := a.services.LicenseService.Licensed(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}

	return writeCatalog(a.out, items, licensed)
}

// Forget deletes the stored license of name.
func (a *App) Forget(ctx context.Context, name string) error {
	ctx, _ = a.startRun(ctx, "forget")

	if err := a.services.LicenseService.Forget(ctx, name); err != nil {
		return a.fail(ctx, err)
	}

	a.ui.Notify(ctx, fmt.Sprintf(app.MsgCredentialsForgotten, name))
	return nil
}

// Version prints the build information.
func Version(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Fprintf(w, "Build date: %s\n", orNA(info.BuildDate()))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(info.BuildCommit()))
}

// startRun tags ctx and the logger with a fresh run id. The vendor adapter
// forwards it as a request header.
func (a *App) startRun(ctx context.Context, command string) (context.Context, *logger.Logger) {
	runID := a.ids.Generate()
	ctx = utils.WithRunID(ctx, runID)
	ctx, log := a.logger.WithRunID(ctx, runID)

	log.Debug().Str("command", command).Msg("run started")
	return ctx, log
}

// fail shows err unless the user caused it, and returns what the command
// should exit with.
func (a *App) fail(ctx context.Context, err error) error {
	log := logger.FromContext(ctx)

	switch {
	case errors.Is(err, service.ErrUserAborted),
		errors.Is(err, service.ErrOverwriteDeclined):
		log.Debug().Err(err).Msg("stopped by user")
		return nil
	case errors.Is(err, context.Canceled):
		return ErrFailed
	}

	log.Debug().Err(err).Msg("command failed")
	a.ui.ShowError(err)
	return ErrFailed
}

func writeCatalog(w io.Writer, items []models.CatalogItem, licensed map[string]bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPRICE\tTITLE\tLICENSE")
	for _, item := range items {
		license := ""
		if licensed[item.Name] {
			license = "stored"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", item.Name, item.PriceLabel(), strings.TrimSpace(item.DisplayTitle()), license)
	}
	return tw.Flush()
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
