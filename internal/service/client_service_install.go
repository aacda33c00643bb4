package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/kenv-keeper/internal/adapter"
	"github.com/MKhiriev/kenv-keeper/internal/app"
	"github.com/MKhiriev/kenv-keeper/internal/archive"
	"github.com/MKhiriev/kenv-keeper/internal/config"
	"github.com/MKhiriev/kenv-keeper/internal/fsutil"
	"github.com/MKhiriev/kenv-keeper/internal/logger"
	"github.com/MKhiriev/kenv-keeper/internal/validators"
	"github.com/MKhiriev/kenv-keeper/models"
)

type clientInstallService struct {
	adapter  adapter.VendorAdapter
	prompter Prompter
	ids      IDGenerator

	kenvsDir    string
	downloadDir string
}

func NewClientInstallService(vendor adapter.VendorAdapter, prompter Prompter, ids IDGenerator, cfg config.ClientApp) InstallService {
	return &clientInstallService{
		adapter:     vendor,
		prompter:    prompter,
		ids:         ids,
		kenvsDir:    cfg.KenvsDir(),
		downloadDir: cfg.DownloadDir,
	}
}

func (s *clientInstallService) TargetDir(itemName string) string {
	return filepath.Join(s.kenvsDir, itemName)
}

func (s *clientInstallService) ConfirmOverwrite(ctx context.Context, item models.CatalogItem) error {
	if err := validateName(item.Name); err != nil {
		return err
	}

	target := s.TargetDir(item.Name)
	exists, err := fsutil.Exists(target)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", target, err)
	}
	if !exists {
		return nil
	}

	ok, err := s.prompter.Confirm(ctx, fmt.Sprintf(app.MsgConfirmOverwrite, target))
	if err != nil {
		return err
	}
	if !ok {
		return ErrOverwriteDeclined
	}

	return nil
}

func (s *clientInstallService) Install(ctx context.Context, item models.CatalogItem, url string) (string, error) {
	log := logger.FromContext(ctx)

	if err := validateName(item.Name); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.downloadDir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	archivePath := filepath.Join(s.downloadDir, item.Name+".zip")
	defer func() {
		if err := os.Remove(archivePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("path", archivePath).Msg("failed to remove downloaded archive")
		}
	}()

	if err := s.adapter.DownloadFile(ctx, url, archivePath); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}

	if err := os.MkdirAll(s.kenvsDir, 0o755); err != nil {
		return "", fmt.Errorf("create kenvs dir: %w", err)
	}

	// staging lives next to the target so the swap is a same-device rename
	staging := filepath.Join(s.kenvsDir, ".staging-"+item.Name+"-"+s.ids.Generate())
	defer os.RemoveAll(staging)

	if err := archive.ExtractZip(archivePath, staging, archive.WithFlatten(scriptsDirName)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtractFailed, err)
	}

	target := s.TargetDir(item.Name)
	if err := s.swap(ctx, staging, target, item.Name); err != nil {
		return "", err
	}

	log.Info().Str("item", item.Name).Str("path", target).Msg("kenv installed")
	return target, nil
}

// swap replaces target with staging. An existing target is renamed aside
// first and restored if staging cannot be moved in.
func (s *clientInstallService) swap(ctx context.Context, staging, target, name string) error {
	log := logger.FromContext(ctx)

	exists, err := fsutil.Exists(target)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", target, err)
	}

	var aside string
	if exists {
		aside = filepath.Join(s.kenvsDir, ".old-"+name+"-"+s.ids.Generate())
		if err = fsutil.Move(target, aside); err != nil {
			return fmt.Errorf("move previous install aside: %w", err)
		}
	}

	if err = fsutil.Move(staging, target); err != nil {
		if aside != "" {
			if restoreErr := fsutil.Move(aside, target); restoreErr != nil {
				log.Err(restoreErr).Str("aside", aside).Msg("failed to restore previous install")
			}
		}
		return fmt.Errorf("move new install into place: %w", err)
	}

	if aside != "" {
		if err = os.RemoveAll(aside); err != nil {
			log.Warn().Err(err).Str("path", aside).Msg("failed to remove previous install")
		}
	}

	return nil
}

// validateName accepts names usable as a single directory name.
func validateName(name string) error {
	if err := validators.ValidateKenvName(name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidName, err)
	}
	return nil
}
