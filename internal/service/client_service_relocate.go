package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/kenv-keeper/internal/app"
	"github.com/MKhiriev/kenv-keeper/internal/config"
	"github.com/MKhiriev/kenv-keeper/internal/fsutil"
	"github.com/MKhiriev/kenv-keeper/internal/logger"
	"github.com/MKhiriev/kenv-keeper/models"
)

// scriptsDirName marks a folder as a script collection.
const scriptsDirName = "scripts"

type clientRelocateService struct {
	prompter Prompter

	kenvsDir    string
	downloadDir string
}

func NewClientRelocateService(prompter Prompter, cfg config.ClientApp) RelocateService {
	return &clientRelocateService{
		prompter:    prompter,
		kenvsDir:    cfg.KenvsDir(),
		downloadDir: cfg.DownloadDir,
	}
}

func (r *clientRelocateService) Relocate(ctx context.Context, src string) (string, error) {
	log := logger.FromContext(ctx)

	src, err := r.sourceDir(ctx, src)
	if err != nil {
		return "", err
	}

	name, err := r.kenvName(ctx, filepath.Base(src))
	if err != nil {
		return "", err
	}

	dst := filepath.Join(r.kenvsDir, name)
	if err = fsutil.Move(src, dst); err != nil {
		if errors.Is(err, fsutil.ErrExists) {
			err = fmt.Errorf("%w: %s", ErrDestinationExists, dst)
		}
		r.prompter.Notify(ctx, fmt.Sprintf(app.MsgMoveFailed, err))
		return "", fmt.Errorf("%w: %w", ErrMoveFailed, err)
	}

	log.Info().Str("src", src).Str("dst", dst).Msg("kenv relocated")
	r.prompter.Notify(ctx, app.MsgKenvMoved)
	r.prompter.Notify(ctx, fmt.Sprintf(app.MsgMovedTo, src, r.kenvsDir))

	return dst, nil
}

// sourceDir returns src once it contains a scripts directory, asking for
// another folder until it does.
func (r *clientRelocateService) sourceDir(ctx context.Context, src string) (string, error) {
	prompt := models.TextPrompt{
		Title:   app.MsgEnterFolder,
		Initial: withTrailingSeparator(r.downloadDir),
	}

	for {
		if src = expandHome(strings.TrimSpace(src)); src != "" {
			if abs, err := filepath.Abs(src); err == nil {
				src = abs
			}
			if fsutil.IsDir(filepath.Join(src, scriptsDirName)) {
				return src, nil
			}
			prompt.Hint = fmt.Sprintf(app.MsgNotScriptFolder, src)
		}

		answer, err := r.prompter.PromptText(ctx, prompt)
		if err != nil {
			return "", err
		}
		src = answer
	}
}

// kenvName asks for the destination name, defaulting to current.
func (r *clientRelocateService) kenvName(ctx context.Context, current string) (string, error) {
	prompt := models.TextPrompt{
		Title:   app.MsgEnterKenvName,
		Initial: current,
	}

	for {
		name, err := r.prompter.PromptText(ctx, prompt)
		if err != nil {
			return "", err
		}
		if name = strings.TrimSpace(name); name == "" {
			name = current
		}
		if validateName(name) == nil {
			return name, nil
		}
		prompt.Initial = name
		prompt.Hint = app.MsgInvalidKenvName
	}
}

func withTrailingSeparator(dir string) string {
	if dir == "" || strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir
	}
	return dir + string(os.PathSeparator)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
