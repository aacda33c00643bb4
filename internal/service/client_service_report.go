package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/kenv-keeper/internal/adapter"
	"github.com/MKhiriev/kenv-keeper/internal/app"
	"github.com/MKhiriev/kenv-keeper/internal/logger"
	"github.com/MKhiriev/kenv-keeper/models"
)

type clientErrorReporter struct {
	adapter  adapter.VendorAdapter
	prompter Prompter
}

func NewClientErrorReporter(vendor adapter.VendorAdapter, prompter Prompter) ErrorReporter {
	return &clientErrorReporter{adapter: vendor, prompter: prompter}
}

func (r *clientErrorReporter) Offer(ctx context.Context, item models.CatalogItem, report models.ErrorReport, cause error) {
	log := logger.FromContext(ctx)

	if errors.Is(cause, ErrActivationLimitReached) {
		r.prompter.Notify(ctx, app.MsgActivationLimit)
	}

	question := fmt.Sprintf(app.MsgInstallFailed, item.DisplayTitle(), cause) + "\n" + app.MsgAskReport
	ok, err := r.prompter.Confirm(ctx, question)
	if err != nil || !ok {
		log.Debug().Err(err).Bool("accepted", ok).Msg("error report declined")
		return
	}

	if report.ItemName == "" {
		report.ItemName = item.Name
	}
	if report.Code == "" {
		report.Code = ErrorCode(cause)
	}
	if report.Body == "" && cause != nil {
		report.Body = cause.Error()
	}

	if item.IsFree() {
		email, err := r.prompter.PromptText(ctx, models.TextPrompt{
			Title:       app.MsgEnterEmail,
			Placeholder: "you@example.com",
		})
		if err != nil {
			log.Debug().Err(err).Msg("error report cancelled at email prompt")
			return
		}
		report.Email = strings.TrimSpace(email)
	}

	if err = r.adapter.ReportError(ctx, report); err != nil {
		log.Warn().Err(err).Str("item", report.ItemName).Msg("failed to send error report")
		return
	}

	r.prompter.Notify(ctx, app.MsgReportSent)
}
