package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/MKhiriev/kenv-keeper/internal/config"
	"github.com/MKhiriev/kenv-keeper/internal/logger"
	"github.com/MKhiriev/kenv-keeper/internal/utils"
	"github.com/MKhiriev/kenv-keeper/models"
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries the run id of the kenv invocation.
const RequestIDHeader = "X-Request-ID"

type httpVendorAdapter struct {
	client *utils.HTTPClient
	secret string

	logger *logger.Logger
}

// NewHTTPVendorAdapter constructs an HTTP/REST implementation of
// [VendorAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPVendorAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (VendorAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpVendorAdapter{client: client, secret: appCfg.Secret, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchCatalog implements [VendorAdapter].
func (h *httpVendorAdapter) FetchCatalog(ctx context.Context) ([]models.CatalogItem, error) {
	resp, err := h.request(ctx).Get("/api/client")
	if err != nil {
		return nil, fmt.Errorf("fetch catalog request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var catalog models.Catalog
	if err = json.Unmarshal(resp.Body(), &catalog); err != nil {
		return nil, fmt.Errorf("%w: decode catalog: %v", ErrMalformedResponse, err)
	}

	h.logger.Debug().Int("items", len(catalog.Tools)).Msg("catalog fetched")
	return catalog.Tools, nil
}

// FreeDownload implements [VendorAdapter].
func (h *httpVendorAdapter) FreeDownload(ctx context.Context, itemName string) (models.DownloadLink, error) {
	resp, err := h.request(ctx).
		SetPathParam("name", itemName).
		Get("/api/client/{name}")
	if err != nil {
		return models.DownloadLink{}, fmt.Errorf("free download request: %w", err)
	}

	return decodeDownloadLink(resp)
}

// PaidDownload implements [VendorAdapter].
func (h *httpVendorAdapter) PaidDownload(ctx context.Context, req models.PaidDownloadRequest) (models.DownloadLink, error) {
	resp, err := h.request(ctx).
		SetPathParam("name", req.ItemName).
		SetQueryParam("licenseKey", req.LicenseKey).
		SetQueryParam("instanceId", req.InstanceID).
		Get("/api/client/{name}")
	if err != nil {
		return models.DownloadLink{}, fmt.Errorf("paid download request: %w", err)
	}

	return decodeDownloadLink(resp)
}

// Activate implements [VendorAdapter].
func (h *httpVendorAdapter) Activate(ctx context.Context, req models.ActivationRequest) (models.Activation, error) {
	resp, err := h.request(ctx).
		SetPathParam("name", req.ItemName).
		SetQueryParam("licenseKey", req.LicenseKey).
		SetQueryParam("instanceName", req.InstanceName).
		Post("/api/client/{name}")
	if err != nil {
		return models.Activation{}, fmt.Errorf("activate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Activation{}, err
	}

	var activation models.Activation
	if err = json.Unmarshal(resp.Body(), &activation); err != nil {
		return models.Activation{}, fmt.Errorf("%w: decode activation: %v", ErrMalformedResponse, err)
	}
	if activation.URL == "" || activation.InstanceID == "" {
		return models.Activation{}, fmt.Errorf("%w: activation without url or instance id", ErrMalformedResponse)
	}

	return activation, nil
}

// ReportError implements [VendorAdapter]. Empty report fields are omitted from
// the query.
func (h *httpVendorAdapter) ReportError(ctx context.Context, report models.ErrorReport) error {
	params := map[string]string{
		"licenseKey":   report.LicenseKey,
		"instanceName": report.InstanceName,
		"instanceId":   report.InstanceID,
		"email":        report.Email,
		"error":        report.Code,
		"errorBody":    report.Body,
	}

	req := h.request(ctx).SetPathParam("name", report.ItemName)
	for k, v := range params {
		if v != "" {
			req.SetQueryParam(k, v)
		}
	}

	resp, err := req.Post("/api/client/{name}/error-reporting")
	if err != nil {
		return fmt.Errorf("error report request: %w", err)
	}

	return mapHTTPError(resp)
}

// DownloadFile implements [VendorAdapter].
func (h *httpVendorAdapter) DownloadFile(ctx context.Context, rawURL, dst string) error {
	req := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)
	if runID, ok := utils.GetRunIDFromContext(ctx); ok {
		req.SetHeader(RequestIDHeader, runID)
	}

	resp, err := req.Get(rawURL)
	if err != nil {
		return fmt.Errorf("download file request: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if code := resp.StatusCode(); code < 200 || code >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(body, 4<<10))
		return statusError(code, strings.TrimSpace(string(msg)))
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create download file: %w", err)
	}

	n, err := io.Copy(out, body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write download file: %w", err)
	}

	h.logger.Debug().Str("dst", dst).Int64("bytes", n).Msg("archive downloaded")
	return nil
}

// request starts a vendor API request carrying the shared secret and run id.
func (h *httpVendorAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("secret", h.secret)

	if runID, ok := utils.GetRunIDFromContext(ctx); ok {
		req.SetHeader(RequestIDHeader, runID)
	}

	return req
}

func decodeDownloadLink(resp *resty.Response) (models.DownloadLink, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.DownloadLink{}, err
	}

	var link models.DownloadLink
	if err := json.Unmarshal(resp.Body(), &link); err != nil {
		return models.DownloadLink{}, fmt.Errorf("%w: decode download link: %v", ErrMalformedResponse, err)
	}
	if link.URL == "" {
		return models.DownloadLink{}, fmt.Errorf("%w: empty download url", ErrMalformedResponse)
	}

	return link, nil
}
