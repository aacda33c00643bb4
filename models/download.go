package models

// DownloadLink is the body returned by the free and paid download endpoints.
type DownloadLink struct {
	URL string `json:"url"`
}

// Activation is the body returned by the activation endpoint.
type Activation struct {
	URL        string `json:"url"`
	InstanceID string `json:"instanceId"`
}

// ActivationRequest carries the query parameters of an activation call.
type ActivationRequest struct {
	ItemName     string
	LicenseKey   string
	InstanceName string
}

// PaidDownloadRequest carries the query parameters of a paid download call.
type PaidDownloadRequest struct {
	ItemName   string
	LicenseKey string
	InstanceID string
}
