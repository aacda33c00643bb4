package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName          = errors.New("name is required")
	ErrHiddenName         = errors.New("name must not start with a dot")
	ErrPathInName         = errors.New("name must not contain path separators")
	ErrDuplicateName      = errors.New("duplicate item name")
	ErrInvalidPurchaseURL = errors.New("invalid purchase link")
	ErrEmptyLicenseKey    = errors.New("license key is required")
	ErrEmptyInstanceID    = errors.New("instance id is required")
)
