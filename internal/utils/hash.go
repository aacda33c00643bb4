package utils

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os/user"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// ErrEmptyUsername is returned by [InstanceName] for a blank username.
var ErrEmptyUsername = errors.New("username is empty")

// currentUser is replaced in tests.
var currentUser = user.Current

// InstanceName derives the stable license-activation instance name for a
// machine user: the hex-encoded BLAKE2b-256 digest of the username.
//
// The same username always yields the same name, so re-activating a license
// from the same account is recognised by the vendor.
func InstanceName(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ErrEmptyUsername
	}

	sum := blake2b.Sum256([]byte(username))
	return hex.EncodeToString(sum[:]), nil
}

// CurrentInstanceName returns [InstanceName] of the OS user running kenv.
func CurrentInstanceName() (string, error) {
	u, err := currentUser()
	if err != nil {
		return "", fmt.Errorf("error resolving current user: %w", err)
	}

	return InstanceName(u.Username)
}
