// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// kenv-keeper services and terminal UI.
//
// All Msg* constants are human-readable strings shown in prompts and
// notifications. Keeping them in one place ensures consistent wording
// throughout the CLI. Some are format strings for fmt.Sprintf.
package app

const (
	// MsgChooseKenv is the title of the catalog picker.
	MsgChooseKenv = "Which kenv do you want to install?"

	// MsgEnterLicenseKey asks for the license key of a paid item (%s: title).
	MsgEnterLicenseKey = "Enter your license key for %s"

	// MsgLicenseKeyPlaceholder is shown in the empty license key input.
	MsgLicenseKeyPlaceholder = "XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX"

	// MsgBuyLicense points to the purchase page (%s: link).
	MsgBuyLicense = "No license yet? Buy one at %s (ctrl+y copies the link)"

	// MsgLicenseKeyRequired is shown when an empty license key was submitted.
	MsgLicenseKeyRequired = "A license key is required for paid kenvs."

	// MsgConfirmOverwrite asks before replacing an installed kenv (%s: path).
	MsgConfirmOverwrite = "%s already exists. Replace it?"

	// MsgInstalled is the success notification of an install (%s: title, %s: path).
	MsgInstalled = "%s installed to %s"

	// MsgInstallFailed explains a failed install (%s: title, %s: reason).
	MsgInstallFailed = "Installing %s failed: %s"

	// MsgAskReport offers to send a diagnostic report after a failure.
	MsgAskReport = "Send an error report to the vendor?"

	// MsgEnterEmail asks for a contact address when reporting a free item.
	MsgEnterEmail = "Your email, so the vendor can get back to you (optional)"

	// MsgReportSent confirms a delivered error report.
	MsgReportSent = "Error report sent. Thank you!"

	// MsgActivationLimit tells the user how to resolve a license that is
	// activated on too many machines.
	MsgActivationLimit = "This license is active on too many machines. Contact the vendor to release an old activation."

	// MsgEnterFolder asks for the folder the relocator should move.
	MsgEnterFolder = "Path of the kenv folder to move"

	// MsgNotScriptFolder is shown when the folder has no scripts directory (%s: path).
	MsgNotScriptFolder = "%s has no scripts folder. Pick another folder."

	// MsgEnterKenvName asks for the name of the relocated kenv.
	MsgEnterKenvName = "Name of the kenv"

	// MsgInvalidKenvName is shown for a name that cannot be a directory name.
	MsgInvalidKenvName = "The name must not be empty, start with a dot or contain path separators."

	// MsgKenvMoved is the success notification of the relocator.
	MsgKenvMoved = "Kenv moved and renamed successfully."

	// MsgMovedTo reports the relocation (%s: source, %s: kenvs dir).
	MsgMovedTo = "Moved %s to %s"

	// MsgMoveFailed reports a failed relocation (%s: reason).
	MsgMoveFailed = "Moving the kenv failed: %s"

	// MsgCredentialsForgotten confirms kenv forget (%s: name).
	MsgCredentialsForgotten = "Forgot the license of %s. The next install asks for a license key again."
)
