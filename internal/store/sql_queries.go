// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/kenv-keeper/models"
)

const credentialsTable = "credentials"

var credentialColumns = []string{"item_name", "license_key", "instance_id", "created_at"}

// upsertSuffix keeps created_at of an existing row.
const upsertSuffix = `ON CONFLICT (item_name) DO UPDATE SET
		license_key = excluded.license_key,
		instance_id = excluded.instance_id,
		updated_at = excluded.updated_at`

func buildGetCredentials(itemName string) (string, []any, error) {
	query, args, err := sq.Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"item_name": itemName}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListCredentials() (string, []any, error) {
	query, args, err := sq.Select(credentialColumns...).
		From(credentialsTable).
		OrderBy("item_name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertCredentials(creds models.Credentials, now time.Time) (string, []any, error) {
	query, args, err := sq.Insert(credentialsTable).
		Columns("item_name", "license_key", "instance_id", "created_at", "updated_at").
		Values(creds.ItemName, creds.LicenseKey, creds.InstanceID, now, now).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteCredentials(itemName string) (string, []any, error) {
	query, args, err := sq.Delete(credentialsTable).
		Where(sq.Eq{"item_name": itemName}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
