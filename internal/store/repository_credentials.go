package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/kenv-keeper/internal/logger"
	"github.com/MKhiriev/kenv-keeper/models"
)

type credentialRepository struct {
	db     *DB
	logger *logger.Logger

	now func() time.Time
}

// NewCredentialRepository returns a SQLite-backed [CredentialStore].
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialStore {
	return &credentialRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *credentialRepository) Get(ctx context.Context, itemName string) (models.Credentials, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCredentials(itemName)
	if err != nil {
		return models.Credentials{}, err
	}

	creds, err := scanCredentials(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credentials{}, ErrCredentialsNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Get").
			Str("item", itemName).
			Msg("failed to query credentials")
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return creds, nil
}

func (r *credentialRepository) Set(ctx context.Context, creds models.Credentials) error {
	log := logger.FromContext(ctx)

	if !creds.IsComplete() {
		return ErrInvalidCredentials
	}

	query, args, err := buildUpsertCredentials(creds, r.now())
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Set").
			Str("item", creds.ItemName).
			Msg("failed to upsert credentials")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("item", creds.ItemName).Msg("credentials saved")
	return nil
}

func (r *credentialRepository) Delete(ctx context.Context, itemName string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCredentials(itemName)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Delete").
			Str("item", itemName).
			Msg("failed to delete credentials")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, _ := res.RowsAffected()
	log.Debug().Str("item", itemName).Int64("deleted", affected).Msg("credentials deleted")
	return nil
}

func (r *credentialRepository) List(ctx context.Context) ([]models.Credentials, error) {
	query, args, err := buildListCredentials()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	list := make([]models.Credentials, 0)
	for rows.Next() {
		creds, err := scanCredentials(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		list = append(list, creds)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return list, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCredentials(row rowScanner) (models.Credentials, error) {
	var (
		creds     models.Credentials
		createdAt time.Time
	)

	if err := row.Scan(&creds.ItemName, &creds.LicenseKey, &creds.InstanceID, &createdAt); err != nil {
		return models.Credentials{}, err
	}
	creds.CreatedAt = &createdAt

	return creds, nil
}
