package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MichalMitros/ecom-reconciler/internal/platform"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitPing(t *testing.T) {
	tests := map[string]struct {
		pingError     error
		expectedError error
	}{
		"should ping database": {},
		"should return transport error when database is unreachable": {
			pingError:     errors.New("dial tcp 10.0.0.1:5432: connect: connection refused"),
			expectedError: platform.ErrTransport,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectPing().WillReturnError(tt.pingError)

			err = storage.NewPostgres(db).Ping(context.Background())

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUnitOwnersWithoutQueryableKeys(t *testing.T) {
	tests := map[string]struct {
		kind models.LookupKind
		keys []string
	}{
		"should not query without keys": {
			kind: models.LookupStoreID,
		},
		"should not query when no key is a guid": {
			kind: models.LookupPriceGUID,
			keys: []string{"77", "", "price-list"},
		},
		"should not query blank store ids": {
			kind: models.LookupStoreID,
			keys: []string{" ", ""},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			owners, err := storage.NewPostgres(db).Owners(context.Background(), tt.kind, "uteka", tt.keys)

			require.NoError(t, err)
			assert.Empty(t, owners)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
