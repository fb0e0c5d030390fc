package identity_test

import (
	"context"
	"testing"

	"github.com/MichalMitros/ecom-reconciler/internal/identity"
	"github.com/MichalMitros/ecom-reconciler/internal/identity/mocks"
	"github.com/MichalMitros/ecom-reconciler/internal/platform"
	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	bryanskName = `ООО "ПУЛЬС Брянск"`
	storeGUID   = "5a4c1e4e-7c3f-4b52-9a51-3e8f3a0c2b11"
	productGUID = "0d5c5b1e-2f6a-4c8e-8d0e-1a2b3c4d5e6f"
)

func bryansk() *models.Organization {
	return &models.Organization{ID: 3, Name: bryanskName, Endpoint: "/bryansk"}
}

// expectOrganization registers the lookups that follow a successful name lookup.
func expectOrganization(s *mocks.Storage, org *models.Organization) {
	s.On("OrganizationRegions", mock.Anything, org.Name).Return([]int{32, 40}, nil).Once()
	s.On("CampaignSettings", mock.Anything, org.ID, "yandexdbs").Return(lo.ToPtr("21000001"), lo.ToPtr("bryansk"), nil).Once()
	s.On("CampaignSettings", mock.Anything, org.ID, "sbermm").Return(nil, nil, platform.ErrNotFound).Once()
}

func TestUnitResolveOrganization(t *testing.T) {
	tests := map[string]struct {
		identifier string
		setup      func(s *mocks.Storage)
	}{
		"by region code": {
			identifier: "32",
			setup: func(s *mocks.Storage) {
				s.On("Organization", mock.Anything, bryanskName).Return(bryansk(), nil).Once()
			},
		},
		"by campaign id": {
			identifier: "21000001",
			setup: func(s *mocks.Storage) {
				s.On("OrganizationByCampaignID", mock.Anything, "21000001").Return(bryanskName, nil).Once()
				s.On("Organization", mock.Anything, bryanskName).Return(bryansk(), nil).Once()
			},
		},
		"by canonical name": {
			identifier: bryanskName,
			setup: func(s *mocks.Storage) {
				s.On("Organization", mock.Anything, bryanskName).Return(bryansk(), nil).Once()
			},
		},
		"by case insensitive substring": {
			identifier: "пульс брянск",
			setup: func(s *mocks.Storage) {
				s.On("Organization", mock.Anything, bryanskName).Return(bryansk(), nil).Once()
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := mocks.NewStorage(t)
			tt.setup(s)
			expectOrganization(s, bryansk())

			org, err := identity.NewResolver(s).ResolveOrganization(context.Background(), tt.identifier)

			require.NoError(t, err)
			assert.Equal(t, bryanskName, org.Name)
			assert.Equal(t, 32, org.RegionCode)
			assert.Equal(t, []int{32, 40}, org.RelatedRegions)
			assert.Equal(t, lo.ToPtr("21000001"), org.CampaignID)
			assert.Equal(t, lo.ToPtr("bryansk"), org.LatinName)
			assert.Nil(t, org.SbermmCampaignID)
		})
	}
}

func TestUnitResolveOrganizationIsIdempotent(t *testing.T) {
	s := mocks.NewStorage(t)
	s.On("Organization", mock.Anything, bryanskName).Return(bryansk(), nil).Twice()
	expectOrganization(s, bryansk())
	expectOrganization(s, bryansk())
	r := identity.NewResolver(s)

	first, err := r.ResolveOrganization(context.Background(), "брянск")
	require.NoError(t, err)
	second, err := r.ResolveOrganization(context.Background(), first.Name)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUnitResolveOrganizationEmpty(t *testing.T) {
	s := mocks.NewStorage(t)

	org, err := identity.NewResolver(s).ResolveOrganization(context.Background(), "  ")

	require.NoError(t, err)
	assert.True(t, org.IsEmpty())
}

func TestUnitResolveOrganizationErrors(t *testing.T) {
	tests := map[string]struct {
		identifier string
		setup      func(s *mocks.Storage)
		wantErr    error
	}{
		"unknown campaign id": {
			identifier: "999",
			setup: func(s *mocks.Storage) {
				s.On("OrganizationByCampaignID", mock.Anything, "999").Return("", platform.ErrNotFound).Once()
			},
			wantErr: platform.ErrNotFound,
		},
		"unknown name": {
			identifier: "рога и копыта",
			setup: func(s *mocks.Storage) {
				s.On("Organization", mock.Anything, "рога и копыта").Return(nil, platform.ErrNotFound).Once()
			},
			wantErr: platform.ErrNotFound,
		},
		"regions failure": {
			identifier: bryanskName,
			setup: func(s *mocks.Storage) {
				s.On("Organization", mock.Anything, bryanskName).Return(bryansk(), nil).Once()
				s.On("OrganizationRegions", mock.Anything, bryanskName).Return(nil, assert.AnError).Once()
			},
			wantErr: assert.AnError,
		},
		"campaign failure": {
			identifier: bryanskName,
			setup: func(s *mocks.Storage) {
				s.On("Organization", mock.Anything, bryanskName).Return(bryansk(), nil).Once()
				s.On("OrganizationRegions", mock.Anything, bryanskName).Return([]int{32}, nil).Once()
				s.On("CampaignSettings", mock.Anything, 3, "yandexdbs").Return(nil, nil, assert.AnError).Once()
			},
			wantErr: assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := mocks.NewStorage(t)
			tt.setup(s)

			_, err := identity.NewResolver(s).ResolveOrganization(context.Background(), tt.identifier)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUnitResolveOrganizationReportsOperatorIdentifier(t *testing.T) {
	s := mocks.NewStorage(t)
	s.On("OrganizationByCampaignID", mock.Anything, "999").Return("", platform.ErrNotFound).Once()

	_, err := identity.NewResolver(s).ResolveOrganization(context.Background(), "999")

	var notFound *platform.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "organization", notFound.Entity)
	assert.Equal(t, "999", notFound.Identifier)
}

func TestUnitResolveStore(t *testing.T) {
	store := func() *models.Store {
		return &models.Store{GUID: storeGUID, ID: "1042", OrgName: bryanskName}
	}

	tests := map[string]struct {
		identifier string
		setup      func(s *mocks.Storage)
	}{
		"by guid": {
			identifier: storeGUID,
			setup: func(s *mocks.Storage) {
				s.On("Store", mock.Anything, storeGUID).Return(store(), nil).Once()
			},
		},
		"by upper case guid": {
			identifier: "5A4C1E4E-7C3F-4B52-9A51-3E8F3A0C2B11",
			setup: func(s *mocks.Storage) {
				s.On("Store", mock.Anything, storeGUID).Return(store(), nil).Once()
			},
		},
		"by address id": {
			identifier: "1042",
			setup: func(s *mocks.Storage) {
				s.On("StoreGUIDByAddressID", mock.Anything, "1042").Return(storeGUID, nil).Once()
				s.On("Store", mock.Anything, storeGUID).Return(store(), nil).Once()
			},
		},
		"by outlet id": {
			identifier: "880011",
			setup: func(s *mocks.Storage) {
				s.On("StoreGUIDByAddressID", mock.Anything, "880011").Return("", platform.ErrNotFound).Once()
				s.On("StoreGUIDByOutlet", mock.Anything, int64(880011)).Return(storeGUID, nil).Once()
				s.On("Store", mock.Anything, storeGUID).Return(store(), nil).Once()
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := mocks.NewStorage(t)
			tt.setup(s)

			got, err := identity.NewResolver(s).ResolveStore(context.Background(), tt.identifier)

			require.NoError(t, err)
			assert.Equal(t, storeGUID, got.GUID)
			assert.Equal(t, "1042", got.ID)
			assert.Equal(t, 32, got.RegionCode)
		})
	}
}

func TestUnitResolveStoreNotFound(t *testing.T) {
	tests := map[string]struct {
		identifier string
		setup      func(s *mocks.Storage)
	}{
		"unknown guid": {
			identifier: storeGUID,
			setup: func(s *mocks.Storage) {
				s.On("Store", mock.Anything, storeGUID).Return(nil, platform.ErrNotFound).Once()
			},
		},
		"unknown number": {
			identifier: "77",
			setup: func(s *mocks.Storage) {
				s.On("StoreGUIDByAddressID", mock.Anything, "77").Return("", platform.ErrNotFound).Once()
				s.On("StoreGUIDByOutlet", mock.Anything, int64(77)).Return("", platform.ErrNotFound).Once()
			},
		},
		"unknown text": {
			identifier: "main street",
			setup: func(s *mocks.Storage) {
				s.On("StoreGUIDByAddressID", mock.Anything, "main street").Return("", platform.ErrNotFound).Once()
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := mocks.NewStorage(t)
			tt.setup(s)

			_, err := identity.NewResolver(s).ResolveStore(context.Background(), tt.identifier)

			var notFound *platform.NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, "store", notFound.Entity)
			assert.Equal(t, tt.identifier, notFound.Identifier)
		})
	}
}

func TestUnitResolveStoreStorageFailure(t *testing.T) {
	s := mocks.NewStorage(t)
	s.On("StoreGUIDByAddressID", mock.Anything, "1042").Return("", assert.AnError).Once()

	_, err := identity.NewResolver(s).ResolveStore(context.Background(), "1042")

	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, platform.ErrNotFound)
}

func TestUnitResolveProduct(t *testing.T) {
	tests := map[string]struct {
		identifier string
		setup      func(s *mocks.Storage)
	}{
		"by guid": {
			identifier: productGUID,
			setup: func(s *mocks.Storage) {
				s.On("ProductCodeByGUID", mock.Anything, productGUID).Return("10045", nil).Once()
			},
		},
		"by code": {
			identifier: "10045",
			setup: func(s *mocks.Storage) {
				s.On("ProductGUIDByCode", mock.Anything, "10045").Return(productGUID, nil).Once()
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := mocks.NewStorage(t)
			tt.setup(s)

			got, err := identity.NewResolver(s).ResolveProduct(context.Background(), tt.identifier)

			require.NoError(t, err)
			assert.Equal(t, &models.Product{GUID: productGUID, Code: "10045"}, got)
			assert.Equal(t, []string{productGUID, "10045"}, got.Identifiers())
		})
	}
}

func TestUnitResolve(t *testing.T) {
	s := mocks.NewStorage(t)
	s.On("Store", mock.Anything, storeGUID).Return(&models.Store{GUID: storeGUID, ID: "1042", OrgName: bryanskName}, nil).Once()
	s.On("Organization", mock.Anything, bryanskName).Return(bryansk(), nil).Once()
	expectOrganization(s, bryansk())
	s.On("ProductGUIDByCode", mock.Anything, "10045").Return(productGUID, nil).Once()

	got, err := identity.NewResolver(s).Resolve(context.Background(), identity.Query{
		Store:   storeGUID,
		Product: "10045",
	})

	require.NoError(t, err)
	assert.Equal(t, bryanskName, got.Organization.Name)
	assert.Equal(t, []string{storeGUID, "1042"}, got.StoreKeys())
	assert.Equal(t, "10045", got.Product.Code)
}

func TestUnitResolveVerbatim(t *testing.T) {
	s := mocks.NewStorage(t)

	got, err := identity.NewResolver(s).Resolve(context.Background(), identity.Query{
		Organization: "Some org",
		Store:        "store-1",
		Product:      "10045",
		Verbatim:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Some org", got.Organization.Name)
	assert.Equal(t, []string{"store-1"}, got.StoreKeys())
	assert.Equal(t, []string{"10045"}, got.Product.Identifiers())
}

func TestUnitResolveEmpty(t *testing.T) {
	s := mocks.NewStorage(t)

	got, err := identity.NewResolver(s).Resolve(context.Background(), identity.Query{})

	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}
