package modelstesting

import (
	"math/rand"
	"time"

	"github.com/MichalMitros/ecom-reconciler/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// FakeOrganization returns models.Organization with fake data.
func FakeOrganization(ops ...func(o *models.Organization)) models.Organization {
	org := models.Organization{
		ID:             rand.Intn(10_000) + 1,
		Name:           faker.Name(),
		Endpoint:       "https://" + faker.DomainName(),
		RegionCode:     77,
		RelatedRegions: []int{77},
		CampaignID:     lo.ToPtr(faker.Word()),
		LatinName:      lo.ToPtr(faker.Word()),
	}

	for _, op := range ops {
		op(&org)
	}

	return org
}

// FakeDocument returns models.Document with fake metadata and the given response payload.
func FakeDocument(response string, ops ...func(d *models.Document)) models.Document {
	doc := models.Document{
		Index:           "apm-7.17.0-transaction-" + faker.Word(),
		ID:              faker.UUIDDigit(),
		Timestamp:       time.Date(2023, 1, 1, rand.Intn(3), rand.Intn(60), 0, 0, time.UTC).Format(time.RFC3339Nano),
		TransactionName: "GET restapi.v1_0.views.StocksView",
		Result:          "HTTP 2xx",
		Username:        faker.Username(),
		Response:        lo.ToPtr(response),
		Link:            faker.URL(),
	}

	for _, op := range ops {
		op(&doc)
	}

	return doc
}

// FakeStock returns models.StockRecord with fake data.
func FakeStock(ops ...func(s *models.StockRecord)) *models.StockRecord {
	key := uuid.NewString()
	stock := &models.StockRecord{
		Base:           fakeBase(key),
		Quantity:       decimal.NewNullDecimal(decimal.NewFromInt(rand.Int63n(100))),
		ProductID:      uuid.NewString(),
		ExpirationDate: faker.Date(),
		PriceGUID:      key,
	}

	for _, op := range ops {
		op(stock)
	}

	return stock
}

// FakePrice returns models.PriceRecord with fake data.
func FakePrice(ops ...func(p *models.PriceRecord)) *models.PriceRecord {
	key := uuid.NewString()
	price := &models.PriceRecord{
		Base:      fakeBase(key),
		ProductID: uuid.NewString(),
		Price:     decimal.NewNullDecimal(decimal.New(rand.Int63n(100_000), -2)),
		PriceGUID: key,
	}

	for _, op := range ops {
		op(price)
	}

	return price
}

// FakeStore returns models.StoreRecord with fake data.
func FakeStore(ops ...func(s *models.StoreRecord)) *models.StoreRecord {
	key := uuid.NewString()
	store := &models.StoreRecord{
		Base:      fakeBase(key),
		StoreGUID: key,
		StoreID:   faker.Word(),
		Address:   faker.Word(),
	}

	for _, op := range ops {
		op(store)
	}

	return store
}

func fakeBase(key string) models.Base {
	return models.Base{
		Direction: models.DirectionMarketplace,
		Time:      time.Date(2023, 1, 1, rand.Intn(24), rand.Intn(60), rand.Intn(60), 0, time.UTC),
		Link:      faker.URL(),
		MatchKey:  key,
	}
}
