// Package dataset loads the five retail input tables into memory.
// Two sources are supported: a directory of CSV files and a PostgreSQL
// database holding the same tables. Both validate the required column
// sets up front so schema problems surface before any transformation.
package dataset

import "context"

// Transaction is one line item of a shopping basket.
type Transaction struct {
	HouseholdKey    int64
	BasketID        int64
	Day             int
	ProductID       int64
	Quantity        int64
	SalesValue      float64
	StoreID         int64
	RetailDisc      float64
	CouponDisc      float64
	CouponMatchDisc float64
}

// Product is a static reference dimension row.
type Product struct {
	ProductID     int64
	Department    string
	Brand         string
	CommodityDesc string
}

// Household holds the classification attributes of one shopper household.
// The classification columns are anonymized categorical codes; the
// pipeline renames them to descriptive attribute names on enrichment.
type Household struct {
	HouseholdKey    int64
	Classification1 string
	Classification2 string
	Classification3 string
	Classification5 string
}

// CampaignMember is one household's membership in a marketing campaign.
// A household may appear once per campaign it was targeted by.
type CampaignMember struct {
	HouseholdKey int64
	Campaign     int64
	Description  string
}

// CampaignDesc describes a marketing campaign and its day-offset window.
type CampaignDesc struct {
	Campaign    int64
	Description string
	StartDay    int
	EndDay      int
}

// Bundle holds the five loaded input tables.
type Bundle struct {
	Transactions    []Transaction
	Products        []Product
	Households      []Household
	CampaignMembers []CampaignMember
	CampaignDescs   []CampaignDesc
}

// Source loads the five input tables from a backing store.
type Source interface {
	Load(ctx context.Context) (*Bundle, error)
}
