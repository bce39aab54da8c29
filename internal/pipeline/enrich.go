// Package pipeline builds the enriched transaction fact table: date
// normalization, dimension left-joins, and per-row feature derivation.
// Every stage is a pure function over loaded data; nothing here logs,
// keeps state, or mutates its inputs.
package pipeline

import (
	"time"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/dataset"
)

// Build runs the full pipeline over a loaded bundle: normalize dates,
// left-join the dimension tables, derive features. The result has
// exactly one row per source transaction.
func Build(b *dataset.Bundle, epoch time.Time) []FactRow {
	return DeriveFeatures(Join(b, epoch))
}

// Join left-joins products, household demographics, and campaign
// membership onto every transaction and normalizes the transaction
// date. Every transaction row is retained; the attributes of a missing
// dimension row stay nil. Campaign membership is reduced to one row per
// household before joining so the join cannot fan out.
func Join(b *dataset.Bundle, epoch time.Time) []FactRow {
	products := make(map[int64]dataset.Product, len(b.Products))
	for _, p := range b.Products {
		if _, ok := products[p.ProductID]; !ok {
			products[p.ProductID] = p
		}
	}

	households := make(map[int64]dataset.Household, len(b.Households))
	for _, h := range b.Households {
		if _, ok := households[h.HouseholdKey]; !ok {
			households[h.HouseholdKey] = h
		}
	}

	campaigns := firstCampaigns(b.CampaignMembers)

	rows := make([]FactRow, 0, len(b.Transactions))
	for _, tx := range b.Transactions {
		row := FactRow{
			HouseholdKey:    tx.HouseholdKey,
			BasketID:        tx.BasketID,
			Day:             tx.Day,
			ProductID:       tx.ProductID,
			Quantity:        tx.Quantity,
			SalesValue:      tx.SalesValue,
			StoreID:         tx.StoreID,
			RetailDisc:      tx.RetailDisc,
			CouponDisc:      tx.CouponDisc,
			CouponMatchDisc: tx.CouponMatchDisc,
			Date:            DateFromDay(epoch, tx.Day),
			CampaignType:    NoCampaign,
		}
		if p, ok := products[tx.ProductID]; ok {
			row.Department = &p.Department
			row.Brand = &p.Brand
			row.CommodityDesc = &p.CommodityDesc
		}
		if h, ok := households[tx.HouseholdKey]; ok {
			row.DemographicGroup = &h.Classification1
			row.DemographicType = &h.Classification2
			row.DemographicLevel = &h.Classification3
			row.ShoppingSegment = &h.Classification5
		}
		if m, ok := campaigns[tx.HouseholdKey]; ok {
			row.CampaignID = &m.Campaign
			row.InCampaign = 1
			row.CampaignType = m.Description
		}
		rows = append(rows, row)
	}
	return rows
}

// firstCampaigns keeps each household's first membership row in source
// order. Households enrolled in several campaigns are attributed to the
// first one; do not sort before calling this.
func firstCampaigns(members []dataset.CampaignMember) map[int64]dataset.CampaignMember {
	first := make(map[int64]dataset.CampaignMember, len(members))
	for _, m := range members {
		if _, ok := first[m.HouseholdKey]; !ok {
			first[m.HouseholdKey] = m
		}
	}
	return first
}
