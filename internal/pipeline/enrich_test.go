package pipeline

import (
	"testing"
	"time"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/dataset"
)

// testBundle returns a small bundle with one fully joinable transaction,
// one with an unknown product, and one from a household with no
// demographics and no campaign.
func testBundle() *dataset.Bundle {
	return &dataset.Bundle{
		Transactions: []dataset.Transaction{
			{HouseholdKey: 1001, BasketID: 31198570044, Day: 1, ProductID: 1085983, Quantity: 1, SalesValue: 10, StoreID: 364},
			{HouseholdKey: 1001, BasketID: 31198570044, Day: 1, ProductID: 7777777, Quantity: 2, SalesValue: 3.5, StoreID: 364, RetailDisc: 0.5},
			{HouseholdKey: 2500, BasketID: 31198570100, Day: 7, ProductID: 1085983, Quantity: 0, SalesValue: 0, StoreID: 31},
		},
		Products: []dataset.Product{
			{ProductID: 1085983, Department: "GROCERY", Brand: "National", CommodityDesc: "SOFT DRINKS"},
		},
		Households: []dataset.Household{
			{HouseholdKey: 1001, Classification1: "Group2", Classification2: "X", Classification3: "Level3", Classification5: "Group1"},
		},
		CampaignMembers: []dataset.CampaignMember{
			{HouseholdKey: 1001, Campaign: 18, Description: "TypeA"},
		},
	}
}

func TestJoinRowCount(t *testing.T) {
	b := testBundle()
	rows := Join(b, DefaultEpoch)
	if len(rows) != len(b.Transactions) {
		t.Errorf("Join must keep every transaction: got %d rows, want %d", len(rows), len(b.Transactions))
	}
}

func TestJoinProductAttributes(t *testing.T) {
	rows := Join(testBundle(), DefaultEpoch)

	matched := rows[0]
	if matched.Department == nil || *matched.Department != "GROCERY" {
		t.Errorf("Department not joined: %v", matched.Department)
	}
	if matched.Brand == nil || *matched.Brand != "National" {
		t.Errorf("Brand not joined: %v", matched.Brand)
	}
	if matched.CommodityDesc == nil || *matched.CommodityDesc != "SOFT DRINKS" {
		t.Errorf("CommodityDesc not joined: %v", matched.CommodityDesc)
	}

	unmatched := rows[1]
	if unmatched.Department != nil || unmatched.Brand != nil || unmatched.CommodityDesc != nil {
		t.Errorf("Unknown product must leave attributes nil: %+v", unmatched)
	}
}

func TestJoinDemographics(t *testing.T) {
	rows := Join(testBundle(), DefaultEpoch)

	matched := rows[0]
	if matched.DemographicGroup == nil || *matched.DemographicGroup != "Group2" {
		t.Errorf("DemographicGroup not joined: %v", matched.DemographicGroup)
	}
	if matched.DemographicType == nil || *matched.DemographicType != "X" {
		t.Errorf("DemographicType not joined: %v", matched.DemographicType)
	}
	if matched.DemographicLevel == nil || *matched.DemographicLevel != "Level3" {
		t.Errorf("DemographicLevel not joined: %v", matched.DemographicLevel)
	}
	if matched.ShoppingSegment == nil || *matched.ShoppingSegment != "Group1" {
		t.Errorf("ShoppingSegment not joined: %v", matched.ShoppingSegment)
	}

	unmatched := rows[2]
	if unmatched.DemographicGroup != nil || unmatched.ShoppingSegment != nil {
		t.Errorf("Unknown household must leave demographics nil: %+v", unmatched)
	}
}

func TestJoinCampaignMembership(t *testing.T) {
	rows := Join(testBundle(), DefaultEpoch)

	member := rows[0]
	if member.InCampaign != 1 {
		t.Errorf("InCampaign = %d, want 1", member.InCampaign)
	}
	if member.CampaignID == nil || *member.CampaignID != 18 {
		t.Errorf("CampaignID = %v, want 18", member.CampaignID)
	}
	if member.CampaignType != "TypeA" {
		t.Errorf("CampaignType = %q, want TypeA", member.CampaignType)
	}

	outside := rows[2]
	if outside.InCampaign != 0 {
		t.Errorf("InCampaign = %d, want 0", outside.InCampaign)
	}
	if outside.CampaignID != nil {
		t.Errorf("CampaignID = %v, want nil", outside.CampaignID)
	}
	if outside.CampaignType != NoCampaign {
		t.Errorf("CampaignType = %q, want %q", outside.CampaignType, NoCampaign)
	}
}

func TestJoinFirstCampaignWins(t *testing.T) {
	b := testBundle()
	b.CampaignMembers = []dataset.CampaignMember{
		{HouseholdKey: 1001, Campaign: 13, Description: "TypeB"},
		{HouseholdKey: 1001, Campaign: 18, Description: "TypeA"},
	}

	rows := Join(b, DefaultEpoch)
	got := rows[0]
	if got.CampaignID == nil || *got.CampaignID != 13 {
		t.Errorf("CampaignID = %v, want the first membership in source order (13)", got.CampaignID)
	}
	if got.CampaignType != "TypeB" {
		t.Errorf("CampaignType = %q, want TypeB", got.CampaignType)
	}
	if len(rows) != len(b.Transactions) {
		t.Errorf("Multiple memberships must not fan rows out: got %d, want %d", len(rows), len(b.Transactions))
	}
}

func TestJoinDuplicateDimensionRows(t *testing.T) {
	b := testBundle()
	b.Products = append(b.Products, dataset.Product{
		ProductID: 1085983, Department: "DRUG GM", Brand: "Private", CommodityDesc: "VITAMINS",
	})

	rows := Join(b, DefaultEpoch)
	if len(rows) != len(b.Transactions) {
		t.Fatalf("Duplicate dimension keys must not fan rows out: got %d, want %d", len(rows), len(b.Transactions))
	}
	if rows[0].Department == nil || *rows[0].Department != "GROCERY" {
		t.Errorf("First dimension row should win, got department %v", rows[0].Department)
	}
}

func TestJoinDateNormalization(t *testing.T) {
	rows := Join(testBundle(), DefaultEpoch)

	if !rows[0].Date.Equal(time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Day 1 should map to the epoch, got %v", rows[0].Date)
	}
	if !rows[2].Date.Equal(time.Date(2023, time.January, 7, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Day 7 date = %v, want 2023-01-07", rows[2].Date)
	}
}

func TestJoinDoesNotMutateBundle(t *testing.T) {
	b := testBundle()
	before := len(b.CampaignMembers)
	Join(b, DefaultEpoch)
	if len(b.CampaignMembers) != before {
		t.Errorf("Join must not modify the bundle")
	}
}
