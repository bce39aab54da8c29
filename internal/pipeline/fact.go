package pipeline

import "time"

// NoCampaign is the campaign label for households outside every campaign.
const NoCampaign = "No Campaign"

// FactRow is one row of the enriched fact table: a source transaction plus
// joined dimension attributes and derived features. Pointer-typed fields
// are nil when the owning dimension row was absent; they are never
// zero-filled.
type FactRow struct {
	// Copied unchanged from the source transaction.
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

	// Date is the transaction day offset normalized to a calendar date.
	Date time.Time

	// Product dimension.
	Department    *string
	Brand         *string
	CommodityDesc *string

	// Household demographics.
	DemographicGroup *string
	DemographicType  *string
	DemographicLevel *string
	ShoppingSegment  *string

	// Campaign participation. InCampaign is 1 when a membership row
	// matched and 0 otherwise. CampaignType carries the matched campaign
	// description or the NoCampaign label.
	CampaignID   *int64
	InCampaign   int
	CampaignType string

	// Temporal features. DayOfWeek counts Monday as 0 through Sunday
	// as 6 and IsWeekend covers Saturday and Sunday.
	Month     int
	MonthName string
	DayOfWeek int
	DayName   string
	Quarter   int
	Year      int
	IsWeekend bool

	// Discount features. DiscountRate is the discount share of the gross
	// price, 0 when the gross price is 0.
	TotalDiscount float64
	DiscountRate  float64

	// Revenue features. UnitPrice is nil when Quantity is 0.
	NetRevenue  float64
	UnitPrice   *float64
	HasDiscount bool
}
