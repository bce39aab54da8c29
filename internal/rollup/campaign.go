package rollup

import (
	"sort"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/pipeline"
)

// CampaignResponse is the sales rollup keyed by household and campaign
// flag. Callers compare rows with the flag set against rows without it
// to gauge campaign response.
type CampaignResponse struct {
	HouseholdKey int64   `json:"household_key"`
	InCampaign   int     `json:"IN_CAMPAIGN"`
	SalesValue   float64 `json:"SALES_VALUE"`
	NumBaskets   int     `json:"BASKET_ID"`
	Quantity     int64   `json:"QUANTITY"`
}

type campaignKey struct {
	household int64
	flag      int
}

type campaignAcc struct {
	baskets  map[int64]struct{}
	sales    float64
	quantity int64
}

// CampaignResponses rolls the fact table up by (household, campaign
// flag), sorted by household key then flag. The flag is constant per
// household after membership deduplication, so in practice each
// household yields one row.
func CampaignResponses(rows []pipeline.FactRow) []CampaignResponse {
	accs := make(map[campaignKey]*campaignAcc)
	for _, row := range rows {
		key := campaignKey{row.HouseholdKey, row.InCampaign}
		acc, ok := accs[key]
		if !ok {
			acc = &campaignAcc{baskets: make(map[int64]struct{})}
			accs[key] = acc
		}
		acc.baskets[row.BasketID] = struct{}{}
		acc.sales += row.SalesValue
		acc.quantity += row.Quantity
	}

	out := make([]CampaignResponse, 0, len(accs))
	for key, acc := range accs {
		out = append(out, CampaignResponse{
			HouseholdKey: key.household,
			InCampaign:   key.flag,
			SalesValue:   acc.sales,
			NumBaskets:   len(acc.baskets),
			Quantity:     acc.quantity,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].HouseholdKey != out[j].HouseholdKey {
			return out[i].HouseholdKey < out[j].HouseholdKey
		}
		return out[i].InCampaign < out[j].InCampaign
	})
	return out
}
