package rollup

import (
	"sort"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/pipeline"
)

// DepartmentStats is the per-department revenue rollup.
type DepartmentStats struct {
	Department    string  `json:"DEPARTMENT"`
	TotalRevenue  float64 `json:"TOTAL_REVENUE"`
	TotalQuantity int64   `json:"TOTAL_QUANTITY"`
	NumBaskets    int     `json:"NUM_BASKETS"`
	NumCustomers  int     `json:"NUM_CUSTOMERS"`
}

type departmentAcc struct {
	baskets    map[int64]struct{}
	households map[int64]struct{}
	revenue    float64
	quantity   int64
}

// Departments rolls the fact table up to one row per department, sorted
// by department name. Rows whose product join found no department are
// excluded rather than grouped under an empty label.
func Departments(rows []pipeline.FactRow) []DepartmentStats {
	accs := make(map[string]*departmentAcc)
	for _, row := range rows {
		if row.Department == nil {
			continue
		}
		acc, ok := accs[*row.Department]
		if !ok {
			acc = &departmentAcc{
				baskets:    make(map[int64]struct{}),
				households: make(map[int64]struct{}),
			}
			accs[*row.Department] = acc
		}
		acc.baskets[row.BasketID] = struct{}{}
		acc.households[row.HouseholdKey] = struct{}{}
		acc.revenue += row.SalesValue
		acc.quantity += row.Quantity
	}

	out := make([]DepartmentStats, 0, len(accs))
	for dept, acc := range accs {
		out = append(out, DepartmentStats{
			Department:    dept,
			TotalRevenue:  acc.revenue,
			TotalQuantity: acc.quantity,
			NumBaskets:    len(acc.baskets),
			NumCustomers:  len(acc.households),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })
	return out
}
