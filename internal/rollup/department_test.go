package rollup

import (
	"testing"
	"time"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/pipeline"
)

func TestDepartmentsPerformance(t *testing.T) {
	departments := Departments(suiteRows())
	if len(departments) != 2 {
		t.Fatalf("Expected 2 departments, got %d", len(departments))
	}

	grocery := departments[0]
	if grocery.Department != "GROCERY" {
		t.Fatalf("Expected GROCERY first, got %s", grocery.Department)
	}
	if !almostEqual(grocery.TotalRevenue, 70) {
		t.Errorf("TotalRevenue = %v, want 70", grocery.TotalRevenue)
	}
	if grocery.TotalQuantity != 7 {
		t.Errorf("TotalQuantity = %d, want 7", grocery.TotalQuantity)
	}
	if grocery.NumBaskets != 2 || grocery.NumCustomers != 2 {
		t.Errorf("NumBaskets/NumCustomers = %d/%d, want 2/2", grocery.NumBaskets, grocery.NumCustomers)
	}

	produce := departments[1]
	if produce.Department != "PRODUCE" || !almostEqual(produce.TotalRevenue, 30) {
		t.Errorf("PRODUCE revenue = %v, want 30", produce.TotalRevenue)
	}
}

func TestDepartmentsConservation(t *testing.T) {
	// Every fixture row joins to a department, so the department totals
	// must partition the full revenue.
	rows := suiteRows()
	var total float64
	for _, row := range rows {
		total += row.SalesValue
	}

	var rolled float64
	for _, d := range Departments(rows) {
		rolled += d.TotalRevenue
	}
	if !almostEqual(rolled, total) {
		t.Errorf("Department totals = %v, want %v", rolled, total)
	}
}

func TestDepartmentsExcludeMissing(t *testing.T) {
	dept := "GROCERY"
	rows := []pipeline.FactRow{
		{HouseholdKey: 1, BasketID: 1, SalesValue: 10, Department: &dept, Date: date(2023, time.March, 5)},
		{HouseholdKey: 1, BasketID: 1, SalesValue: 99, Date: date(2023, time.March, 5)},
	}

	departments := Departments(rows)
	if len(departments) != 1 {
		t.Fatalf("Rows without a department must be excluded, got %d groups", len(departments))
	}
	if !almostEqual(departments[0].TotalRevenue, 10) {
		t.Errorf("TotalRevenue = %v, want 10", departments[0].TotalRevenue)
	}
}
