package dataset

import "strings"

// Table describes one of the five input tables: its logical name (also
// the table name in a PostgreSQL source), the CSV file it is read from,
// and the columns the pipeline requires. Extra columns in a source are
// ignored; missing required columns are a load error.
type Table struct {
	Name     string
	FileName string
	Columns  []string
}

// The five input tables. Column names follow the source data: transaction
// and dimension attribute columns are upper case, household keys and the
// demographic classification columns lower case.
var (
	TransactionsTable = Table{
		Name:     "transaction_data",
		FileName: "transaction_data.csv",
		Columns: []string{
			"household_key", "BASKET_ID", "DAY", "PRODUCT_ID", "QUANTITY",
			"SALES_VALUE", "STORE_ID", "RETAIL_DISC", "COUPON_DISC",
			"COUPON_MATCH_DISC",
		},
	}

	ProductsTable = Table{
		Name:     "product",
		FileName: "product.csv",
		Columns:  []string{"PRODUCT_ID", "DEPARTMENT", "BRAND", "COMMODITY_DESC"},
	}

	HouseholdsTable = Table{
		Name:     "hh_demographic",
		FileName: "hh_demographic.csv",
		Columns: []string{
			"household_key", "classification_1", "classification_2",
			"classification_3", "classification_5",
		},
	}

	CampaignMembersTable = Table{
		Name:     "campaign_table",
		FileName: "campaign_table.csv",
		Columns:  []string{"household_key", "CAMPAIGN", "DESCRIPTION"},
	}

	CampaignDescsTable = Table{
		Name:     "campaign_desc",
		FileName: "campaign_desc.csv",
		Columns:  []string{"CAMPAIGN", "DESCRIPTION", "START_DAY", "END_DAY"},
	}
)

// Tables lists the five input tables in load order.
func Tables() []Table {
	return []Table{
		TransactionsTable,
		ProductsTable,
		HouseholdsTable,
		CampaignMembersTable,
		CampaignDescsTable,
	}
}

// Query returns the SELECT statement that reads the table's required
// columns from a PostgreSQL source. Column names are lower case there,
// matching unquoted DDL.
func (t Table) Query() string {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = strings.ToLower(c)
	}
	return "SELECT " + strings.Join(cols, ", ") + " FROM " + t.Name
}
