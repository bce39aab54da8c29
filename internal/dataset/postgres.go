package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thant-thiha/recommendation-system-retail-store/internal/logging"
)

// PostgresSource loads the input tables from a PostgreSQL database that
// holds them under their usual names (transaction_data, product, ...).
// Useful when the retail data already lives in a warehouse instead of
// flat files; the loaded bundle is identical to the CSV source's.
type PostgresSource struct {
	connString string
}

// NewPostgresSource returns a Source reading from the given database.
func NewPostgresSource(connString string) *PostgresSource {
	return &PostgresSource{connString: connString}
}

// Load reads all five tables. A missing table or column surfaces as a
// query error before any transformation runs.
func (s *PostgresSource) Load(ctx context.Context) (*Bundle, error) {
	pool, err := connect(ctx, s.connString)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	b := &Bundle{}

	err = queryTable(ctx, pool, TransactionsTable, func(rows pgx.Rows) error {
		var t Transaction
		if err := rows.Scan(
			&t.HouseholdKey, &t.BasketID, &t.Day, &t.ProductID, &t.Quantity,
			&t.SalesValue, &t.StoreID, &t.RetailDisc, &t.CouponDisc,
			&t.CouponMatchDisc,
		); err != nil {
			return err
		}
		b.Transactions = append(b.Transactions, t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = queryTable(ctx, pool, ProductsTable, func(rows pgx.Rows) error {
		var p Product
		if err := rows.Scan(&p.ProductID, &p.Department, &p.Brand, &p.CommodityDesc); err != nil {
			return err
		}
		b.Products = append(b.Products, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = queryTable(ctx, pool, HouseholdsTable, func(rows pgx.Rows) error {
		var h Household
		if err := rows.Scan(
			&h.HouseholdKey, &h.Classification1, &h.Classification2,
			&h.Classification3, &h.Classification5,
		); err != nil {
			return err
		}
		b.Households = append(b.Households, h)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = queryTable(ctx, pool, CampaignMembersTable, func(rows pgx.Rows) error {
		var m CampaignMember
		if err := rows.Scan(&m.HouseholdKey, &m.Campaign, &m.Description); err != nil {
			return err
		}
		b.CampaignMembers = append(b.CampaignMembers, m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = queryTable(ctx, pool, CampaignDescsTable, func(rows pgx.Rows) error {
		var d CampaignDesc
		if err := rows.Scan(&d.Campaign, &d.Description, &d.StartDay, &d.EndDay); err != nil {
			return err
		}
		b.CampaignDescs = append(b.CampaignDescs, d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

// connect establishes a connection pool sized for a batch read.
func connect(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	config.MaxConns = 4
	config.MinConns = 1
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute

	logging.Debug().
		Str("host", config.ConnConfig.Host).
		Uint16("port", config.ConnConfig.Port).
		Str("database", config.ConnConfig.Database).
		Msg("Connecting to warehouse")

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logging.Info().
		Str("host", config.ConnConfig.Host).
		Str("database", config.ConnConfig.Database).
		Msg("Connected to warehouse")

	return pool, nil
}

// queryTable runs the table's SELECT and feeds every row to scan.
func queryTable(ctx context.Context, pool *pgxpool.Pool, t Table, scan func(pgx.Rows) error) error {
	rows, err := pool.Query(ctx, t.Query())
	if err != nil {
		return fmt.Errorf("load %s: %w", t.Name, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("load %s: %w", t.Name, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load %s: %w", t.Name, err)
	}
	return nil
}
