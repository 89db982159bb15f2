// This file holds the schema DDL.
package sqlite

// Schema DDL for all tables. Decimal amounts are stored as canonical decimal
// text so that no value passes through floating point.
const (
	createStock = `CREATE TABLE stock (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    sku TEXT NOT NULL,
    category TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    price TEXT NOT NULL,
    status TEXT NOT NULL,
    last_updated TEXT NOT NULL
);`

	createSales = `CREATE TABLE sales (
    id TEXT PRIMARY KEY,
    customer_name TEXT NOT NULL,
    items TEXT NOT NULL,
    total_amount TEXT NOT NULL,
    date TEXT NOT NULL,
    status TEXT NOT NULL
);`

	createCrew = `CREATE TABLE crew (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    role TEXT NOT NULL,
    department TEXT NOT NULL,
    status TEXT NOT NULL,
    email TEXT NOT NULL,
    performance_score INTEGER NOT NULL
);`
)

// Index DDL for the aggregate queries behind Stats.
const (
	idxStockStatus = `CREATE INDEX idx_stock_status ON stock(status);`
	idxSalesStatus = `CREATE INDEX idx_sales_status ON sales(status);`
	idxCrewStatus  = `CREATE INDEX idx_crew_status ON crew(status);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createStock,
	createSales,
	createCrew,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxStockStatus,
	idxSalesStatus,
	idxCrewStatus,
}
