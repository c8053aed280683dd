package journal

const Schema = `
CREATE TABLE IF NOT EXISTS fills (
	fill_id TEXT PRIMARY KEY,
	creator_id TEXT NOT NULL,
	side TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	unit_price REAL NOT NULL,
	fee REAL NOT NULL,
	total REAL NOT NULL,
	price_after REAL NOT NULL,
	time DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS balances (
	time DATETIME NOT NULL,
	balance REAL NOT NULL,
	portfolio_value REAL NOT NULL,
	positions INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_balances_time ON balances(time);
`
