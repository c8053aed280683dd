package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordFill(f FillRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO fills
		(fill_id, creator_id, side, quantity, unit_price, fee, total, price_after, time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.FillID, f.CreatorID, f.Side, f.Quantity,
		f.UnitPrice, f.Fee, f.Total, f.PriceAfter, f.Time,
	)
	return err
}

func (j *SQLite) RecordBalance(b BalanceSnapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO balances
		(time, balance, portfolio_value, positions)
		VALUES (?, ?, ?, ?)`,
		b.Time, b.Balance, b.PortfolioValue, b.Positions,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
