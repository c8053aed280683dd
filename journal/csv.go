package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSV struct {
	fills    *csv.Writer
	balances *csv.Writer
	ff, bf   *os.File
}

func NewCSV(fillsPath, balancesPath string) (*CSV, error) {
	ff, err := os.Create(fillsPath)
	if err != nil {
		return nil, err
	}
	bf, err := os.Create(balancesPath)
	if err != nil {
		ff.Close()
		return nil, err
	}

	fw := csv.NewWriter(ff)
	bw := csv.NewWriter(bf)

	if err := fw.Write([]string{"fill_id", "creator_id", "side", "quantity", "unit_price", "fee", "total", "price_after", "time"}); err != nil {
		return nil, err
	}
	if err := bw.Write([]string{"time", "balance", "portfolio_value", "positions"}); err != nil {
		return nil, err
	}

	fw.Flush()
	if err := fw.Error(); err != nil {
		return nil, err
	}
	bw.Flush()
	if err := bw.Error(); err != nil {
		return nil, err
	}

	return &CSV{fw, bw, ff, bf}, nil
}

func (j *CSV) RecordFill(f FillRecord) error {
	j.fills.Write([]string{
		f.FillID,
		f.CreatorID,
		f.Side,
		strconv.FormatInt(f.Quantity, 10),
		strconv.FormatFloat(f.UnitPrice, 'f', -1, 64),
		strconv.FormatFloat(f.Fee, 'f', -1, 64),
		strconv.FormatFloat(f.Total, 'f', -1, 64),
		strconv.FormatFloat(f.PriceAfter, 'f', -1, 64),
		f.Time.Format(time.RFC3339),
	})
	j.fills.Flush()
	return j.fills.Error()
}

func (j *CSV) RecordBalance(b BalanceSnapshot) error {
	j.balances.Write([]string{
		b.Time.Format(time.RFC3339),
		strconv.FormatFloat(b.Balance, 'f', -1, 64),
		strconv.FormatFloat(b.PortfolioValue, 'f', -1, 64),
		strconv.Itoa(b.Positions),
	})
	j.balances.Flush()
	return j.balances.Error()
}

func (j *CSV) Close() error {
	j.fills.Flush()
	j.balances.Flush()

	if err := j.fills.Error(); err != nil {
		return err
	}
	if err := j.balances.Error(); err != nil {
		return err
	}

	if err := j.ff.Close(); err != nil {
		return err
	}
	return j.bf.Close()
}
