package models

// Asset is the wire shape of a portfolio line item as the frontend and the
// extraction pipeline exchange it. IsStock selects which field group is
// authoritative: true means Ticker/Shares/CurrentPrice, false means
// Balance/APY. The inactive group is always zeroed.
type Asset struct {
	Name         string  `json:"name"`
	IsStock      bool    `json:"isStock"`
	Ticker       string  `json:"ticker"`
	Shares       float64 `json:"shares"`
	CurrentPrice float64 `json:"currentPrice"`
	Balance      float64 `json:"balance"`
	APY          float64 `json:"apy"`
}

// TradeRecord is the wire shape of a realized trade. Date is already
// normalized to YYYY-MM-DD by the extraction model; Ticker may be a plain
// symbol or a free-text option description.
type TradeRecord struct {
	Date        string  `json:"date"`
	Ticker      string  `json:"ticker"`
	RealizedPNL float64 `json:"realized_pnl"`
	PercentDiff float64 `json:"percent_diff"`
}

// HoldingRow converts a validated asset into a persistable row for user.
func (a Asset) HoldingRow(userID uint) Holding {
	return Holding{
		UserID:       userID,
		Name:         a.Name,
		IsStock:      a.IsStock,
		Ticker:       a.Ticker,
		Shares:       a.Shares,
		CurrentPrice: a.CurrentPrice,
		Balance:      a.Balance,
		APY:          a.APY,
	}
}

// AssetView converts a stored holding back to its wire shape.
func (h Holding) AssetView() Asset {
	return Asset{
		Name:         h.Name,
		IsStock:      h.IsStock,
		Ticker:       h.Ticker,
		Shares:       h.Shares,
		CurrentPrice: h.CurrentPrice,
		Balance:      h.Balance,
		APY:          h.APY,
	}
}

// TradeRow converts a validated trade record into a persistable row.
func (t TradeRecord) TradeRow(userID uint, source string) Trade {
	return Trade{
		UserID:      userID,
		Date:        t.Date,
		Ticker:      t.Ticker,
		RealizedPNL: t.RealizedPNL,
		PercentDiff: t.PercentDiff,
		Source:      source,
	}
}
