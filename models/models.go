package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
}

// Holding is one row of a user's portfolio snapshot. Exactly one of the
// stock side (Ticker/Shares/CurrentPrice) or the cash side (Balance/APY)
// carries data; the other side is zeroed, never NULL.
type Holding struct {
	gorm.Model
	UserID       uint    `gorm:"index" json:"-"`
	Name         string  `json:"name"`
	IsStock      bool    `json:"isStock"`
	Ticker       string  `json:"ticker"`
	Shares       float64 `json:"shares"`
	CurrentPrice float64 `json:"currentPrice"`
	Balance      float64 `json:"balance"`
	APY          float64 `json:"apy"`
}

// Trade is a realized profit/loss event. Date is stored as the extraction
// model emits it: YYYY-MM-DD, so lexicographic order is chronological order.
type Trade struct {
	gorm.Model
	UserID      uint    `gorm:"index" json:"-"`
	Date        string  `json:"date"`
	Ticker      string  `json:"ticker"`
	RealizedPNL float64 `json:"realized_pnl"`
	PercentDiff float64 `json:"percent_diff"`
	Source      string  `json:"source"`
}

type WatchlistItem struct {
	gorm.Model
	UserID uint   `gorm:"index" json:"-"`
	Ticker string `json:"ticker"`
}

type JournalEntry struct {
	gorm.Model
	UserID  uint   `gorm:"index" json:"-"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
