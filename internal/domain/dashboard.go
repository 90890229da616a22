// internal/domain/dashboard.go
package domain

// CardStats holds the derived card counts.
type CardStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Disabled int `json:"disabled"`
}

// Dashboard aggregates everything the home screen renders.
type Dashboard struct {
	User               *User          `json:"user"`
	Wallet             *Wallet        `json:"wallet"`
	RecentTransactions []*Transaction `json:"recent_transactions"`
	DefaultCard        *Card          `json:"default_card"` // nil when no card is default
	CardStats          CardStats      `json:"card_stats"`
}
