package resolve

import "github.com/tillbook-dev/tillbook/internal/model"

// Catalog provides in-memory lookup over the account list. It is loaded once
// per report run so document resolution never touches the store per record.
type Catalog struct {
	accounts []model.Account
	byLabel  map[string]model.Account
}

// NewCatalog creates a Catalog from a slice of accounts.
func NewCatalog(accounts []model.Account) *Catalog {
	byLabel := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byLabel[a.Label] = a
	}
	return &Catalog{accounts: accounts, byLabel: byLabel}
}

// All returns all accounts.
func (c *Catalog) All() []model.Account {
	return c.accounts
}

// ByLabel returns an account by its label.
func (c *Catalog) ByLabel(label string) (model.Account, bool) {
	a, ok := c.byLabel[label]
	return a, ok
}

// CashBank returns the accounts tracked by the cash/bank report.
func (c *Catalog) CashBank() []model.Account {
	var result []model.Account
	for _, a := range c.accounts {
		if a.CashBank {
			result = append(result, a)
		}
	}
	return result
}
