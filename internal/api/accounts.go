package api

import "context"

// Account is a monitoring platform account, possibly a sub-account of a
// parent account.
type Account struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Location       Location `json:"location"`
	CompanyWebSite string   `json:"companyWebSite"`
	ContactPerson  string   `json:"contactPerson"`
	Email          string   `json:"email"`
	PhoneNumber    string   `json:"phoneNumber"`
	FaxNumber      string   `json:"faxNumber"`
	Notes          string   `json:"notes"`
	ParentID       int64    `json:"parentId"`
	URIs           []string `json:"uris"`
}

type accountsEnvelope struct {
	Accounts *list[Account] `json:"accounts"`
}

// List returns the account and any sub-accounts the API key can see.
func (s AccountsService) List(ctx context.Context, params *AccountsListParams) ([]Account, error) {
	var env accountsEnvelope
	if err := s.get(ctx, "/accounts/list.json", params, &env); err != nil {
		return nil, err
	}
	if env.Accounts == nil {
		return nil, missingKey("accounts")
	}
	return env.Accounts.Items, nil
}
