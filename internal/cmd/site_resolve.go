package cmd

import (
	"context"
	"strconv"
	"strings"

	"github.com/solarwatch/solaredge-cli/internal/api"
	"github.com/solarwatch/solaredge-cli/internal/cache"
	"github.com/solarwatch/solaredge-cli/internal/config"
	"github.com/solarwatch/solaredge-cli/internal/resolve"
)

// cachedSite is the slim site record kept in the name resolution cache.
type cachedSite struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// resolveSiteArg turns a site argument into an ID. Numeric input is taken
// as-is; anything else is fuzzy-matched against the account's site names.
// The site list is cached on disk so repeated name lookups don't burn
// through the vendor's daily request quota.
func resolveSiteArg(ctx context.Context, client *api.Client, arg string) (int64, error) {
	arg = strings.TrimSpace(arg)
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return id, nil
	}

	sites, err := loadSiteIndex(ctx, client)
	if err != nil {
		return 0, err
	}

	named := make([]resolve.Named, len(sites))
	for i, s := range sites {
		named[i] = resolve.Named{ID: s.ID, Name: s.Name}
	}
	return resolve.FuzzyMatch(arg, named)
}

func loadSiteIndex(ctx context.Context, client *api.Client) ([]cachedSite, error) {
	store := siteIndexStore(client)

	var sites []cachedSite
	if store.Get(&sites) {
		return sites, nil
	}

	listed, err := client.Sites().List(ctx, &api.SitesListParams{Status: []api.SiteStatus{api.SiteStatusAll}})
	if err != nil {
		return nil, err
	}
	sites = make([]cachedSite, len(listed))
	for i, s := range listed {
		sites[i] = cachedSite{ID: s.ID, Name: s.Name}
	}
	store.Put(sites)
	return sites, nil
}

func siteIndexStore(client *api.Client) *cache.Store {
	dir, err := cache.DefaultDir()
	if err != nil {
		dir = ""
	}
	return cache.NewStore(dir, "sites", client.BaseURL, client.APIKey)
}

// invalidateSiteIndex drops the cached site list for the active account.
func invalidateSiteIndex() {
	cfg, err := config.ResolveClientConfig(flags.APIKey, flags.BaseURL)
	if err != nil {
		return
	}
	client := newClientFactory().newClient(cfg)
	siteIndexStore(client).Clear()
}
