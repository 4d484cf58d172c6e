package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solarwatch/solaredge-cli/internal/api"
)

func newAccountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account", "acc"},
		Short:   "Inspect accounts and sub-accounts",
		Long:    "List the accounts and sub-accounts an account-level API key can access.",
	}

	cmd.AddCommand(newAccountsListCmd())

	return cmd
}

func newAccountsListCmd() *cobra.Command {
	var (
		size      int
		start     int
		search    string
		sortBy    string
		sortOrder string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List accounts and sub-accounts",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			params := &api.AccountsListParams{
				Size:         size,
				StartIndex:   start,
				SearchText:   search,
				SortProperty: api.AccountSortBy(sortBy),
			}
			order, err := parseSortOrder(sortOrder)
			if err != nil {
				return err
			}
			params.SortOrder = order

			client, err := getClient()
			if err != nil {
				return err
			}
			accounts, err := client.Accounts().List(cmd.Context(), params)
			if err != nil {
				return err
			}

			if wantJSON() {
				return printJSON(cmd, accounts)
			}
			if len(accounts) == 0 {
				printIfNotQuiet(cmd, "No accounts found\n")
				return nil
			}
			w := newTabWriter(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCOUNTRY")
			for _, account := range accounts {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
					account.ID, account.Name, account.Email, account.Location.Country)
			}
			return w.Flush()
		}),
	}

	cmd.Flags().IntVar(&size, "size", 0, "Maximum number of accounts to return (vendor cap 100)")
	cmd.Flags().IntVar(&start, "start-index", 0, "First account index, for paging past the cap")
	cmd.Flags().StringVar(&search, "search", "", "Search text (matches name, email, address, ...)")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "Sort property (Name, Country, City, ...)")
	cmd.Flags().StringVar(&sortOrder, "sort-order", "", "Sort order: asc|desc")

	return cmd
}
