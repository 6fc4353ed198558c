package commands

import (
	"strings"

	"voyager-client/lib/scrapers/voyager/api"
	"voyager-client/lib/serviceutil"

	"github.com/spf13/cobra"
)

var searchLimit *int
var searchNetworkDepth *string

func init() {
	searchLimit = searchCmd.Flags().Int("limit", 10, "Maximum number of results, 0 means unlimited.")
	searchNetworkDepth = searchCmd.Flags().String("network", "", "Network depth filter (F, S or O).")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search [--limit <n>] [--network <depth>] <keywords...>",
	Short: "Searches for people matching the given keywords.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient(cmd.Context())
		results, err := client.SearchPeople(cmd.Context(), api.SearchPeopleParams{
			Keywords:     strings.Join(args, " "),
			NetworkDepth: *searchNetworkDepth,
			Limit:        *searchLimit,
		})
		if err != nil {
			serviceutil.Fatal("search failed", err)
		}
		printJson(results)
	},
}
