package cmd

import (
	"context"
	"fmt"

	"twitch-app-api/logger"
	"twitch-app-api/twitchapi"
	"twitch-app-api/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// addonCmd represents the addon command
var addonCmd = &cobra.Command{
	Use:   "addon <id> [id...]",
	Short: "Fetch one or more add-ons by project id",
	Long: `Fetches add-on metadata for every given project id. Several ids are
fetched concurrently and printed in argument order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAddon,
}

func init() {
	rootCmd.AddCommand(addonCmd)
}

func runAddon(cmd *cobra.Command, args []string) error {
	ids := make([]uint64, len(args))
	for i, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return err
		}
		ids[i] = id
	}

	addons := make([]*twitchapi.Addon, len(ids))
	label := fmt.Sprintf("Fetching %d add-on(s)...", len(ids))
	err := runFetch(cmd, label, func(ctx context.Context) error {
		return fetchAddons(ctx, client, ids, addons)
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		if len(addons) == 1 {
			return writeJSON(cmd.OutOrStdout(), addons[0])
		}
		return writeJSON(cmd.OutOrStdout(), addons)
	}
	for _, a := range addons {
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderAddon(a))
	}
	return nil
}

// fetchAddons fills out[i] with the add-on for ids[i]. The first failure
// cancels the remaining requests.
func fetchAddons(ctx context.Context, api twitchapi.API, ids []uint64, out []*twitchapi.Addon) error {
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			addon, err := api.Addon(ctx, id)
			if err != nil {
				logger.Log.Warnw("Failed to fetch addon", zap.Uint64("id", id), zap.Error(err))
				return err
			}
			logger.Log.Infow("Fetched addon",
				zap.Uint64("id", id),
				zap.String("name", addon.Name),
				zap.Int("latest_files", len(addon.LatestFiles)),
			)
			out[i] = addon
			return nil
		})
	}
	return g.Wait()
}
