package cmd

import (
	"context"
	"fmt"

	"twitch-app-api/logger"
	"twitch-app-api/twitchapi"
	"twitch-app-api/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// categoryCmd represents the category command
var categoryCmd = &cobra.Command{
	Use:   "category <id>",
	Short: "Fetch a category by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var category *twitchapi.Category
		err = runFetch(cmd, fmt.Sprintf("Fetching category %d...", id), func(ctx context.Context) error {
			var err error
			category, err = client.Category(ctx, id)
			return err
		})
		if err != nil {
			logger.Log.Warnw("Failed to fetch category", zap.Uint64("id", id), zap.Error(err))
			return err
		}
		logger.Log.Infow("Fetched category", zap.Uint64("id", id), zap.String("name", category.Name))

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), category)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderCategory(category))
		return nil
	},
}

// sectionCmd represents the section command
var sectionCmd = &cobra.Command{
	Use:   "section <id>",
	Short: "Fetch every category in a category section",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var categories []twitchapi.Category
		err = runFetch(cmd, fmt.Sprintf("Fetching category section %d...", id), func(ctx context.Context) error {
			var err error
			categories, err = client.CategorySection(ctx, id)
			return err
		})
		if err != nil {
			logger.Log.Warnw("Failed to fetch category section", zap.Uint64("id", id), zap.Error(err))
			return err
		}
		logger.Log.Infow("Fetched category section", zap.Uint64("id", id), zap.Int("count", len(categories)))

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), categories)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSection(id, categories))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(sectionCmd)
}
