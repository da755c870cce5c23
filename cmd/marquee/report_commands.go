package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"marquee/internal/commands"
	"marquee/internal/gallery"
	"marquee/internal/movies"
	"marquee/internal/storage"
)

func (c *commandContext) loadCatalog(path string) (*movies.Catalog, error) {
	store, _, err := c.openStore(path)
	if errors.Is(err, storage.ErrUnsupportedExtension) {
		return nil, errors.New(invalidExtensionMessage)
	}
	if err != nil {
		return nil, err
	}
	return store.ListMovies()
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "Print every movie in the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := ctx.loadCatalog(args[0])
			if err != nil {
				return err
			}
			records := catalog.Records()
			if asJSON {
				if records == nil {
					records = []movies.Record{}
				}
				return writeJSON(cmd, records)
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No movies found in the database.")
				return nil
			}
			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{rec.Title, strconv.Itoa(rec.Year), movies.FormatRating(rec.Rating), rec.Notes})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Title", "Year", "Rating", "Notes"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show rating statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := ctx.loadCatalog(args[0])
			if err != nil {
				return err
			}
			summary, ok := movies.Summarize(catalog)
			if asJSON {
				return writeJSON(cmd, summary)
			}
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, "No movies found in the database.")
				return nil
			}
			rows := [][]string{
				{"Movies", strconv.Itoa(summary.Count)},
				{"Average rating", movies.FormatRating(summary.Average)},
				{"Median rating", movies.FormatRating(summary.Median)},
				{"Best movie", fmt.Sprintf("%s (%s)", summary.Best.Title, movies.FormatRating(summary.Best.Rating))},
				{"Worst movie", fmt.Sprintf("%s (%s)", summary.Worst.Title, movies.FormatRating(summary.Worst.Rating))},
			}
			fmt.Fprintln(out, renderTable([]string{"Metric", "Value"}, rows, nil))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newSortedCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sorted <file>",
		Short: "List movies by rating, highest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := ctx.loadCatalog(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if catalog.Len() == 0 {
				fmt.Fprintln(out, "No movies found in the database.")
				return nil
			}
			sorted := movies.SortedByRating(catalog)
			rows := make([][]string, 0, len(sorted))
			for i, rec := range sorted {
				rows = append(rows, []string{strconv.Itoa(i + 1), rec.Title, movies.FormatRating(rec.Rating)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Title", "Rating"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight},
			))
			return nil
		},
	}
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <file> <query>",
		Short: "Find movies whose title contains the query",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := ctx.newScriptedApp(cmd, args[0])
			if err != nil {
				return err
			}
			defer cleanup()
			return app.Search(args[1])
		},
	}
}

func newGalleryCommand(ctx *commandContext) *cobra.Command {
	var writeTemplate bool
	cmd := &cobra.Command{
		Use:   "gallery <file>",
		Short: "Generate the HTML gallery page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if writeTemplate {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				if err := gallery.WriteDefaultTemplate(cfg.Gallery.TemplatePath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote gallery template to %s\n", cfg.Gallery.TemplatePath)
			}
			app, cleanup, err := ctx.newScriptedApp(cmd, args[0])
			if err != nil {
				return err
			}
			defer cleanup()
			if err := app.GenerateGallery(); err != nil {
				return errors.New(commands.UserMessage(err))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&writeTemplate, "write-template", false, "Write the bundled template to gallery.template_path first")
	return cmd
}

func (c *commandContext) newScriptedApp(cmd *cobra.Command, path string) (*commands.App, func(), error) {
	app, cleanup, err := c.newApp(cmd, path)
	if errors.Is(err, storage.ErrUnsupportedExtension) {
		return nil, nil, errors.New(invalidExtensionMessage)
	}
	return app, cleanup, err
}
