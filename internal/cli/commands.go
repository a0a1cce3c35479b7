package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"daytrace/internal/app"
	"daytrace/internal/calendar"
	"daytrace/internal/dates"
	"daytrace/internal/logs"
)

// indexEntry is one line of `daytrace index`
type indexEntry struct {
	Date     string `json:"date"`
	Path     string `json:"path"`
	ColorKey string `json:"colorKey,omitempty"`
	Color    string `json:"color"`
	Special  bool   `json:"special"`
	Title    string `json:"title,omitempty"`
}

func newIndexCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Scan the vault and list every day note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, a, err := load(opts)
			if err != nil {
				return err
			}
			defer logs.Close()

			entries := indexEntries(a)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			printIndex(out, entries)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func indexEntries(a *app.App) []indexEntry {
	palette := a.Settings.Get().Palette
	records := a.Index.Records()

	entries := make([]indexEntry, 0, len(records))
	for _, r := range records {
		e := indexEntry{
			Date:     r.Date,
			Path:     r.File.Path,
			ColorKey: r.ColorKey,
			Color:    calendar.ResolveColor(r, palette),
			Special:  r.Special,
		}
		if summary, err := a.Summary(r.File); err == nil {
			e.Title = summary.Title
		}
		entries = append(entries, e)
	}
	return entries
}

func printIndex(w io.Writer, entries []indexEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No day notes found.")
		return
	}
	for _, e := range entries {
		special := " "
		if e.Special {
			special = "*"
		}
		key := e.ColorKey
		if key == "" {
			key = "-"
		}
		fmt.Fprintf(w, "%s %s %-8s %-8s %s\n", e.Date, special, e.Color, key, e.Path)
	}
	fmt.Fprintf(w, "\n%d day notes\n", len(entries))
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show notes count, days lived and days left",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, a, err := load(opts)
			if err != nil {
				return err
			}
			defer logs.Close()

			s := a.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Notes:           %d\n", s.Notes)
			fmt.Fprintf(out, "Age:             %d\n", s.Age)
			fmt.Fprintf(out, "Life expectancy: %d years\n", s.LifeExpectancy)
			fmt.Fprintf(out, "Days lived:      %d\n", s.LivedDays)
			fmt.Fprintf(out, "Days left:       %d\n", s.RemainingDays)
			fmt.Fprintf(out, "Lived:           %.1f%%\n", s.Percent)
			return nil
		},
	}
}

func newNewCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "new [date]",
		Short: "Create the day note for a date (default today)",
		Long: `Create the day note for a date in YYYY-MM-DD form, or today when no
date is given. The note goes into the configured daily notes folder. An
existing note is reported instead of overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, a, err := load(opts)
			if err != nil {
				return err
			}
			defer logs.Close()

			date := a.Today()
			if len(args) == 1 {
				d, ok := dates.Parse(args[0])
				if !ok {
					return fmt.Errorf("invalid date %q: expected a real YYYY-MM-DD date", args[0])
				}
				date = d
			}

			file, created, err := a.CreateDayNote(date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if created {
				fmt.Fprintf(out, "Created: %s\n", file.Path)
			} else {
				fmt.Fprintf(out, "Exists: %s\n", file.Path)
			}
			return nil
		},
	}
}
