package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"daytrace/internal/logs"
	"daytrace/internal/settings"
)

func newSettingsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the calendar settings stored in the vault",
	}

	cmd.AddCommand(
		newSettingsShowCmd(opts),
		newSettingsSetCmd(opts),
		newPaletteCmd(opts),
	)
	return cmd
}

func newSettingsShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, a, err := load(opts)
			if err != nil {
				return err
			}
			defer logs.Close()

			s := a.Settings.Get()
			folder := s.DailyNotesFolder
			if folder == "" {
				folder = "(whole vault)"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "birth-date:      %s\n", s.BirthDate)
			fmt.Fprintf(out, "life-expectancy: %d\n", s.LifeExpectancy)
			fmt.Fprintf(out, "folder:          %s\n", folder)
			fmt.Fprintln(out, "palette:")
			for _, name := range s.ColorNames() {
				fmt.Fprintf(out, "  %s %s\n", s.Palette[name], name)
			}
			return nil
		},
	}
}

func newSettingsSetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "set <birth-date|life-expectancy|folder> <value>",
		Short:     "Change one setting",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"birth-date", "life-expectancy", "folder"},
		RunE: func(cmd *cobra.Command, args []string) error {
			field, value := args[0], args[1]

			var apply func(*settings.Settings) error
			switch field {
			case "birth-date":
				apply = func(s *settings.Settings) error {
					return s.SetBirthDate(value)
				}
			case "life-expectancy":
				years, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("%w: %q", settings.ErrInvalidLifeExpectancy, value)
				}
				apply = func(s *settings.Settings) error {
					return s.SetLifeExpectancy(years)
				}
			case "folder":
				apply = func(s *settings.Settings) error {
					s.SetDailyNotesFolder(value)
					return nil
				}
			default:
				return fmt.Errorf("unknown setting %q: expected birth-date, life-expectancy or folder", field)
			}

			_, a, err := load(opts)
			if err != nil {
				return err
			}
			defer logs.Close()

			if _, err := a.UpdateSettings(apply); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", field)
			return nil
		},
	}
}

func newPaletteCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Add, change or remove palette colors",
	}

	add := &cobra.Command{
		Use:   "add <name> <color>",
		Short: "Add a color or change an existing one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, a, err := load(opts)
			if err != nil {
				return err
			}
			defer logs.Close()

			if _, err := a.UpdateSettings(func(s *settings.Settings) error {
				return s.SetColor(args[0], args[1])
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved color %s\n", args[0])
			return nil
		},
	}

	rm := &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a color (the default color cannot be removed)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, a, err := load(opts)
			if err != nil {
				return err
			}
			defer logs.Close()

			if _, err := a.UpdateSettings(func(s *settings.Settings) error {
				return s.RemoveColor(args[0])
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed color %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(add, rm)
	return cmd
}
