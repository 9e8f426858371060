package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pribylovaa/go-lifelog/internal/http/dto"
	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/service"
)

var errNotConfirmed = errors.New("refusing to delete entries without --yes")

// dayFlag разбирает необязательную дату флага; пустое значение — nil.
func dayFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	d, err := models.ParseDay(value)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}

	return &d, nil
}

func newExportCmd(open opener) *cobra.Command {
	var from, to, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export day entries as JSON",
		Long: `Export day entries in the [--from, --to] range (both optional, inclusive)
as a JSON document. Photos are exported as counts only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := service.ListEntriesInput{Order: models.OrderAsc}

			var err error
			if in.From, err = dayFlag("from", from); err != nil {
				return err
			}
			if in.To, err = dayFlag("to", to); err != nil {
				return err
			}

			ctx, a, err := open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			entries, err := a.svc.ListEntries(ctx, in)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			w, err := createFile(cmd, out)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if err := enc.Encode(dto.EntryListFromModels(entries)); err != nil {
				_ = w.Close()
				return fmt.Errorf("export: %w", err)
			}

			if err := w.Close(); err != nil {
				return fmt.Errorf("export: %w", err)
			}

			if out != "" && out != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "exported %d entries to %s\n", len(entries), out)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "last day, YYYY-MM-DD")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	return cmd
}

func newPurgeCmd(open opener) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete all day entries (the profile is kept)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errNotConfirmed
			}

			ctx, a, err := open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := a.svc.DeleteAllEntries(ctx)
			if err != nil {
				return fmt.Errorf("purge: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d entries\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm irreversible deletion")

	return cmd
}

func newExpectancyCmd(open opener) *cobra.Command {
	var today string

	cmd := &cobra.Command{
		Use:   "expectancy",
		Short: "Print the life expectancy estimate for the stored profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := dayFlag("today", today)
			if err != nil {
				return err
			}

			ctx, a, err := open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			var day time.Time
			if ref != nil {
				day = *ref
			}

			le, err := a.svc.LifeExpectancy(ctx, day)
			if err != nil {
				if errors.Is(err, service.ErrNotFound) {
					return errors.New("no profile yet: create one through the API first")
				}
				return fmt.Errorf("expectancy: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "expected lifespan: %d years (range %d-%d)\n", le.Range.Average, le.Range.Lower, le.Range.Upper)
			fmt.Fprintf(out, "age: %.1f years, lived: %.1f%%, remaining: %.1f years\n",
				le.Progress.AgeYears, le.Progress.Fraction*100, le.Progress.RemainingYears)
			fmt.Fprintf(out, "expected end: %s\n", le.Progress.ExpectedEnd.Format(models.DateLayout))

			return nil
		},
	}

	cmd.Flags().StringVar(&today, "today", "", "reference day, YYYY-MM-DD (default today)")

	return cmd
}
