package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/ktcd/journal"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query journaled calculations",
	Long: `Query and display K-TCD calculations recorded in the SQLite journal.

Subcommands:
  show  - Show one calculation by run ID
  list  - List recent calculations, or those made on a given day

Examples:
  ktcd journal show 01J1ZB5X...
  ktcd journal list
  ktcd journal list --day 2024-06-28`,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one calculation",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List calculations",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var (
	journalDBPath string
	journalDay    string
	journalLimit  int
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalListCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "", "path to SQLite journal DB (default from config)")
	journalListCmd.Flags().StringVar(&journalDay, "day", "", "only calculations made on this UTC day (YYYY-MM-DD)")
	journalListCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "maximum number of calculations to list")
}

func openJournalDB() (*journal.SQLite, error) {
	path := journalDBPath
	if path == "" {
		path = cfg.Journal.DBPath
	}
	j, err := journal.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	j, err := openJournalDB()
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.GetCalculation(args[0])
	if err != nil {
		return fmt.Errorf("get calculation: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatCalculationOrg(rec))
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	j, err := openJournalDB()
	if err != nil {
		return err
	}
	defer j.Close()

	var recs []journal.CalculationRecord
	if journalDay != "" {
		start, end, err := dayBounds(time.UTC, journalDay)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
		recs, err = j.ListCalculationsBetween(start, end)
		if err != nil {
			return fmt.Errorf("query calculations: %w", err)
		}
	} else {
		recs, err = j.ListCalculations(journalLimit)
		if err != nil {
			return fmt.Errorf("query calculations: %w", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatCalculationsOrg(recs))
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)
	return start, end, nil
}
