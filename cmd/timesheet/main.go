package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yuhaowen84/timesheet-app/internal/domain/timesheet"
)

const appVersion = "0.1.0"

type fortnightFile struct {
	StartDate string               `json:"startDate"`
	Days      []timesheet.DayInput `json:"days"`
}

func main() {
	var (
		inputPath string
		ratesPath string
	)

	cmd := &cobra.Command{
		Use:   "timesheet",
		Short: "Fortnightly shift-worker pay calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ok, _ := cmd.Flags().GetBool("version"); ok {
				fmt.Printf("timesheet v%s\n", appVersion)
				return nil
			}
			if inputPath == "" {
				return fmt.Errorf("--input is required")
			}

			rates := timesheet.DefaultRates()
			holidays := timesheet.DefaultHolidays()
			if ratesPath != "" {
				var err error
				rates, holidays, err = timesheet.LoadRatesFile(ratesPath)
				if err != nil {
					return err
				}
			}

			result, err := compute(inputPath, rates, holidays)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to a fortnight JSON document")
	cmd.Flags().StringVar(&ratesPath, "rates", "", "path to a YAML rates/holidays override")
	cmd.Flags().Bool("version", false, "print version and exit")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func compute(inputPath string, rates timesheet.RateTable, holidays []string) (*timesheet.Fortnight, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var doc fortnightFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse input %s: %w", inputPath, err)
	}

	start, err := timesheet.ParseStartDate(doc.StartDate)
	if err != nil {
		return nil, err
	}

	engine := timesheet.NewEngine(rates, holidays)
	return engine.CalculateFortnight(start, doc.Days)
}

func printResult(out io.Writer, result *timesheet.Fortnight) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Fortnight starting %s\n\n", result.StartDate)
	fmt.Fprintln(w, "Day\tDate\tUnit\tPenalty\tSpecial\tHoliday\tOT\tPenalty$\tSpecial$\tSick$\tDaily$\tLoading\tCount")
	for _, day := range result.Days {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			day.Weekday, day.Date, day.Unit, day.Penalty, day.Special, day.Holiday,
			day.OTRate, day.PenaltyRate, day.SpecialLoading, day.SickRate,
			day.DailyRate, day.Loading, day.DailyCount)
	}

	totals := result.Totals
	fmt.Fprintf(w, "TOTAL\t\t\t\t\t\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
		totals.OTRate, totals.PenaltyRate, totals.SpecialLoading, totals.SickRate,
		totals.DailyRate, totals.Loading, totals.DailyCount)
	_ = w.Flush()

	if totals.DeductionApplied {
		fmt.Fprintf(out, "\nNo ADO this fortnight: %.2f deducted from the daily count total.\n", totals.Deduction)
	} else {
		fmt.Fprint(out, "\nADO taken this fortnight: no deduction applied.\n")
	}
}
