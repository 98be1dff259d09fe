package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"coachcore/internal/report"
	"coachcore/internal/view"
)

var (
	reportStudentID int64
	reportOut       string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a student's weekly program as a spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		stores := a.openStores(cmd)
		engine := view.NewEngine()
		program, ok := engine.Program(reportStudentID, stores.Students, stores.Exercises, stores.Meals, stores.Supplements)
		if !ok {
			return fmt.Errorf("no student with id %d", reportStudentID)
		}
		out := reportOut
		if out == "" {
			out = fmt.Sprintf("program-%d.xlsx", reportStudentID)
		}
		if err := report.WriteProgram(program, out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote program report: %s\n", out)
		return nil
	},
}

func init() {
	reportCmd.Flags().Int64Var(&reportStudentID, "student", 0, "Student id")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "Output .xlsx path")
	_ = reportCmd.MarkFlagRequired("student")
	rootCmd.AddCommand(reportCmd)
}
