package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/skillmatch/internal/domain/threshold"
	chiTransport "github.com/kailas-cloud/skillmatch/internal/transport/chi"
)

var thresholdCmd = &cobra.Command{
	Use:   "threshold",
	Short: "Explain the qualification threshold for one candidate",
	Long:  "Reads {\"task\": ..., \"candidate\": ...} from a JSON file and prints the itemized threshold.",
	Args:  cobra.NoArgs,
	RunE:  runThreshold,
}

var (
	thresholdFile string
	thresholdJSON bool
)

func init() {
	thresholdCmd.Flags().StringVarP(&thresholdFile, "file", "f", "", "Path to the input JSON file (required)")
	thresholdCmd.Flags().BoolVar(&thresholdJSON, "json", false, "Print JSON instead of a table")

	if err := thresholdCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(thresholdCmd)
}

func runThreshold(cmd *cobra.Command, _ []string) error {
	var req chiTransport.ThresholdRequest
	if err := readJSON(thresholdFile, &req); err != nil {
		return err
	}
	if err := chiTransport.ValidateRequest(&req); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	task, cand, err := req.ToDomain()
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	b := threshold.Calculate(task, cand)
	resp := chiTransport.NewThresholdResponse(&b)
	if thresholdJSON {
		return writeIndentedJSON(cmd.OutOrStdout(), resp)
	}
	return writeThresholdTable(cmd.OutOrStdout(), &resp)
}
