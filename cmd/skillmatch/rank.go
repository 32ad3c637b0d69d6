package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/skillmatch/internal/domain/ranking"
	chiTransport "github.com/kailas-cloud/skillmatch/internal/transport/chi"
	"github.com/kailas-cloud/skillmatch/internal/usecase/matching"
	rankinguc "github.com/kailas-cloud/skillmatch/internal/usecase/ranking"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a candidate pool for a task",
	Long: "Reads {\"task\": ..., \"candidates\": [...]} from a JSON file and ranks the pool " +
		"with the local matcher chain. No network dependencies are used.",
	Args: cobra.NoArgs,
	RunE: runRank,
}

var (
	rankFile            string
	rankTopK            int
	rankJSON            bool
	rankIncludeExcluded bool
	rankBoost           float64
)

func init() {
	rankCmd.Flags().StringVarP(&rankFile, "file", "f", "", "Path to the input JSON file (required)")
	rankCmd.Flags().IntVarP(&rankTopK, "top-k", "k", chiTransport.DefaultTopK, "Number of recommendations to return (0 = all)")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Print JSON instead of a table")
	rankCmd.Flags().BoolVar(&rankIncludeExcluded, "include-excluded", false, "List excluded candidates")
	rankCmd.Flags().Float64Var(&rankBoost, "boost", ranking.DefaultBoost, "Priority-role boost for elevated tasks")

	if err := rankCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	var req chiTransport.RankRequest
	if err := readJSON(rankFile, &req); err != nil {
		return err
	}
	if err := chiTransport.ValidateRequest(&req); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	task, cands, err := req.ToDomain()
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	if rankTopK < 0 {
		return fmt.Errorf("--top-k must not be negative")
	}

	engine := matching.NewEngine(nil, nil, matching.BlendMatcher{})
	svc := rankinguc.New(engine, rankinguc.Config{Boost: rankBoost}, nil)
	res := svc.Rank(context.Background(), task, cands, rankinguc.Options{TopK: rankTopK})
	resp := chiTransport.NewRankResponse(&res, rankIncludeExcluded)

	if rankJSON {
		return writeIndentedJSON(cmd.OutOrStdout(), resp)
	}
	return writeRankTable(cmd.OutOrStdout(), &resp)
}

func readJSON(path string, dst any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
