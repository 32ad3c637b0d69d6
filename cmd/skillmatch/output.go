package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	chiTransport "github.com/kailas-cloud/skillmatch/internal/transport/chi"
)

func fmtScore(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

func writeIndentedJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRankTable(w io.Writer, resp *chiTransport.RankResponse) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Candidate", "Score", "Composite", "Skill", "Threshold", "Source", "Role"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(resp.Recommendations))
	for _, r := range resp.Recommendations {
		role := ""
		switch {
		case r.Boosted:
			role = "boosted"
		case r.Flagged:
			role = "priority"
		}
		data = append(data, []string{
			strconv.Itoa(r.Rank),
			r.CandidateID,
			fmtScore(r.Score),
			fmtScore(r.Composite),
			fmtScore(r.SkillMatchScore),
			fmtScore(r.Threshold),
			string(r.Source),
			role,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Run %s: %d recommended, %d excluded\n",
		resp.RunID, len(resp.Recommendations), resp.ExcludedCount); err != nil {
		return err
	}
	for _, e := range resp.Excluded {
		line := fmt.Sprintf("  excluded %s: %s (score %s, threshold %s)",
			e.CandidateID, e.Reason, fmtScore(e.Score), fmtScore(e.Threshold))
		if e.Error != "" {
			line += ": " + e.Error
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeThresholdTable(w io.Writer, resp *chiTransport.ThresholdResponse) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Factor", "Value", "Detail"})

	data := make([][]string, 0, len(resp.Lines))
	for _, l := range resp.Lines {
		data = append(data, []string{l.Factor, fmtScore(l.Value), l.Detail})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Minimum skill match: %s\n", fmtScore(resp.Minimum))
	return err
}
