package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	chiTransport "github.com/kailas-cloud/skillmatch/internal/transport/chi"
)

const rankInput = `{
  "task": {"id": "task-a", "required_skills": {"React": 4, "Node.js": 3}, "priority": "high", "difficulty": "hard"},
  "candidates": [
    {"id": "cand-a", "skills": {"react": 5, "javascript": 4}, "seniority": "senior",
     "experience_years": 6, "workload_hours": 15, "performance_rating": 4.5},
    {"id": "cand-b", "skills": {"cobol": 5}, "seniority": "junior"}
  ]
}`

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRankCommand_Table(t *testing.T) {
	path := writeInput(t, rankInput)

	out, err := execute(t, "rank", "-f", path, "--include-excluded", "--json=false")
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if !strings.Contains(out, "CAND-A") && !strings.Contains(out, "cand-a") {
		t.Errorf("table should list cand-a:\n%s", out)
	}
	if !strings.Contains(out, "1 recommended, 1 excluded") {
		t.Errorf("missing summary:\n%s", out)
	}
	if !strings.Contains(out, "excluded cand-b: below_threshold") {
		t.Errorf("missing exclusion:\n%s", out)
	}
}

func TestRankCommand_JSON(t *testing.T) {
	path := writeInput(t, rankInput)

	out, err := execute(t, "rank", "-f", path, "--json", "--include-excluded=false")
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	var resp chiTransport.RankResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(resp.Recommendations) != 1 || resp.Recommendations[0].CandidateID != "cand-a" {
		t.Errorf("recommendations: %+v", resp.Recommendations)
	}
	if resp.ExcludedCount != 1 {
		t.Errorf("excluded_count: got %d", resp.ExcludedCount)
	}
}

func TestRankCommand_InvalidInput(t *testing.T) {
	path := writeInput(t, `{"task": {"priority": "someday"}, "candidates": []}`)

	if _, err := execute(t, "rank", "-f", path); err == nil || !strings.Contains(err.Error(), "unknown priority") {
		t.Errorf("expected an unknown priority error, got %v", err)
	}
}

func TestThresholdCommand(t *testing.T) {
	path := writeInput(t, `{
  "task": {"required_skills": {"React": 4, "Node.js": 3}, "priority": "high", "difficulty": "hard"},
  "candidate": {"seniority": "senior", "experience_years": 6, "workload_hours": 15}
}`)

	out, err := execute(t, "threshold", "-f", path, "--json=false")
	if err != nil {
		t.Fatalf("threshold: %v", err)
	}
	if !strings.Contains(out, "Minimum skill match: 0.3100") {
		t.Errorf("missing minimum:\n%s", out)
	}

	out, err = execute(t, "threshold", "-f", path, "--json")
	if err != nil {
		t.Fatalf("threshold --json: %v", err)
	}
	var resp chiTransport.ThresholdResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Minimum < 0.3099 || resp.Minimum > 0.3101 {
		t.Errorf("minimum: got %v", resp.Minimum)
	}
}

func TestThresholdCommand_MissingFile(t *testing.T) {
	if _, err := execute(t, "threshold", "-f", filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected a read error")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "skillmatch dev") {
		t.Errorf("got %q", out)
	}
}
