package bench

import (
	"encoding/json"
	"fmt"
	"os"
)

func writeResults(filename string, results []TrialResult) error {
	bz, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling results: %w", err)
	}
	return os.WriteFile(filename, bz, 0o644)
}

func readResults(filename string) ([]TrialResult, error) {
	bz, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading results file: %w", err)
	}
	var results []TrialResult
	err = json.Unmarshal(bz, &results)
	if err != nil {
		return nil, fmt.Errorf("error unmarshaling results file: %w", err)
	}
	return results, nil
}
