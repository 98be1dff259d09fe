package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"coachcore/pkg/domain"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that every stored collection parses to its expected shape",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		problems := 0
		for _, key := range domain.CollectionKeys() {
			raw, ok := a.guard.ReadRaw(cmd.Context(), string(key))
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s absent (defaults apply)\n", key)
				continue
			}
			if err := checkShape(key, raw); err != nil {
				problems++
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s MALFORMED: %v\n", key, err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-22s ok (%d bytes)\n", key, len(raw))
		}
		if problems > 0 {
			return fmt.Errorf("%d collection(s) malformed; reads will fall back to defaults", problems)
		}
		return nil
	},
}

// checkShape verifies the container type only: arrays for collections, an
// object for the trainer profile. Element-level shape is the codec's job.
func checkShape(key domain.CollectionKey, raw json.RawMessage) error {
	if key == domain.KeyTrainerProfile {
		var obj map[string]json.RawMessage
		return json.Unmarshal(raw, &obj)
	}
	var arr []json.RawMessage
	return json.Unmarshal(raw, &arr)
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
