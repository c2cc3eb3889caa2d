package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		useModel     bool
		showKeywords int
		suggest      bool
	)
	cmd := &cobra.Command{
		Use:   "analyze <file|->",
		Short: "Extract a structured record from a CV document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			text, err := loadCVText(ctx, cfg, args[0])
			if err != nil {
				return err
			}
			a := buildAnalyzer(cfg, log, useModel)

			var out struct {
				Record    any      `json:"record"`
				Keywords  []string `json:"keywords,omitempty"`
				Positions []string `json:"suggested_positions,omitempty"`
			}
			if useModel {
				out.Record = a.AnalyzeWithModel(ctx, text)
			} else {
				rec := a.Analyze(ctx, text)
				out.Record = rec
				if suggest {
					out.Positions = a.SuggestPositions(rec)
				}
			}
			if showKeywords > 0 {
				out.Keywords = a.Keywords(text, showKeywords)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&useModel, "ai", false, "use the generation collaborator with heuristic fallback")
	cmd.Flags().IntVar(&showKeywords, "keywords", 0, "include the top N keywords")
	cmd.Flags().BoolVar(&suggest, "suggest-positions", false, "include suggested position titles")
	return cmd
}
