package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cvlens/cvlens/internal/domain"
)

func newMatchCmd() *cobra.Command {
	var positionPath string
	cmd := &cobra.Command{
		Use:   "match <cv-file|->",
		Short: "Match a CV against a position requirement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			pos, err := loadPosition(positionPath)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			text, err := loadCVText(ctx, cfg, args[0])
			if err != nil {
				return err
			}
			a := buildAnalyzer(cfg, log, false)
			rec := a.Analyze(ctx, text)
			res := a.Match(rec, pos)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&positionPath, "position", "p", "", "position requirement file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("position")
	return cmd
}

var positionValidate = validator.New()

// loadPosition reads a PositionRequirement from a YAML (or JSON, which YAML
// subsumes) file and validates it.
func loadPosition(path string) (domain.PositionRequirement, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.PositionRequirement{}, fmt.Errorf("read position file: %w", err)
	}
	var pos domain.PositionRequirement
	if err := yaml.Unmarshal(raw, &pos); err != nil {
		return domain.PositionRequirement{}, fmt.Errorf("parse position file: %w", err)
	}
	if err := positionValidate.Struct(pos); err != nil {
		return domain.PositionRequirement{}, fmt.Errorf("invalid position file: %w", err)
	}
	return pos, nil
}
