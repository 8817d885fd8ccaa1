package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gbsorgapi/services"
	"gbsorgapi/services/dto"
	"gbsorgapi/utils"

	"github.com/spf13/cobra"
)

type reorganizeOptions struct {
	file   string
	dryRun bool
}

func newReorganizeCmd() *cobra.Command {
	var opts reorganizeOptions

	cmd := &cobra.Command{
		Use:   "reorganize",
		Short: "Apply a term reorganization described by a JSON file",
		Long: "Reads a reorganization payload (department_id, start_date, end_date, assignments)\n" +
			"and applies it in one transaction. Use --dry-run to validate without writing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReorganize(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&opts.file, "file", "", "Payload JSON file, - for stdin (required)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Validate and report without writing")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readPayload(path string) (dto.ReorganizationPayload, error) {
	var payload dto.ReorganizationPayload
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return payload, fmt.Errorf("open payload: %w", err)
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return payload, fmt.Errorf("decode payload: %w", err)
	}
	if err := utils.ValidateStruct(&payload); err != nil {
		return payload, fmt.Errorf("invalid payload: %w", err)
	}
	return payload, nil
}

func runReorganize(ctx context.Context, opts reorganizeOptions, out io.Writer) error {
	payload, err := readPayload(opts.file)
	if err != nil {
		return err
	}
	if opts.dryRun {
		payload.DryRun = true
	}
	req, err := payload.ToRequest()
	if err != nil {
		return err
	}

	db, closeDB, err := connect(ctx, false)
	if err != nil {
		return err
	}
	defer closeDB()

	report, err := services.NewReorganizationService(db).Reorganize(ctx, req)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
