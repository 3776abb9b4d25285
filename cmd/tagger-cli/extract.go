package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dataplatform-utils/sheet-tagger/internal/tags"
	"github.com/dataplatform-utils/sheet-tagger/internal/workbook"
)

func newExtractCommand() *cobra.Command {
	var csvOut bool
	var outPath string

	cmd := &cobra.Command{
		Use:   "extract <file.xlsx>",
		Short: "Extract tag records from a local workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read workbook: %w", err)
			}
			wb, err := workbook.Load(raw)
			if err != nil {
				return err
			}
			defer wb.Close()

			tagTable, err := tags.Extract(wb, wb.SheetNames(), log.Logger)
			if err != nil {
				return err
			}

			if outPath != "" {
				body, err := tagTable.EncodeCSV()
				if err != nil {
					return err
				}
				if err := os.WriteFile(outPath, body, 0o644); err != nil {
					return fmt.Errorf("write CSV: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records to %s\n", len(tagTable.Records), outPath)
				return nil
			}
			if csvOut {
				body, err := tagTable.EncodeCSV()
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), string(body))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderRecords(tagTable))
			return nil
		},
	}

	cmd.Flags().BoolVar(&csvOut, "csv", false, "Print the CSV artifact instead of a table")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the CSV artifact to a file")
	return cmd
}
