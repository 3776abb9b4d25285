package main

import (
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dataplatform-utils/sheet-tagger/internal/event"
	"github.com/dataplatform-utils/sheet-tagger/internal/pipeline"
)

func newRunCommand() *cobra.Command {
	var bucket, key string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full tagging pipeline against a live bucket",
		Long: `Run downloads the named workbook from S3, extracts its tag records, and
uploads the CSV to the derived destination key — the exact code path the
deployed Lambda executes, minus the notification decoding.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := awsconfig.LoadDefaultConfig(cmd.Context())
			if err != nil {
				return fmt.Errorf("load AWS config: %w", err)
			}

			p := pipeline.New(s3.NewFromConfig(cfg), log.Logger)
			message, err := p.RunObject(cmd.Context(), event.Location{Bucket: bucket, Key: key})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Bucket holding the uploaded workbook")
	cmd.Flags().StringVar(&key, "key", "", "Object key of the uploaded workbook")
	cmd.MarkFlagRequired("bucket")
	cmd.MarkFlagRequired("key")
	return cmd
}
