package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dataplatform-utils/sheet-tagger/internal/pipeline"
)

func newReplayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <event.json>",
		Short: "Re-run the pipeline from a recorded SNS notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read event file: %w", err)
			}
			var snsEvent events.SNSEvent
			if err := json.Unmarshal(raw, &snsEvent); err != nil {
				return fmt.Errorf("decode event file: %w", err)
			}

			cfg, err := awsconfig.LoadDefaultConfig(cmd.Context())
			if err != nil {
				return fmt.Errorf("load AWS config: %w", err)
			}

			message, err := pipeline.New(s3.NewFromConfig(cfg), log.Logger).Run(cmd.Context(), snsEvent)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
}
