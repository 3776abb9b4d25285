// Package pipeline runs the tagging stages for one uploaded workbook in
// strict order: decode, fetch, load, extract, publish. The first stage
// error aborts the run and surfaces unchanged to the caller.
package pipeline

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/dataplatform-utils/sheet-tagger/internal/event"
	"github.com/dataplatform-utils/sheet-tagger/internal/metrics"
	"github.com/dataplatform-utils/sheet-tagger/internal/publish"
	"github.com/dataplatform-utils/sheet-tagger/internal/s3util"
	"github.com/dataplatform-utils/sheet-tagger/internal/tags"
	"github.com/dataplatform-utils/sheet-tagger/internal/workbook"
)

// Pipeline processes one workbook per run.
type Pipeline struct {
	api    s3util.BucketAPI
	logger zerolog.Logger
}

// New returns a Pipeline using the given S3 client and invocation logger.
func New(api s3util.BucketAPI, logger zerolog.Logger) *Pipeline {
	return &Pipeline{api: api, logger: logger}
}

// Run decodes the SNS-wrapped notification and processes the object it
// names, returning the upload confirmation message.
func (p *Pipeline) Run(ctx context.Context, snsEvent events.SNSEvent) (string, error) {
	loc, err := event.DecodeLocation(snsEvent)
	if err != nil {
		return "", err
	}
	p.logger.Info().Str("bucket", loc.Bucket).Str("key", loc.Key).Msg("Notification decoded")
	return p.RunObject(ctx, loc)
}

// RunObject fetches, parses, tags, and publishes the workbook at loc.
func (p *Pipeline) RunObject(ctx context.Context, loc event.Location) (string, error) {
	start := time.Now()
	logger := p.logger.With().Str("bucket", loc.Bucket).Str("key", loc.Key).Logger()

	raw, err := s3util.ReadObject(ctx, p.api, loc.Bucket, loc.Key)
	if err != nil {
		return "", err
	}
	logger.Debug().Int("size", len(raw)).Msg("Workbook downloaded")

	wb, err := workbook.Load(raw)
	if err != nil {
		return "", err
	}
	defer wb.Close()

	logger = logger.With().Str("workbook_id", wb.ID()).Logger()
	sheetNames := wb.SheetNames()
	logger.Info().Strs("sheets", sheetNames).Msg("Workbook loaded")

	table, err := tags.Extract(wb, sheetNames, logger)
	if err != nil {
		return "", err
	}
	logger.Info().Int("records", len(table.Records)).Msg("Tags extracted")

	message, err := publish.Upload(ctx, p.api, loc.Bucket, loc.Key, table, logger)
	if err != nil {
		return "", err
	}

	metrics.New(metrics.Namespace).
		Dimension("Operation", "tag").
		Count("SheetsScanned", len(sheetNames)).
		Count("SheetsTagged", len(table.Records)).
		Metric("WorkbookBytes", float64(len(raw)), metrics.UnitBytes).
		Timing("DurationMs", start).
		Property("bucket", loc.Bucket).
		Property("key", loc.Key).
		Property("destination", publish.DestinationKey(loc.Key)).
		Flush()

	return message, nil
}
