// Package main provides the Lambda entry point for workbook tag extraction.
//
// The Lambda is subscribed to an SNS topic that relays S3 ObjectCreated
// notifications for uploaded .xlsx attribute workbooks. For each
// notification, it:
//
//  1. Decodes the nested notification to the uploaded bucket and key
//  2. Downloads the workbook and parses it in memory
//  3. Extracts one tag record per sheet whose name contains "Table"
//  4. Uploads the records as a CSV under the Tags/ prefix
//  5. Returns a confirmation message naming the bucket
//
// Any stage failure aborts the invocation; there are no retries here.
//
// Memory: 256 MB
// Timeout: 1 minute
package main

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"github.com/dataplatform-utils/sheet-tagger/internal/lambdaboot"
	"github.com/dataplatform-utils/sheet-tagger/internal/logging"
	"github.com/dataplatform-utils/sheet-tagger/internal/pipeline"
	"github.com/dataplatform-utils/sheet-tagger/internal/publish"
	"github.com/dataplatform-utils/sheet-tagger/internal/tags"
)

var coldStart = true

// S3 client initialized at cold start.
var s3Client *s3.Client

func init() {
	initStart := time.Now()
	logging.Init()

	cfg := lambdaboot.InitAWS()
	s3Client = lambdaboot.InitS3(cfg)

	lambdaboot.StartupLog("tagger-lambda", initStart).
		CommitHash(commitHash).
		BuildTime(buildTime).
		Config("destinationPrefix", publish.DestinationPrefix).
		Config("sheetNameMarker", tags.SheetNameMarker).
		Log()
}

func main() {
	lambda.Start(handler)
}

func handler(ctx context.Context, snsEvent events.SNSEvent) (string, error) {
	if coldStart {
		coldStart = false
		log.Info().Str("function", "tagger-lambda").Msg("Cold start — first invocation")
	}

	logger := log.Logger
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = log.With().Str("requestId", lc.AwsRequestID).Logger()
	}

	message, err := pipeline.New(s3Client, logger).Run(ctx, snsEvent)
	if err != nil {
		logger.Error().Err(err).Msg("Tagging failed")
		return "", err
	}
	return message, nil
}
