// Package publish serializes an extracted tag table and uploads it to the
// derived destination key in the source bucket.
package publish

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dataplatform-utils/sheet-tagger/internal/s3util"
	"github.com/dataplatform-utils/sheet-tagger/internal/tags"
)

// DestinationPrefix is prepended to every derived destination key.
const DestinationPrefix = "Tags/"

const csvContentType = "text/csv"

// ErrNilTable is returned when Upload is handed no table at all.
var ErrNilTable = errors.New("no tag table to publish")

// DestinationKey derives the upload key for a source workbook key: every
// occurrence of ".xlsx" becomes "_tagged.csv", and the result lands under
// the destination prefix. Keys without the substring pass through renamed
// only by the prefix.
func DestinationKey(key string) string {
	return DestinationPrefix + strings.ReplaceAll(key, ".xlsx", "_tagged.csv")
}

// Upload encodes the table to CSV and writes it to the destination derived
// from the source key. It returns the upload confirmation message, which
// names the bucket only.
func Upload(ctx context.Context, api s3util.BucketAPI, bucket, key string, table *tags.Table, logger zerolog.Logger) (string, error) {
	if table == nil {
		return "", ErrNilTable
	}

	body, err := table.EncodeCSV()
	if err != nil {
		return "", err
	}

	destination := DestinationKey(key)
	logger.Info().
		Str("destination", destination).
		Int("records", len(table.Records)).
		Int("size", len(body)).
		Msg("Uploading tag CSV")

	if err := s3util.WriteObject(ctx, api, bucket, destination, body, csvContentType); err != nil {
		return "", err
	}

	message := fmt.Sprintf("The file has been uploaded to %s", bucket)
	logger.Info().Msg(message)
	return message, nil
}
