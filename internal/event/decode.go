// Package event decodes the SNS-wrapped S3 notification that triggers the
// tagging pipeline into the bucket and key of the uploaded workbook.
package event

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// Decoding failures for malformed or empty notifications.
var (
	ErrNoRecords       = errors.New("SNS event contains no records")
	ErrNoObjectRecords = errors.New("S3 notification contains no records")
	ErrEmptyBucket     = errors.New("S3 notification has an empty bucket name")
	ErrEmptyKey        = errors.New("S3 notification has an empty object key")
)

// Location identifies the uploaded object the notification describes.
type Location struct {
	Bucket string
	Key    string
}

// DecodeLocation extracts the bucket and key from the first record of an SNS
// event whose message body is an S3 event notification. Only the first record
// is consulted at either level; S3 upload notifications carry one record per
// message, and SNS delivers one message per invocation.
//
// The object key is used exactly as it appears in the notification.
func DecodeLocation(snsEvent events.SNSEvent) (Location, error) {
	if len(snsEvent.Records) == 0 {
		return Location{}, ErrNoRecords
	}

	var s3Event events.S3Event
	if err := json.Unmarshal([]byte(snsEvent.Records[0].SNS.Message), &s3Event); err != nil {
		return Location{}, fmt.Errorf("decode S3 notification: %w", err)
	}

	if len(s3Event.Records) == 0 {
		return Location{}, ErrNoObjectRecords
	}

	record := s3Event.Records[0]
	loc := Location{
		Bucket: record.S3.Bucket.Name,
		Key:    record.S3.Object.Key,
	}
	if loc.Bucket == "" {
		return Location{}, ErrEmptyBucket
	}
	if loc.Key == "" {
		return Location{}, ErrEmptyKey
	}
	return loc, nil
}
