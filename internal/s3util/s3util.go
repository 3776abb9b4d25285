// Package s3util provides the two S3 operations the tagging pipeline performs:
// fetching an uploaded workbook into memory and putting the derived CSV back.
//
// Both helpers issue exactly one blocking call and never retry; storage
// errors are wrapped and returned to the caller unchanged in cause.
package s3util

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// projectTag is the URL-encoded S3 object tagging string for cost allocation.
const projectTag = "Project=sheet-tagger"

// BucketAPI is the subset of the S3 client used by the pipeline.
// *s3.Client satisfies it; tests substitute an in-memory implementation.
type BucketAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ReadObject downloads an S3 object and returns its full contents. The
// workbooks this pipeline handles are small enough to hold in memory, so no
// temp files are involved.
func ReadObject(ctx context.Context, api BucketAPI, bucket, key string) ([]byte, error) {
	result, err := api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket, Key: &key,
	})
	if err != nil {
		return nil, fmt.Errorf("S3 GetObject: %w", err)
	}
	defer result.Body.Close()

	body, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("read object body: %w", err)
	}
	return body, nil
}

// WriteObject uploads body to the named bucket and key with a single put,
// applying the project cost-allocation tag.
func WriteObject(ctx context.Context, api BucketAPI, bucket, key string, body []byte, contentType string) error {
	tagging := projectTag
	_, err := api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: &contentType,
		Tagging:     &tagging,
	})
	if err != nil {
		return fmt.Errorf("S3 PutObject: %w", err)
	}
	return nil
}
