package publish

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/dataplatform-utils/sheet-tagger/internal/tags"
)

// stubBucket records the put it receives.
type stubBucket struct {
	putErr error

	putInput *s3.PutObjectInput
	putBody  []byte
}

func (s *stubBucket) GetObject(context.Context, *s3.GetObjectInput, ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return nil, errors.New("not implemented")
}

func (s *stubBucket) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	s.putInput = params
	if params.Body != nil {
		body, err := io.ReadAll(params.Body)
		if err != nil {
			return nil, err
		}
		s.putBody = body
	}
	if s.putErr != nil {
		return nil, s.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

func TestDestinationKey(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"report.xlsx", "Tags/report_tagged.csv"},
		{"data/report.xlsx", "Tags/data/report_tagged.csv"},
		// The replacement is literal and applies anywhere in the key.
		{"report.xlsx.bak", "Tags/report_tagged.csv.bak"},
		{"a.xlsx/b.xlsx", "Tags/a_tagged.csv/b_tagged.csv"},
		// No match: the key only gains the prefix.
		{"notes.txt", "Tags/notes.txt"},
		{"report.XLSX", "Tags/report.XLSX"},
	}
	for _, tc := range cases {
		if got := DestinationKey(tc.key); got != tc.want {
			t.Errorf("DestinationKey(%q) = %q, expected %q", tc.key, got, tc.want)
		}
	}
}

func TestUpload(t *testing.T) {
	stub := &stubBucket{}
	table := &tags.Table{Records: []tags.Record{
		{Name: "events.orders.v1", Tags: []string{"events", "orders", "v1"}},
	}}

	message, err := Upload(context.Background(), stub, "data-uploads", "report.xlsx", table, zerolog.Nop())
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if message != "The file has been uploaded to data-uploads" {
		t.Errorf("unexpected message %q", message)
	}
	if stub.putInput == nil {
		t.Fatal("expected PutObject to be called")
	}
	if *stub.putInput.Key != "Tags/report_tagged.csv" {
		t.Errorf("expected derived destination key, got %q", *stub.putInput.Key)
	}
	if *stub.putInput.ContentType != "text/csv" {
		t.Errorf("expected content type text/csv, got %q", *stub.putInput.ContentType)
	}

	want := ",Table_Name/Kafka_Name,Tags\n0,events.orders.v1,\"['events', 'orders', 'v1']\"\n"
	if string(stub.putBody) != want {
		t.Errorf("expected CSV body:\n%s\ngot:\n%s", want, stub.putBody)
	}
}

func TestUpload_NilTable(t *testing.T) {
	stub := &stubBucket{}

	_, err := Upload(context.Background(), stub, "data-uploads", "report.xlsx", nil, zerolog.Nop())
	if !errors.Is(err, ErrNilTable) {
		t.Errorf("expected ErrNilTable, got %v", err)
	}
	if stub.putInput != nil {
		t.Error("expected no PutObject call for a nil table")
	}
}

func TestUpload_PutError(t *testing.T) {
	cause := errors.New("AccessDenied")
	stub := &stubBucket{putErr: cause}

	_, err := Upload(context.Background(), stub, "data-uploads", "report.xlsx", &tags.Table{}, zerolog.Nop())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped storage error, got %v", err)
	}
}
