package tags

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"
)

func TestEncodeCSV(t *testing.T) {
	table := &Table{Records: []Record{
		{Name: "events.orders.v1", Tags: []string{"events", "orders", "v1"}},
		{Name: "reporting.daily", Tags: []string{"reporting", "daily"}},
	}}

	got, err := table.EncodeCSV()
	if err != nil {
		t.Fatalf("EncodeCSV returned error: %v", err)
	}

	want := ",Table_Name/Kafka_Name,Tags\n" +
		"0,events.orders.v1,\"['events', 'orders', 'v1']\"\n" +
		"1,reporting.daily,\"['reporting', 'daily']\"\n"
	if string(got) != want {
		t.Errorf("expected CSV:\n%s\ngot:\n%s", want, got)
	}
}

func TestEncodeCSV_SingleTagUnquoted(t *testing.T) {
	// A one-element tag list has no comma, so minimal quoting leaves the
	// field bare.
	table := &Table{Records: []Record{
		{Name: "standalone", Tags: []string{"standalone"}},
	}}

	got, err := table.EncodeCSV()
	if err != nil {
		t.Fatalf("EncodeCSV returned error: %v", err)
	}

	want := ",Table_Name/Kafka_Name,Tags\n0,standalone,['standalone']\n"
	if string(got) != want {
		t.Errorf("expected CSV:\n%s\ngot:\n%s", want, got)
	}
}

func TestEncodeCSV_EmptyTable(t *testing.T) {
	got, err := (&Table{}).EncodeCSV()
	if err != nil {
		t.Fatalf("EncodeCSV returned error: %v", err)
	}
	if string(got) != ",Table_Name/Kafka_Name,Tags\n" {
		t.Errorf("expected header-only CSV, got %q", got)
	}
}

func TestEncodeCSV_RoundTrip(t *testing.T) {
	table := &Table{Records: []Record{
		{Name: "events.orders.v1", Tags: []string{"events", "orders", "v1"}},
	}}

	raw, err := table.EncodeCSV()
	if err != nil {
		t.Fatalf("EncodeCSV returned error: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	if err != nil {
		t.Fatalf("read back CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[0], []string{"", ColName, ColTags}) {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if !reflect.DeepEqual(rows[1], []string{"0", "events.orders.v1", "['events', 'orders', 'v1']"}) {
		t.Errorf("unexpected data row: %v", rows[1])
	}
}
