package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordExportIncrementsCounter(t *testing.T) {
	before := testutil.ToFloat64(ExportCount.WithLabelValues("leads", "csv"))
	RecordExport("leads", "csv")
	RecordExport("leads", "csv")
	after := testutil.ToFloat64(ExportCount.WithLabelValues("leads", "csv"))
	if after-before != 2 {
		t.Fatalf("export count delta = %v, want 2", after-before)
	}
}

func TestRecordFormSubmissionIncrementsCounter(t *testing.T) {
	before := testutil.ToFloat64(FormSubmissions.WithLabelValues("customer"))
	RecordFormSubmission("customer")
	if got := testutil.ToFloat64(FormSubmissions.WithLabelValues("customer")) - before; got != 1 {
		t.Fatalf("form submission delta = %v, want 1", got)
	}
}

func TestRecordHTTPRequestObserves(t *testing.T) {
	RecordHTTPRequest("GET", "/leads", 200, 15*time.Millisecond)
	if n := testutil.CollectAndCount(HTTPRequestDuration, "effix_http_request_duration_seconds"); n == 0 {
		t.Fatalf("expected at least one histogram series")
	}
}
