package sources

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestFileSource(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "eventize_logs_*.log")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name())

	src := &FileSource{
		Path:    tmpFile.Name(),
		Service: "test-service",
	}

	out := make(chan Record, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	if _, err := tmpFile.WriteString("test log line\n"); err != nil {
		t.Fatal(err)
	}

	go src.Run(ctx, out)

	select {
	case rec := <-out:
		if rec.Text != "test log line" {
			t.Errorf("expected 'test log line', got %q", rec.Text)
		}
		if rec.Origin != tmpFile.Name() {
			t.Errorf("Origin: %q", rec.Origin)
		}
	case <-ctx.Done():
		t.Error("timed out waiting for file record")
	}
}
