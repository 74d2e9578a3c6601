package sinks

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"eventize/internal/event"
)

// StdoutSink writes canonical events as NDJSON.
type StdoutSink struct {
	Pretty bool
	Writer io.Writer // defaults to os.Stdout
}

func (s *StdoutSink) Run(ctx context.Context, in <-chan event.Canonical) error {
	w := s.Writer
	if w == nil {
		w = os.Stdout
	}

	encoder := json.NewEncoder(w)
	if s.Pretty {
		encoder.SetIndent("", "  ")
	}

	for evt := range in {
		if err := encoder.Encode(evt); err != nil {
			return err
		}
	}

	return nil
}
