package transform

import (
	"context"

	"eventize/internal/event"
)

// Annotate adds constant fields to the payload of every canonical event
// passing through it, e.g. env or region labels from config.
type Annotate struct {
	Fields map[string]any
}

func (t *Annotate) Run(ctx context.Context, in <-chan event.Canonical, out chan<- event.Canonical) error {
	for evt := range in {
		for _, payload := range evt {
			m, ok := payload.(map[string]any)
			if !ok {
				continue
			}
			for k, v := range t.Fields {
				if _, exists := m[k]; !exists {
					m[k] = v
				}
			}
		}

		select {
		case out <- evt:
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}
