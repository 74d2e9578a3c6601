package pipeline

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"eventize/internal/decode"
	"eventize/internal/event"
	"eventize/internal/resolve"
	"eventize/internal/sources"
)

type Source interface {
	Run(ctx context.Context, out chan<- sources.Record) error
}

type Sink interface {
	Run(ctx context.Context, in <-chan event.Canonical) error
}

type Transformer interface {
	Run(ctx context.Context, in <-chan event.Canonical, out chan<- event.Canonical) error
}

type Pipeline struct {
	Sources   []Source
	Transform Transformer
	Sink      Sink
	Resolver  resolve.Resolver // optional, labels events from unnamed origins

	dropped atomic.Int64
}

// Dropped reports how many records failed normalization and were skipped.
func (p *Pipeline) Dropped() int64 {
	return p.dropped.Load()
}

func (p *Pipeline) Run(ctx context.Context) error {
	if len(p.Sources) == 0 {
		return fmt.Errorf("pipeline: no sources provided")
	}
	if p.Sink == nil {
		return fmt.Errorf("pipeline: no sink provided")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	recordChan := make(chan sources.Record, 100)
	eventChan := make(chan event.Canonical, 100)

	errCh := make(chan error, 8)
	var wg sync.WaitGroup

	for _, src := range p.Sources {
		s := src
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Run(ctx, recordChan); err != nil && err != context.Canceled {
				select {
				case errCh <- err:
				default:
				}
				cancel()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(recordChan)
	}()

	go func() {
		defer close(eventChan)
		for {
			select {
			case <-ctx.Done():
				return
			case rec, ok := <-recordChan:
				if !ok {
					return
				}
				evt, err := event.Normalize(decode.Line(rec.Text))
				if err != nil {
					p.dropped.Add(1)
					log.Printf("pipeline: dropping record from %s: %v", rec.Source, err)
					continue
				}
				p.label(ctx, rec, evt)
				select {
				case eventChan <- evt:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	sinkChan := eventChan
	if p.Transform != nil {
		tc := make(chan event.Canonical, 100)
		go func() {
			defer close(tc)
			if err := p.Transform.Run(ctx, eventChan, tc); err != nil && err != context.Canceled {
				select {
				case errCh <- err:
				default:
				}
				cancel()
			}
		}()
		sinkChan = tc
	}

	sinkErr := p.Sink.Run(ctx, sinkChan)
	if sinkErr != nil && sinkErr != context.Canceled {
		select {
		case errCh <- sinkErr:
		default:
		}
		cancel()
	}

	select {
	case err := <-errCh:
		if err != nil && err != context.Canceled {
			log.Printf("pipeline stopped with error: %v", err)
			return err
		}
	default:
	}
	return sinkErr
}

// label stamps source metadata into each event payload: where the line came
// from and which service produced it, resolving unnamed origins through the
// configured Resolver. Caller-supplied fields win.
func (p *Pipeline) label(ctx context.Context, rec sources.Record, evt event.Canonical) {
	service := rec.Service
	if service == "" && rec.Origin != "" && p.Resolver != nil {
		if svc, ok := p.Resolver.Resolve(ctx, rec.Origin); ok {
			service = svc
		}
	}

	for _, payload := range evt {
		m, ok := payload.(map[string]any)
		if !ok {
			continue
		}
		if _, exists := m["source"]; !exists && rec.Source != "" {
			m["source"] = rec.Source
		}
		if _, exists := m["service"]; !exists && service != "" {
			m["service"] = service
		}
	}
}
