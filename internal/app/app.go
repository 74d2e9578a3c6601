package app

import (
	"context"
	"fmt"
	"log"

	"eventize/internal/config"
	"eventize/internal/pipeline"
	"eventize/internal/resolve"
	"eventize/internal/sinks"
	"eventize/internal/sources"
	"eventize/internal/transform"
)

type App struct {
	cfg *config.Config
}

func New(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

func (a *App) Run(ctx context.Context) error {
	log.Println("eventize starting")

	p, err := a.buildPipeline()
	if err != nil {
		return err
	}

	err = p.Run(ctx)

	if n := p.Dropped(); n > 0 {
		log.Printf("eventize stopped, %d records dropped as unsupported", n)
	} else {
		log.Println("eventize stopped")
	}
	return err
}

func (a *App) buildPipeline() (*pipeline.Pipeline, error) {
	p := &pipeline.Pipeline{}

	for name, sc := range a.cfg.Sources {
		switch sc.Type {
		case "stdin":
			p.Sources = append(p.Sources, &sources.StdinSource{Service: sc.Service})
		case "file":
			p.Sources = append(p.Sources, &sources.FileSource{Service: sc.Service, Path: sc.Path})
		case "docker":
			p.Sources = append(p.Sources, &sources.DockerSource{Service: sc.Service, ContainerID: sc.ContainerID})
		default:
			return nil, fmt.Errorf("source [%s]: unknown type '%s'", name, sc.Type)
		}
	}

	if len(a.cfg.Transform.AddFields) > 0 {
		p.Transform = &transform.Annotate{Fields: a.cfg.Transform.AddFields}
	}

	resolver, err := resolve.FromConfig(a.cfg.Resolve)
	if err != nil {
		return nil, err
	}
	p.Resolver = resolver

	switch a.cfg.Sink.Type {
	case "tui":
		p.Sink = &sinks.TUISink{MaxLines: a.cfg.Sink.MaxLines}
	default:
		p.Sink = &sinks.StdoutSink{Pretty: a.cfg.Sink.Pretty}
	}

	return p, nil
}
