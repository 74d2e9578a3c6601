package sources

import (
	"bufio"
	"context"
	"io"
	"os"
)

type StdinSource struct {
	Service string
	Reader  io.Reader // defaults to os.Stdin
}

func (s *StdinSource) Run(ctx context.Context, out chan<- Record) error {
	r := s.Reader
	if r == nil {
		r = os.Stdin
	}
	scanner := bufio.NewScanner(r)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if !scanner.Scan() {
			return scanner.Err()
		}

		rec := Record{
			Source:  "stdin",
			Service: s.Service,
			Text:    scanner.Text(),
		}

		select {
		case out <- rec:
		case <-ctx.Done():
			return nil
		}
	}
}
