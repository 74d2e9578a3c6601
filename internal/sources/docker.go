package sources

import (
	"bufio"
	"context"
	"io"
	"log"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
)

type DockerSource struct {
	Service     string
	ContainerID string
}

func (ds *DockerSource) Run(ctx context.Context, out chan<- Record) error {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return err
	}
	defer cli.Close()

	log.Printf("docker source started for container: %s", ds.ContainerID)

	options := container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     true,
		Timestamps: false,
	}

	reader, err := cli.ContainerLogs(ctx, ds.ContainerID, options)
	if err != nil {
		return err
	}
	defer reader.Close()

	// Container logs are multiplexed; demux stdout and stderr into one pipe.
	pr, pw := io.Pipe()
	go func() {
		_, err := stdcopy.StdCopy(pw, pw, reader)
		pw.CloseWithError(err)
	}()

	scanner := bufio.NewScanner(pr)
	for scanner.Scan() {
		text := scanner.Text()
		if text == "" {
			continue
		}

		rec := Record{
			Source:  "docker",
			Service: ds.Service,
			Origin:  ds.ContainerID,
			Text:    text,
		}

		select {
		case out <- rec:
		case <-ctx.Done():
			return nil
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		log.Printf("docker scanner error: %v", err)
		return err
	}
	return nil
}
