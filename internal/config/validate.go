package config

import "fmt"

func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("at least one source is required")
	}

	for name, s := range c.Sources {
		switch s.Type {
		case "stdin":
		case "file":
			if s.Path == "" {
				return fmt.Errorf("source [%s]: file source requires a path", name)
			}
		case "docker":
			if s.ContainerID == "" {
				return fmt.Errorf("source [%s]: docker source requires a container_id", name)
			}
		default:
			return fmt.Errorf("source [%s]: unknown type '%s'", name, s.Type)
		}
	}

	switch c.Sink.Type {
	case "", "stdout", "tui":
	default:
		return fmt.Errorf("sink: unknown type '%s'", c.Sink.Type)
	}

	return nil
}
