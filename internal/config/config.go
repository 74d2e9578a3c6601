package config

type Config struct {
	Sources   map[string]SourceConfig `yaml:"sources"`
	Transform TransformConfig         `yaml:"transform"`
	Sink      SinkConfig              `yaml:"sink"`
	Resolve   ResolveConfig           `yaml:"resolve"`
}

type SourceConfig struct {
	Type        string `yaml:"type"` // stdin, file, docker
	Service     string `yaml:"service,omitempty"`
	Path        string `yaml:"path,omitempty"`
	ContainerID string `yaml:"container_id,omitempty"`
}

type TransformConfig struct {
	AddFields map[string]any `yaml:"add_fields,omitempty"`
}

type SinkConfig struct {
	Type     string `yaml:"type"` // stdout, tui
	Pretty   bool   `yaml:"pretty,omitempty"`
	MaxLines int    `yaml:"max_lines,omitempty"`
}

type ResolveConfig struct {
	Static map[string]string `yaml:"static,omitempty"`
	Docker bool              `yaml:"docker,omitempty"`
	Cache  CacheConfig       `yaml:"cache,omitempty"`
}

type CacheConfig struct {
	TTL     string `yaml:"ttl,omitempty"`
	MaxSize int    `yaml:"max_size,omitempty"`
}
