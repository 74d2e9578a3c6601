package sources

// Record is one raw log line together with where it came from. Decoding and
// normalization happen downstream; sources only read.
type Record struct {
	Source  string // "stdin", "file" or "docker"
	Service string // configured service name, may be empty
	Origin  string // file path or container id, may be empty
	Text    string
}
