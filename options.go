package pngmsg

type readConfig struct {
	limits Limits
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

type writeConfig struct {
	limits      Limits
	compression Compression
}

type WriteOption func(*writeConfig)

func WithWriteLimits(l Limits) WriteOption {
	return func(c *writeConfig) { c.limits = l }
}

// WithCompression selects the codec used to compress the message
// payload before it is placed in the carrier chunk. The default is
// CompNone, which stores the raw UTF-8 bytes.
func WithCompression(comp Compression) WriteOption {
	return func(c *writeConfig) { c.compression = comp }
}
