package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPosition sets a single starting FEN and the moves to play from it.
func (b *ConfigBuilder) WithPosition(fen string, moves ...string) *ConfigBuilder {
	b.cfg.FENs = []string{fen}
	b.cfg.Moves = moves
	return b
}

// WithPositions sets several starting FENs.
func (b *ConfigBuilder) WithPositions(fens ...string) *ConfigBuilder {
	b.cfg.FENs = fens
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithPerft sets the perft depth and whether to divide at the root.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithWorkers sets the number of parallel workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithHashEntries sets the perft transposition table size.
func (b *ConfigBuilder) WithHashEntries(n int) *ConfigBuilder {
	b.cfg.Perft.HashEntries = n
	return b
}

// WithSuite sets the suite file and fail-fast policy.
func (b *ConfigBuilder) WithSuite(path string, failFast bool) *ConfigBuilder {
	b.cfg.Suite.Path = path
	b.cfg.Suite.FailFast = failFast
	return b
}

// WithDatabase sets the analysis cache directory.
func (b *ConfigBuilder) WithDatabase(dir string) *ConfigBuilder {
	b.cfg.DBPath = dir
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// ShowBoard controls whether text output includes the board diagram.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}
