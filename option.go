package flatconv

import (
	"strconv"
	"strings"
)

// Option configures a Converter at construction time, following the same
// functional-option shape golpa uses for NewModel.
type Option func(*Config) error

// Config accumulates the Go-level and string-keyed options a Converter is
// built from. It is exported so ModelAPI/Backend implementations in other
// packages can read it without an import cycle back to package convert.
type Config struct {
	Logger Logger

	// AcceptanceOverride holds per-constraint-type acc:<tag> overrides,
	// keyed by the tag (lowercased type name), taking priority over the
	// ModelAPI's own declared Acceptance.
	AcceptanceOverride map[string]int

	// PreprocessAll is cvt:pre:all: master preprocessing enable.
	PreprocessAll bool
	// PreprocessEqResult is cvt:pre:eqresult.
	PreprocessEqResult bool
	// PreprocessEqBinary is cvt:pre:eqbinary.
	PreprocessEqBinary bool

	// Relax is alg:relax: drop integrality on all variables.
	Relax bool

	// WriteGraphPath is tech:writegraph <path>: dump the presolve DAG as
	// JSON-lines for debugging. Empty disables it.
	WriteGraphPath string

	// WriteProblemPath is writeprob=<file>: ask the ModelAPI to export the
	// pushed model, if it implements the optional writer interface.
	WriteProblemPath string
}

// WithLogger sets Config.Logger. No component of this module writes to it.
func WithLogger(logger Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithAcceptanceOverride forces the acceptance level for a constraint type
// tag, overriding whatever the active ModelAPI declares.
func WithAcceptanceOverride(tag string, level int) Option {
	return func(c *Config) error {
		if level < 0 || level > 2 {
			return NewInvalidOptionError("acc:"+tag, strconv.Itoa(level))
		}
		if c.AcceptanceOverride == nil {
			c.AcceptanceOverride = make(map[string]int)
		}
		c.AcceptanceOverride[strings.ToLower(tag)] = level
		return nil
	}
}

// WithRelaxation enables alg:relax: integrality is dropped on every
// variable before the model is pushed to the ModelAPI.
func WithRelaxation(relax bool) Option {
	return func(c *Config) error {
		c.Relax = relax
		return nil
	}
}

// WithWriteGraph enables tech:writegraph: the presolve DAG is dumped as
// JSON-lines to path after conversion completes.
func WithWriteGraph(path string) Option {
	return func(c *Config) error {
		c.WriteGraphPath = path
		return nil
	}
}

// NewConfig applies opts over the defaults (noop logger, all preprocessing
// flags on, as golpa's NewModel defaults all flags off except this module's
// preprocessors, which are cheap and safe to run unconditionally).
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		Logger:             noopLogger{},
		AcceptanceOverride: make(map[string]int),
		PreprocessAll:      true,
		PreprocessEqResult: true,
		PreprocessEqBinary: true,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// SetOption applies a single string-keyed solver option, of the form
// recognized by the converter itself: acc:<name>, cvt:pre:all,
// cvt:pre:eqresult, cvt:pre:eqbinary, alg:relax, tech:writegraph,
// writeprob. This is the boundary between an external option parser (out
// of scope for flatconv) and the Go-level Config.
func (c *Config) SetOption(name, value string) error {
	switch {
	case strings.HasPrefix(name, "acc:"):
		tag := strings.TrimPrefix(name, "acc:")
		level, err := strconv.Atoi(value)
		if err != nil || level < 0 || level > 2 {
			return NewInvalidOptionError(name, value)
		}
		if c.AcceptanceOverride == nil {
			c.AcceptanceOverride = make(map[string]int)
		}
		c.AcceptanceOverride[strings.ToLower(tag)] = level
		return nil
	case name == "cvt:pre:all":
		b, err := parseBoolOption(name, value)
		if err != nil {
			return err
		}
		c.PreprocessAll = b
		return nil
	case name == "cvt:pre:eqresult":
		b, err := parseBoolOption(name, value)
		if err != nil {
			return err
		}
		c.PreprocessEqResult = b
		return nil
	case name == "cvt:pre:eqbinary":
		b, err := parseBoolOption(name, value)
		if err != nil {
			return err
		}
		c.PreprocessEqBinary = b
		return nil
	case name == "alg:relax":
		b, err := parseBoolOption(name, value)
		if err != nil {
			return err
		}
		c.Relax = b
		return nil
	case name == "tech:writegraph":
		c.WriteGraphPath = value
		return nil
	case name == "writeprob":
		c.WriteProblemPath = value
		return nil
	default:
		return NewInvalidOptionError(name, value)
	}
}

func parseBoolOption(name, value string) (bool, error) {
	n, err := strconv.Atoi(value)
	if err != nil || (n != 0 && n != 1) {
		return false, NewInvalidOptionError(name, value)
	}
	return n == 1, nil
}

// AcceptanceFor returns the overridden acceptance level for tag, if any was
// set via acc:<tag>.
func (c *Config) AcceptanceFor(tag string) (int, bool) {
	lvl, ok := c.AcceptanceOverride[strings.ToLower(tag)]
	return lvl, ok
}
