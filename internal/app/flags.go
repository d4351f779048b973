package app

import (
	"flag"
	"strings"
)

// Config represents the command-line parameters for the previewer.
type Config struct {
	Gen   string
	Scale int
	TPS   int
	IPS   int
	Seed  int64
	Set   KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Gen: "drunkca", Scale: 24, TPS: 60, IPS: 2}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Gen, "gen", c.Gen, "generator to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.IPS, "ips", c.IPS, "generator iterations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the run (0 picks one from the clock)")
	fs.Var(&c.Set, "set", "generator parameter in key=value form (repeatable)")
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends a raw key=value pair.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the collected pairs into a map. Entries without '=' are skipped
// and later keys win.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return m
}
