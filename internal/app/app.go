// Package app implements the pcn command line.
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/dhana56/protein-contact-networks/internal/config"
	"github.com/dhana56/protein-contact-networks/internal/core"
	"github.com/dhana56/protein-contact-networks/internal/core/contact"
	"github.com/dhana56/protein-contact-networks/internal/core/model"
	"github.com/dhana56/protein-contact-networks/internal/driver"
	"github.com/dhana56/protein-contact-networks/internal/output"
	"github.com/dhana56/protein-contact-networks/internal/store"
	"github.com/dhana56/protein-contact-networks/internal/structure"
	"github.com/dhana56/protein-contact-networks/internal/version"
)

const usageHeader = `Usage: pcn -chain ID [flags] STRUCTURE...

Builds the residue contact network of one chain for every STRUCTURE, given
as a PDB file path (optionally .gz) or a four character PDB id.

Flags:
`

type options struct {
	Chain         string
	Dir           string
	Cutoff        float64
	Atom          string
	ResidueNoDiff int
	Strategy      string
	Workers       int
	Format        string
	ConfigPath    string
	CacheDir      string
	Persist       bool
	Version       bool
	Structures    []string
	set           map[string]bool
}

func newFlagSet(opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("pcn", flag.ContinueOnError)
	fs.StringVar(&opts.Chain, "chain", "", "chain identifier (required, case-insensitive)")
	fs.StringVar(&opts.Dir, "dir", ".", "output directory")
	fs.Float64Var(&opts.Cutoff, "cutoff", model.DefaultCutoff, "contact distance cutoff in angstrom")
	fs.StringVar(&opts.Atom, "atom", model.DefaultAtomName, "atom name representing each residue")
	fs.IntVar(&opts.ResidueNoDiff, "residue-no-diff", model.DefaultResidueNoDiff, "exclude pairs whose residue numbers differ by exactly this value")
	fs.StringVar(&opts.Strategy, "strategy", "", "contact search: naive, parallel or grid")
	fs.IntVar(&opts.Workers, "workers", 0, "workers for the parallel strategy (0 = all CPUs)")
	fs.StringVar(&opts.Format, "format", "", "output format: csv or json")
	fs.StringVar(&opts.ConfigPath, "config", "", "TOML configuration file")
	fs.StringVar(&opts.CacheDir, "cache", "", "directory caching downloaded entries")
	fs.BoolVar(&opts.Persist, "persist", false, "also store networks in Memgraph")
	fs.BoolVar(&opts.Version, "version", false, "print version and exit")
	fs.Usage = func() {
		_, _ = fmt.Fprint(fs.Output(), usageHeader)
		fs.PrintDefaults()
	}
	return fs
}

func parseArgs(argv []string) (*options, *flag.FlagSet, error) {
	opts := &options{set: make(map[string]bool)}
	fs := newFlagSet(opts)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(argv); err != nil {
		return opts, fs, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	opts.Structures = fs.Args()

	if opts.Version {
		return opts, fs, nil
	}
	if strings.TrimSpace(opts.Chain) == "" {
		return opts, fs, errors.New("-chain is required")
	}
	if len(opts.Structures) == 0 {
		return opts, fs, errors.New("at least one STRUCTURE is required")
	}
	return opts, fs, nil
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext returns 0 when every structure produced a table, 1 when any did
// not and 2 on usage errors.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	opts, fs, err := parseArgs(argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "pcn version %s\n", version.Version)
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	strategy, err := contact.ParseStrategy(cfg.Network.Strategy)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	sink, err := output.New(cfg.Output.Format, cfg.Output.Dir)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	loader := structure.NewLoader(cfg.RCSB.BaseURL, cfg.Timeout(), cfg.RCSB.CacheDir)
	b := core.NewBuilder(loader, sink, nil, strategy, cfg.Network.Workers)
	// Each outcome is reported once below.
	b.Logger = nil

	if opts.Persist {
		d, err := driver.NewMemgraphDriver(parent, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		defer func() { _ = d.Close(context.Background()) }()
		if err := d.BuildIndices(parent); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
		b.Store = store.NewGraphStore(d)
	}

	reqs := make([]model.Request, len(opts.Structures))
	for i, id := range opts.Structures {
		reqs[i] = model.Request{StructureID: id, Chain: opts.Chain, Params: cfg.Params()}
	}

	code := 0
	for _, res := range b.BuildBatch(parent, reqs, cfg.Concurrency.Batch) {
		if res.OK() {
			_, _ = fmt.Fprintln(outw, res.Message)
			continue
		}
		code = 1
		_, _ = fmt.Fprintf(stderr, "%s: %s\n", res.Kind, res.Message)
	}
	return code
}

// loadConfig layers defaults, the config file, the environment and finally
// the flags given on the command line.
func loadConfig(opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if opts.set["dir"] || cfg.Output.Dir == "" {
		cfg.Output.Dir = opts.Dir
	}
	if opts.set["cutoff"] {
		cfg.Network.Cutoff = opts.Cutoff
	}
	if opts.set["atom"] {
		cfg.Network.Atom = opts.Atom
	}
	if opts.set["residue-no-diff"] {
		cfg.Network.ResidueNoDiff = opts.ResidueNoDiff
	}
	if opts.set["strategy"] {
		cfg.Network.Strategy = opts.Strategy
	}
	if opts.set["workers"] {
		cfg.Network.Workers = opts.Workers
	}
	if opts.set["format"] {
		cfg.Output.Format = opts.Format
	}
	if opts.set["cache"] {
		cfg.RCSB.CacheDir = opts.CacheDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
