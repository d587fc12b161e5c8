/*
Command gintsieve computes the Gaussian primes with norm up to a bound X.

Usage:

	gintsieve X [flags]

Without output flags the primes are printed to stdout, one per line as "a,b".
Every prime a+bi stands for its class of associates; a > 0 and b ≥ 0.

Settings may be read from a YAML file (--config); flags given on the command
line take precedence:

	method: lattice
	backend: packed
	sort: true
	tracing:
	  adapter: zap
	  destination: stderr
	  levels:
	    root: Error
	    gintsieve: Info
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/gintsieve"
	"github.com/npillmayer/gintsieve/primefile"
	"github.com/npillmayer/gintsieve/textplot"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

func tracer() tracing.Trace {
	return tracing.Select("gintsieve.cli")
}

// options holds the merged settings of flags and config file.
type options struct {
	verbose     bool
	printPrimes bool
	writeFile   string
	printArray  bool
	fullDisk    bool
	count       bool
	method      string
	backend     string
	sort        bool
	configFile  string
	traceLevel  string
	tracing     string
	traceDest   string
	traceLevels map[string]string // from config file
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "gintsieve X",
		Short: "Sieve the Gaussian primes with norm up to X",
		Long: `gintsieve runs a sieve of Eratosthenes over the Gaussian integers and
reports every Gaussian prime a+bi with a > 0, b ≥ 0 and a²+b² ≤ X.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.loadConfigFile(cmd.Flags()); err != nil {
				return err
			}
			return setupTracing(opts.traceConfig())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0])
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "report memory and progress on stderr")
	f.BoolVarP(&opts.printPrimes, "print-primes", "p", false, "print primes to stdout")
	f.StringVarP(&opts.writeFile, "write", "w", "", "write primes to `FILE`")
	f.BoolVarP(&opts.printArray, "print-array", "a", false, "draw the sieve array")
	f.BoolVar(&opts.fullDisk, "full-disk", false, "draw the primes with all associates over the whole disk")
	f.BoolVarP(&opts.count, "count", "c", false, "print the number of primes only")
	f.StringVarP(&opts.method, "method", "m", "subgroup", "crossing method, subgroup or lattice")
	f.StringVarP(&opts.backend, "backend", "b", gintsieve.BackendDense, "sieve array backend, dense or packed")
	f.BoolVar(&opts.sort, "sort", true, "sort primes by norm")
	f.StringVar(&opts.configFile, "config", "", "read settings from YAML `FILE`")
	f.StringVar(&opts.traceLevel, "trace-level", "Error", "trace level, Error, Info or Debug")
	f.StringVar(&opts.tracing, "tracing", "go", "tracing backend, go, zap or logrus")
	f.StringVar(&opts.traceDest, "trace-dest", "", "tracing destination, Stdout, Stderr or a file:// URI")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gintsieve: %v\n", err)
		os.Exit(1)
	}
}

func (opts *options) run(stdout, stderr io.Writer, arg string) error {
	x, err := gintsieve.ParseBound(arg)
	if err != nil {
		return err
	}
	method, err := gintsieve.ParseMethod(opts.method)
	if err != nil {
		return err
	}
	sieveOpts := []gintsieve.Option{
		gintsieve.WithMethod(method),
		gintsieve.WithBackend(opts.backend),
	}
	var progress *progressReporter
	if opts.verbose {
		progress = newProgressReporter(stderr)
		sieveOpts = append(sieveOpts, gintsieve.WithObserver(progress))
	}
	s, err := gintsieve.NewSieve(x, sieveOpts...)
	if err != nil {
		return err
	}
	if err = s.Run(); err != nil {
		return err
	}
	if progress != nil {
		progress.Finish(s.Count(), s.Elapsed())
	}
	if opts.printArray {
		if err = textplot.RenderArray(stdout, s.Array()); err != nil {
			return err
		}
	}
	if opts.count {
		_, err = fmt.Fprintln(stdout, s.Count())
		return err
	}
	primes := s.Primes(opts.sort)
	if opts.writeFile != "" {
		if err = writePrimeFile(opts.writeFile, x, primes); err != nil {
			return err
		}
	}
	if opts.fullDisk {
		if err = textplot.RenderPrimes(stdout, primes, x, true); err != nil {
			return err
		}
	}
	if opts.printPrimes || !(opts.printArray || opts.fullDisk || opts.writeFile != "") {
		return primefile.WriteAll(stdout, -1, primes)
	}
	return nil
}

func writePrimeFile(name string, x int64, primes []gintsieve.Point) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = primefile.WriteAll(f, x, primes); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	tracer().Infof("wrote %d primes to %s", len(primes), name)
	return f.Close()
}
