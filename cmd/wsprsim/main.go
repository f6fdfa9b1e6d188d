package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/neurlang/wsprsim/synth"
	"github.com/neurlang/wsprsim/wspr"
	"github.com/spf13/pflag"
)

const Version = "v1.0.0"

func main() {
	var (
		configFile = pflag.StringP("config", "c", "", "YAML file overriding the synthesis parameters")
		writeRF    = pflag.Bool("rf", false, "Also write .rf symbol frequency listings")
		outputDir  = pflag.String("dir", ".", "Output directory")
		version    = pflag.BoolP("version", "v", false, "Print version and exit")
	)
	pflag.Usage = usage
	pflag.Parse()

	if *version {
		fmt.Printf("wsprsim %s\n", Version)
		os.Exit(0)
	}

	args := pflag.Args()
	if len(args) != 3 {
		usage()
		os.Exit(2)
	}
	power, err := wspr.ParsePower(args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		usage()
		os.Exit(2)
	}

	cfg := synth.DefaultConfig()
	if *configFile != "" {
		cfg, err = synth.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	opts := options{
		Callsign: args[0],
		Grid:     args[1],
		Power:    power,
		Dir:      *outputDir,
		RF:       *writeRF,
	}
	if err := run(os.Stdout, wspr.NewEncoder(), cfg, opts); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: wsprsim [flags] CALLSIGN GRID POWER_dBm\n\n")
	fmt.Fprintf(os.Stderr, "Writes wspr_normal/wspr_altered .bits and .wav decode fixtures.\n")
	fmt.Fprintf(os.Stderr, "POWER_dBm must be 0-60.\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	pflag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExample:\n")
	fmt.Fprintf(os.Stderr, "  wsprsim KJ6ABC FN31pr 37\n")
}

type options struct {
	Callsign string
	Grid     string
	Power    int
	Dir      string
	RF       bool
}

type fixture struct {
	name    string
	symbols wspr.Sequence
}

// run encodes the message, derives the sync-corrupted copy and writes both fixtures.
func run(out io.Writer, enc wspr.Encoder, cfg synth.Config, opts options) error {
	if err := wspr.ValidatePower(opts.Power); err != nil {
		return err
	}

	normal, err := enc.Encode(opts.Callsign, opts.Grid, opts.Power)
	if err != nil {
		return fmt.Errorf("encode %s %s %d: %w", opts.Callsign, opts.Grid, opts.Power, err)
	}
	if err := normal.Validate(); err != nil {
		return fmt.Errorf("encoder output: %w", err)
	}
	altered := wspr.Corrupt(normal)

	fmt.Fprintln(out, wspr.Diff(normal, altered))

	for _, fx := range []fixture{{"wspr_normal", normal}, {"wspr_altered", altered}} {
		base := filepath.Join(opts.Dir, fx.name)

		if err := wspr.WriteBits(base+".bits", fx.symbols); err != nil {
			return err
		}

		samples, err := synth.SynthesizeSequence(cfg, fx.symbols)
		if err != nil {
			return fmt.Errorf("%s: %w", fx.name, err)
		}
		if err := synth.WriteWav(base+".wav", samples, cfg.SampleRate); err != nil {
			return err
		}
		fmt.Fprintf(out, "→ %s.wav\n", fx.name)

		if opts.RF {
			if err := wspr.WriteRFFile(base+".rf", fx.symbols, wspr.DefaultRFConfig()); err != nil {
				return err
			}
			fmt.Fprintf(out, "→ %s.rf\n", fx.name)
		}
	}

	fmt.Fprintln(out, "\nSimulation complete. You now have:")
	fmt.Fprintln(out, " - wspr_normal.bits & wspr_normal.wav (should decode)")
	fmt.Fprintln(out, " - wspr_altered.bits & wspr_altered.wav (should NOT decode)")
	return nil
}
