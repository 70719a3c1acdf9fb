package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	teapot "github.com/antoniovini47/ifma-cg-utah-teapot"
	"github.com/antoniovini47/ifma-cg-utah-teapot/dataset"
	"github.com/antoniovini47/ifma-cg-utah-teapot/interchange/srfdoc"
	"github.com/antoniovini47/ifma-cg-utah-teapot/interchange/tsd"
	"github.com/pkg/errors"
)

type options struct {
	inPath  string
	outPath string
	format  string
	builtin bool
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stdin, os.Stderr))
}

// run parses the arguments & converts, returning the exit status
func run(args []string, w io.Writer, r io.Reader, ew io.Writer) int {
	var opts options
	flags := flag.NewFlagSet("teapot", flag.ContinueOnError)
	flags.SetOutput(ew)
	flags.StringVar(&opts.inPath, "in", "", "surface description to read (default stdin)")
	flags.StringVar(&opts.outPath, "out", "", "document to write (default stdout)")
	flags.StringVar(&opts.format, "format", "json", "document format: json or yaml")
	flags.BoolVar(&opts.builtin, "builtin", false, "convert the embedded Newell & Blinn teapot instead of reading input")
	flags.BoolVar(&opts.verbose, "v", false, "log every surface block")
	if err := flags.Parse(args); err == flag.ErrHelp {
		return 0
	} else if err != nil {
		return 1
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	teapot.SetLogger(slog.New(slog.NewTextHandler(ew, &slog.HandlerOptions{Level: level})))
	defer teapot.SetLogger(nil)

	if err := convert(w, r, ew, opts); err != nil {
		fmt.Fprintf(ew, "teapot: %v\n", err)
		return 1
	}
	return 0
}

func convert(w io.Writer, r io.Reader, ew io.Writer, opts options) (err error) {
	format, err := srfdoc.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	// Select the input
	in := r
	switch {
	case opts.builtin && opts.inPath != "":
		return errors.New("-builtin and -in can't be used together")
	case opts.builtin:
		in = strings.NewReader(dataset.Teapot)
	case opts.inPath != "":
		f, err := os.Open(opts.inPath)
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}

	dec := tsd.NewDecoder(in)
	doc, err := dec.Decode()
	if err != nil {
		return err
	}
	fmt.Fprintf(ew, "parsed %d surfaces, %d blocks skipped\n", len(doc.Surfaces), len(dec.Skipped()))

	// Only create the output once there is something to write to it
	out := w
	if opts.outPath != "" {
		f, createErr := os.Create(opts.outPath)
		if createErr != nil {
			return errors.Wrap(createErr, "creating output")
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = errors.Wrap(closeErr, "closing output")
			}
		}()
		out = f
	}

	if err := srfdoc.NewEncoder(out, format).Encode(doc); err != nil {
		return err
	}
	if opts.outPath != "" {
		fmt.Fprintf(ew, "%v document saved to %s\n", format, opts.outPath)
	}
	return nil
}
