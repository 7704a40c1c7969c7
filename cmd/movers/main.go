package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/shanehull/movers/internal/extract"
	"github.com/shanehull/movers/internal/format"
	"github.com/shanehull/movers/internal/input"
	"github.com/shanehull/movers/internal/post"
)

// errUsage marks command line errors the flag set has already reported.
var errUsage = errors.New("usage error")

type options struct {
	variants string
	html     bool
	format   string
}

func newFlagSet(opts *options, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("movers", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.variants, "variants", format.DefaultVariantList, "Comma-separated count:prefix pairs, one output block each")
	fs.BoolVar(&opts.html, "html", false, "Treat input as HTML and scan only its visible text")
	fs.StringVar(&opts.format, "format", post.FormatText, "Output format: text or html")

	fs.Usage = func() {
		fmt.Fprintf(output, "Usage of %s:\n", fs.Name())
		fmt.Fprintf(output, "  %s [flags] < input.txt\n", fs.Name())
		fmt.Fprintln(output, "All flags are optional. Without any, the default three-block post is printed.")
		fmt.Fprintln(output, "Unknown flags are rejected; positional arguments are ignored.")

		order := []string{
			"variants",
			"html",
			"format",
		}

		for _, name := range order {
			f := fs.Lookup(name)
			if f != nil {
				fmt.Fprintf(output, "  -%s (default %q)\n", f.Name, f.DefValue)
				fmt.Fprintf(output, "    %s\n", f.Usage)
			}
		}
	}

	return fs
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options
	fs := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	variants, err := format.ParseVariants(opts.variants)
	if err != nil {
		return fmt.Errorf("bad -variants: %w", err)
	}

	renderer, err := post.ByName(strings.ToLower(strings.TrimSpace(opts.format)))
	if err != nil {
		return fmt.Errorf("bad -format: %w", err)
	}

	text, err := input.Read(stdin)
	if err != nil {
		return err
	}

	if opts.html {
		text, err = input.VisibleText(strings.NewReader(text))
		if err != nil {
			return err
		}
	}

	tickers, err := extract.Tickers(text)
	if err != nil {
		return fmt.Errorf("failed to extract tickers: %w", err)
	}

	return post.Write(stdout, renderer, format.Blocks(tickers, variants))
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("movers: ")

	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if errors.Is(err, errUsage) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}
