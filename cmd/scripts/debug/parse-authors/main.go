package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/robinjoseph08/golib/logger"
	"github.com/shishobooks/archivist/pkg/authors"
)

func main() {
	log := logger.New()

	var opts struct {
		Publisher string `short:"p" long:"publisher" description:"Publisher used when the citation is only a placeholder"`
		Quiet     bool   `short:"q" long:"quiet" description:"Only print the final names"`
	}

	args, err := flags.Parse(&opts)
	if err != nil {
		log.Err(err).Fatal("flags parse error")
	}

	if len(args) == 0 {
		fmt.Println(`go run ./cmd/scripts/debug/parse-authors [-p publisher] "<citation>"...`)
		os.Exit(1)
	}

	for _, citation := range args {
		exp := authors.Explain(citation, opts.Publisher)
		if opts.Quiet {
			fmt.Println(strings.Join(exp.Authors, " | "))
			continue
		}

		fmt.Printf("Citation: %q\nCleaned: %q\nStrategy: %s\n", exp.Citation, exp.Cleaned, exp.Strategy)
		for i, fragment := range exp.Fragments {
			fmt.Printf("  Fragment %d: %q\n", i+1, fragment.Raw)
			for _, step := range fragment.Steps {
				fmt.Printf("    %-24s %q\n", step.Transform, step.Output)
			}
		}
		if exp.PublisherApplied {
			fmt.Printf("Publisher fallback: %q\n", opts.Publisher)
		}
		fmt.Printf("Authors: %q\n\n", exp.Authors)
	}
}
