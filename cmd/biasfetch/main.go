// Command biasfetch downloads the benchmark datasets used for bias
// analysis into a local directory.
//
// Usage:
//
//	biasfetch -root DIR [-config manifest.yaml] [-v] [name ...]
//
// With no names, every built-in dataset is fetched. A YAML manifest can
// point individual datasets at mirrors; see dataset.LoadManifest.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mkravets/biaskit/dataset"
)

func main() {
	root := flag.String("root", "data", "directory to extract datasets into")
	config := flag.String("config", "", "optional YAML manifest overriding dataset URLs")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] [name ...]\n\nDatasets: %s\n\nFlags:\n",
			os.Args[0], strings.Join(dataset.Names(), ", "))
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = dataset.Names()
	}

	fetcher := &dataset.Fetcher{Root: *root, Log: log}
	if *config != "" {
		manifest, err := dataset.LoadManifest(*config)
		if err != nil {
			log.WithError(err).Fatal("load manifest")
		}
		fetcher.Overrides = manifest.Datasets
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for _, name := range names {
		if err := fetcher.Fetch(ctx, name); err != nil {
			log.WithError(err).WithField("dataset", name).Fatal("fetch failed")
		}
	}
}
