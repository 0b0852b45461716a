package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/wdm0006/medfix/pkg/process"
)

var version = "0.1.0-dev"

func main() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	configPath := flag.String("config", "", "Path to run config (TOML, YAML or JSON)")
	datasetPath := flag.String("dataset", "", "Dataset directory (overrides config)")
	outPath := flag.String("out", "", "Save directory (overrides config)")
	quiet := flag.Bool("quiet", false, "Suppress progress bars")
	flag.Parse()

	if *showVersion {
		fmt.Println("medfix", version)
		return
	}
	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "no config provided; nothing to do. try --config <file> or --version")
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *datasetPath != "" {
		cfg.Dataset = *datasetPath
	}
	if *outPath != "" {
		cfg.Out = *outPath
	}
	if cfg.Dataset == "" || cfg.Out == "" {
		fmt.Fprintln(os.Stderr, "config must set dataset and out paths")
		os.Exit(2)
	}

	opt := process.Options{
		Column:    cfg.Column,
		Terms:     cfg.Terms,
		Labels:    cfg.Labels,
		Strict:    cfg.Strict,
		TopLabels: 10,
	}
	if !*quiet {
		opt.Progress = os.Stderr
	}

	summary, err := process.Run(context.Background(), cfg.Dataset, cfg.Out, opt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(summary.Text())
	fmt.Printf("saved to %s\n", cfg.Out)
}
