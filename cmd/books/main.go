package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/PapproxNP/books/pkg/codec"
	"github.com/PapproxNP/books/pkg/config"
	"github.com/PapproxNP/books/pkg/logging"
	"github.com/PapproxNP/books/pkg/session"
)

func main() {
	configPath := flag.String("config", "", "Path to books.yaml (default: configs/books.yaml or ./books.yaml)")
	file := flag.String("file", "", "Catalog file to load on start")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	sess := session.New(
		session.WithLogger(logger),
		session.WithCodec(codec.New(
			codec.WithDelimiter(cfg.Comma()),
			codec.WithLogger(logger),
		)),
	)

	sh := newShell(sess, cfg, os.Stdin, os.Stdout)
	if *file != "" {
		sh.load(*file)
	}
	sh.run()
}
