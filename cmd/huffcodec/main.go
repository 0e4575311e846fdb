// huffcodec - Huffman archive CLI
//
// Usage:
//
//	huffcodec encode [in] [out]   Compress in (stdin) to a HUF1 archive on out (stdout)
//	huffcodec decode [in] [out]   Expand a HUF1 archive
//	huffcodec codes [file]        Print symbol, count and code for each byte
//	huffcodec stats [file]        Print weighted path length and ratio
//	huffcodec put <dir> [file]    Compress file into the archive store at dir, print the id
//	huffcodec get <dir> <id>      Write the plaintext of archive id to stdout
//	huffcodec list <dir>          List the archive ids stored at dir
//
// A file argument of "-" means stdin or stdout. The log level is read from
// HUFFCODEC_LOG_LEVEL and defaults to INFO.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/datatrails/go-datatrails-common/logger"
)

const logLevelEnv = "HUFFCODEC_LOG_LEVEL"

func main() {
	level := os.Getenv(logLevelEnv)
	if level == "" {
		level = "INFO"
	}
	logger.New(level)
	log := logger.Sugar.WithServiceName("huffcodec")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := run(ctx, log, os.Args[1:], os.Stdin, os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "huffcodec: %v\n", err)
		logger.OnExit()
		os.Exit(1)
	}
	logger.OnExit()
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `usage:
  huffcodec encode [in] [out]
  huffcodec decode [in] [out]
  huffcodec codes [file]
  huffcodec stats [file]
  huffcodec put <dir> [file]
  huffcodec get <dir> <id>
  huffcodec list <dir>
`)
}
