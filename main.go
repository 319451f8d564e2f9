package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fzft/go-probe-table/cmd"
	"github.com/fzft/go-probe-table/log"
	"go.uber.org/zap"
)

func main() {
	config := &cmd.CliCfg{}
	flag.IntVar(&config.Capacity, "capacity", 16, "number of slots in the table")
	flag.Int64Var(&config.Seed, "seed", time.Now().UnixNano(), "seed for the probe permutation")
	flag.Int64Var(&config.EmptyKey, "empty", -1, "reserved key marking empty slots")
	flag.Int64Var(&config.DeletedKey, "deleted", -2, "reserved key marking deleted slots")
	flag.Float64Var(&config.MaxLoad, "load", 1.0, "maximum load factor in (0, 1]")
	debug := flag.Bool("debug", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(Version())
		return
	}

	if err := log.InitLogger(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %s\n", err)
		os.Exit(1)
	}
	defer log.Logger.Sync()

	cli, err := cmd.NewCli(config, os.Stdout)
	if err != nil {
		log.Logger.Error("cannot create table", zap.Error(err))
		os.Exit(1)
	}
	if err := cli.Run(os.Stdin); err != nil {
		log.Logger.Error("shell stopped", zap.Error(err))
		os.Exit(1)
	}
}
