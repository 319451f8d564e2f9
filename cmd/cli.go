package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fzft/go-probe-table/deps/linenoise"
	"github.com/fzft/go-probe-table/dict"
	"github.com/fzft/go-probe-table/log"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"go.uber.org/zap"
)

var (
	CliHisFileEnv     = "PROBETABLE_HISTFILE"
	CliHisFileDefault = ".probetable_history"
)

var errQuit = errors.New("quit")

type CliCfg struct {
	Capacity   int
	Seed       int64
	EmptyKey   int64
	DeletedKey int64
	MaxLoad    float64
}

// Cli is an interactive shell around a single ProbeTable.
type Cli struct {
	config *CliCfg
	table  *dict.ProbeTable[int64, string]
	out    io.Writer
	prompt string
}

func NewCli(config *CliCfg, out io.Writer) (*Cli, error) {
	table, err := dict.New[int64, string](config.EmptyKey, config.DeletedKey, config.Capacity,
		dict.WithSeed(config.Seed),
		dict.WithMaxLoad(config.MaxLoad),
		dict.WithLogger(log.Logger))
	if err != nil {
		return nil, err
	}

	cli := &Cli{
		config: config,
		table:  table,
		out:    out,
	}
	cli.refreshPrompt()
	return cli, nil
}

// Run reads commands from in until EOF or quit. When in is a terminal the
// commands are read with line editing and history.
func (cli *Cli) Run(in *os.File) error {
	log.Logger.Info("probe table ready",
		zap.Int("capacity", cli.config.Capacity),
		zap.Int64("seed", cli.config.Seed))

	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return cli.repl()
	}
	return cli.Script(in)
}

func (cli *Cli) repl() error {
	line := linenoise.New()
	defer line.Close()

	historyFile := historyPath(CliHisFileEnv, CliHisFileDefault)
	if historyFile != "" {
		if err := line.HistoryLoad(historyFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Logger.Warn("cannot load history", zap.String("file", historyFile), zap.Error(err))
		}
	}

	for {
		input, err := line.Prompt(cli.prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		if err := cli.Exec(input); errors.Is(err, errQuit) {
			break
		}
	}

	if historyFile != "" {
		if err := line.HistorySave(historyFile); err != nil {
			log.Logger.Warn("cannot save history", zap.String("file", historyFile), zap.Error(err))
		}
	}
	return nil
}

// Script executes one command per line of r.
func (cli *Cli) Script(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := cli.Exec(scanner.Text()); errors.Is(err, errQuit) {
			return nil
		}
	}
	return scanner.Err()
}

// Exec runs a single command line and writes its reply. It returns errQuit
// when the session should end; command failures are written as replies.
func (cli *Cli) Exec(line string) error {
	argv := strings.Fields(line)
	if len(argv) == 0 {
		return nil
	}
	defer cli.refreshPrompt()

	name := strings.ToLower(argv[0])
	c, ok := commandTable[name]
	if !ok {
		cli.replyError("unknown command '%s', try 'help'", argv[0])
		return nil
	}
	if !c.arityOk(len(argv)) {
		cli.replyError("wrong number of arguments for '%s' command", name)
		return nil
	}
	return c.proc(cli, argv)
}

func (cli *Cli) parseKey(arg string) (int64, bool) {
	key, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		cli.replyError("key is not an integer: %s", arg)
		return 0, false
	}
	if key == cli.table.EmptyKey() || key == cli.table.DeletedKey() {
		cli.replyError("key %d is reserved", key)
		return 0, false
	}
	return key, true
}

func (cli *Cli) reply(format string, args ...any) {
	fmt.Fprintf(cli.out, format+"\n", args...)
}

func (cli *Cli) replyError(format string, args ...any) {
	fmt.Fprintf(cli.out, "(error) "+format+"\n", args...)
}

func (cli *Cli) refreshPrompt() {
	cli.prompt = fmt.Sprintf("probetable[%d/%d]> ", cli.table.Count(), cli.table.Capacity())
}

// historyPath resolves the history file: the env override wins, "/dev/null"
// disables history, otherwise name under the home directory.
func historyPath(envOverride, name string) string {
	if path, ok := os.LookupEnv(envOverride); ok && path != "" {
		if path == os.DevNull {
			return ""
		}
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, name)
}
