package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/fzft/go-probe-table/deps/linenoise"
	"github.com/fzft/go-probe-table/dict"
	"github.com/fzft/go-probe-table/log"
	"go.uber.org/zap"
)

// cliCommand describes one shell command.
type cliCommand struct {
	name    string
	params  string
	summary string
	// arity is the exact argc including the command name; negative means
	// at least -arity.
	arity int
	proc  func(cli *Cli, argv []string) error
}

func (c *cliCommand) arityOk(argc int) bool {
	if c.arity < 0 {
		return argc >= -c.arity
	}
	return argc == c.arity
}

var commandTable map[string]*cliCommand

func init() {
	commands := []*cliCommand{
		{"insert", "key value", "Store value under key", -3, insertCommand},
		{"find", "key", "Get the value of key", 2, findCommand},
		{"remove", "key", "Delete key and print its value", 2, removeCommand},
		{"clear", "", "Remove every key", 1, clearCommand},
		{"count", "", "Number of stored keys", 1, countCommand},
		{"dump", "", "Print every non-empty slot", 1, dumpCommand},
		{"perm", "", "Print the probe offsets", 1, permCommand},
		{"probe", "key", "Print the probe path of key", 2, probeCommand},
		{"cls", "", "Clear the screen", 1, clsCommand},
		{"help", "", "Show this help", 1, helpCommand},
		{"quit", "", "Leave the shell", 1, quitCommand},
		{"exit", "", "Leave the shell", 1, quitCommand},
	}
	commandTable = make(map[string]*cliCommand, len(commands))
	for _, c := range commands {
		commandTable[c.name] = c
	}
}

func insertCommand(cli *Cli, argv []string) error {
	key, ok := cli.parseKey(argv[1])
	if !ok {
		return nil
	}
	value := strings.Join(argv[2:], " ")

	switch err := cli.table.Insert(key, value); {
	case err == nil:
		cli.reply("OK")
	case errors.Is(err, dict.ErrDuplicateKey):
		cli.replyError("key %d already present", key)
	case errors.Is(err, dict.ErrTableFull):
		cli.replyError("table full (%d/%d)", cli.table.Count(), cli.table.Limit())
	default:
		cli.replyError("%s", err)
	}
	return nil
}

func findCommand(cli *Cli, argv []string) error {
	key, ok := cli.parseKey(argv[1])
	if !ok {
		return nil
	}
	if value, ok := cli.table.Find(key); ok {
		cli.reply("%q", value)
	} else {
		cli.reply("(nil)")
	}
	return nil
}

func removeCommand(cli *Cli, argv []string) error {
	key, ok := cli.parseKey(argv[1])
	if !ok {
		return nil
	}
	if value, ok := cli.table.Remove(key); ok {
		cli.reply("%q", value)
	} else {
		cli.reply("(nil)")
	}
	return nil
}

func clearCommand(cli *Cli, _ []string) error {
	cli.table.Clear()
	cli.reply("OK")
	return nil
}

func countCommand(cli *Cli, _ []string) error {
	cli.reply("(integer) %d", cli.table.Count())
	return nil
}

func dumpCommand(cli *Cli, _ []string) error {
	if err := cli.table.Dump(cli.out); err != nil {
		cli.replyError("%s", err)
	}
	return nil
}

func permCommand(cli *Cli, _ []string) error {
	if err := cli.table.DumpPermutation(cli.out); err != nil {
		cli.replyError("%s", err)
	}
	return nil
}

func probeCommand(cli *Cli, argv []string) error {
	key, ok := cli.parseKey(argv[1])
	if !ok {
		return nil
	}
	for i, idx := range cli.table.Probe(key).Slots() {
		slot := cli.table.SlotAt(idx)
		if slot.State() == dict.Occupied {
			cli.reply("%d) [%d] %s {%d, %q}", i+1, idx, slot.State(), slot.Key(), slot.Value())
		} else {
			cli.reply("%d) [%d] %s", i+1, idx, slot.State())
		}
	}
	return nil
}

func clsCommand(cli *Cli, _ []string) error {
	if err := linenoise.ClearScreen(cli.out); err != nil {
		log.Logger.Warn("cannot clear screen", zap.Error(err))
	}
	return nil
}

func helpCommand(cli *Cli, _ []string) error {
	names := make([]string, 0, len(commandTable))
	for name := range commandTable {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := commandTable[name]
		cli.reply("  %-24s %s", strings.TrimSpace(fmt.Sprintf("%s %s", c.name, c.params)), c.summary)
	}
	return nil
}

func quitCommand(*Cli, []string) error {
	return errQuit
}
