// Package console implements the interactive admin console SPEC_FULL.md's
// ADD Console component names: a go-prompt-backed input loop that runs
// stop/list/tp against a live server.Server, adapted from the teacher's
// server/console/console.go (which wraps Dragonfly's generic cmd package)
// down to the three fixed commands this server actually needs.
package console

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/kitemc/server/server/session"
)

const promptPrefix = "> "

// Host is the slice of server.Server the console drives.
type Host interface {
	Sessions() []*session.Session
	Stop()
}

// Console reads commands from stdin, or takes single lines through Execute,
// and executes them against a Host.
type Console struct {
	host    Host
	log     *slog.Logger
	history []string
}

// New returns a Console bound to host.
func New(host Host, log *slog.Logger) *Console {
	if log == nil {
		log = slog.Default()
	}
	return &Console{host: host, log: log}
}

// Run blocks, reading commands from an interactive go-prompt loop until ctx
// is cancelled or "stop" is entered.
func (c *Console) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		line := prompt.Input(promptPrefix, c.complete,
			prompt.OptionTitle("kitemc console"),
			prompt.OptionHistory(c.history),
			prompt.OptionPrefix(promptPrefix),
		)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c.history = append(c.history, line)
		if c.Execute(line) {
			return
		}
	}
}

// Execute runs a single command line and returns true if it should end the
// console loop (the "stop" command).
func (c *Console) Execute(line string) (stop bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "stop":
		c.host.Stop()
		return true
	case "list":
		c.list()
	case "tp":
		c.teleport(fields[1:])
	default:
		c.log.Error("unknown console command", "command", fields[0])
	}
	return false
}

func (c *Console) list() {
	sessions := c.host.Sessions()
	names := make([]string, 0, len(sessions))
	for _, s := range sessions {
		if s.Player != nil {
			names = append(names, s.Player.Offline.Username)
		}
	}
	c.log.Info("connected players", "count", len(names), "names", strings.Join(names, ", "))
}

func (c *Console) teleport(args []string) {
	if len(args) != 4 {
		c.log.Error("usage: tp <player> <x> <y> <z>")
		return
	}
	x, errX := strconv.ParseFloat(args[1], 64)
	y, errY := strconv.ParseFloat(args[2], 64)
	z, errZ := strconv.ParseFloat(args[3], 64)
	if errX != nil || errY != nil || errZ != nil {
		c.log.Error("tp: invalid coordinates", "args", args[1:])
		return
	}
	for _, s := range c.host.Sessions() {
		if s.Player == nil || s.Player.Offline.Username != args[0] {
			continue
		}
		s.Player.MoveTo(mgl64.Vec3{x, y, z})
		c.log.Info("teleported player", "player", args[0], "x", x, "y", y, "z", z)
		return
	}
	c.log.Error("tp: no such connected player", "player", args[0])
}

func (c *Console) complete(doc prompt.Document) []prompt.Suggest {
	word := doc.GetWordBeforeCursor()
	suggestions := []prompt.Suggest{
		{Text: "stop", Description: "shut down the server"},
		{Text: "list", Description: "list connected players"},
		{Text: "tp", Description: "tp <player> <x> <y> <z>"},
	}
	return prompt.FilterHasPrefix(suggestions, word, true)
}
