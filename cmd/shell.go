package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/go-lol-metrics/internal/report"
	"github.com/pable/go-lol-metrics/internal/stats"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cHeader   = color.New(color.FgCyan, color.Bold)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive REPL session",
	Long: `Load the dataset and item catalog once, then explore it interactively:
change the mode, position, champion or threshold and rerun any analysis.
Type 'help' for available commands.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func runShell(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd.Context(), cfg, true)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	cGreeting.Println("lolmetrics shell")
	cMuted.Printf("%d games loaded from %s; type 'help' or 'exit'\n", s.all.Len(), s.cfg.DatasetPath)
	fmt.Println()

	return shellLoop(s, os.Stdin, os.Stdout)
}

// shellLoop reads commands from in until exit or EOF.
func shellLoop(s *session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		cPrompt.Fprint(out, "lolmetrics")
		cMuted.Fprintf(out, " [%s/%s]> ", filterName(s.cfg.GameMode), positionName(s.cfg.Position))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		name, args := tokens[0], tokens[1:]

		switch name {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp(out)
		case "status":
			shellStatus(s, out)
		case "mode":
			c := s.cfg
			c.GameMode = strings.Join(args, " ")
			s.apply(c)
			shellStatus(s, out)
		case "position":
			c := s.cfg
			c.Position = strings.Join(args, " ")
			s.apply(c)
			shellStatus(s, out)
		case "champion":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: champion <name>")
				continue
			}
			c := s.cfg
			c.TargetCharacter = strings.Join(args, " ")
			s.apply(c)
			shellStatus(s, out)
		case "min":
			n, err := shellInt(args)
			if err != nil || n < 0 {
				cError.Fprintln(os.Stderr, "usage: min <games>  (a non-negative integer)")
				continue
			}
			c := s.cfg
			c.MinSamples = n
			s.apply(c)
			shellStatus(s, out)
		case "modes":
			report.PrintValues(out, "Game modes", stats.Modes(s.all))
		case "positions":
			report.PrintValues(out, "Positions in "+filterName(s.cfg.GameMode), stats.ValidPositions(s.byMode))
		case "winrate":
			shellRun(s.printWinRates(out, shellTop(args)))
		case "kda":
			shellRun(s.printCombat(out, shellTop(args)))
		case "gold":
			shellRun(s.printGold(out))
		case "items":
			shellRun(s.printItems(out, 10))
		case "profile":
			champs := args
			if len(champs) == 0 {
				champs = []string{s.cfg.TargetCharacter}
			}
			shellRun(s.printProfile(out, champs...))
		case "champions":
			shellRun(printAllChampions(s, out))
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q, type 'help'\n", name)
		}
	}
	return nil
}

func shellHelp(w io.Writer) {
	fmt.Fprintln(w)
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"status", "show the current filters and game counts"},
		{"mode [m]", "filter by game mode (no argument = all modes)"},
		{"position [p]", "filter by position (no argument = all positions)"},
		{"champion <c>", "set the champion for items and profile"},
		{"min <n>", "set the minimum games for rankings"},
		{"modes", "list game modes in the dataset"},
		{"positions", "list positions in the current mode"},
		{"winrate [n]", "win-rate ranking (top/bottom n when given)"},
		{"kda [n]", "KDA ranking (top/bottom n when given)"},
		{"gold", "mean gold in wins and losses"},
		{"items", "top 10 items for the champion"},
		{"profile [c ...]", "profile of the champion or the named ones"},
		{"champions", "one summary row per eligible champion"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Fprint(w, "  ")
		cCmd.Fprintf(w, "%-20s", r.cmd)
		fmt.Fprintln(w, r.desc)
	}
	fmt.Fprintln(w)
}

func shellStatus(s *session, w io.Writer) {
	cHeader.Fprintf(w, "mode=%s position=%s champion=%s min=%d\n",
		filterName(s.cfg.GameMode), positionName(s.cfg.Position), s.cfg.TargetCharacter, s.cfg.MinSamples)
	cMuted.Fprintf(w, "%d games loaded, %d in mode, %d in position\n", s.all.Len(), s.byMode.Len(), s.filtered.Len())
}

func shellRun(err error) {
	if err != nil {
		printAnalysisError(err)
	}
}

func shellInt(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("want one argument")
	}
	return strconv.Atoi(args[0])
}

// shellTop returns the optional row limit; 0 means the full ranking.
func shellTop(args []string) int {
	n, err := shellInt(args)
	if err != nil {
		return 0
	}
	return n
}

func positionName(v string) string {
	if v == "" {
		return "all positions"
	}
	return v
}
