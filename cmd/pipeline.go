package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/pable/go-lol-metrics/internal/catalog"
	"github.com/pable/go-lol-metrics/internal/config"
	"github.com/pable/go-lol-metrics/internal/dataset"
	"github.com/pable/go-lol-metrics/internal/model"
	"github.com/pable/go-lol-metrics/internal/report"
	"github.com/pable/go-lol-metrics/internal/stats"
)

// catalogBaseURL is overridden in tests.
var catalogBaseURL = catalog.DefaultBaseURL

// session is a loaded export, its filtered views and the optional item catalog.
type session struct {
	cfg config.Config

	all      *model.Dataset
	byMode   *model.Dataset
	filtered *model.Dataset
	catalog  *catalog.Catalog
}

// loadSession reads the dataset and, when withItems is set and the config
// allows it, downloads the item catalog at the same time. A catalog failure
// only degrades item labels; a dataset failure aborts.
func loadSession(ctx context.Context, c config.Config, withItems bool) (*session, error) {
	var (
		d   *model.Dataset
		cat *catalog.Catalog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		d, err = dataset.Load(c.DatasetPath)
		return err
	})
	if withItems && !c.Offline {
		g.Go(func() error {
			var err error
			cat, err = catalog.NewClient(catalogBaseURL).Fetch(gctx, c.ItemVersion)
			if err != nil {
				cat = nil
				if gctx.Err() == nil {
					log.Warn().Err(err).Msg("item names unavailable, showing raw ids")
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := &session{all: d, catalog: cat}
	s.apply(c)
	return s, nil
}

// apply sets the configuration and recomputes the filtered views. An empty
// mode or position keeps every row for that column.
func (s *session) apply(c config.Config) {
	s.cfg = c
	p := c.Predicates()
	s.byMode = s.all
	if mode, ok := p[model.ColGameMode]; ok {
		s.byMode = stats.ByMode(s.all, mode)
	}
	s.filtered = s.byMode
	if pos, ok := p[model.ColPosition]; ok {
		s.filtered = stats.ByPosition(s.byMode, pos)
	}
}

// namer returns the catalog as an ItemNamer, or a nil interface when there
// is no catalog.
func (s *session) namer() stats.ItemNamer {
	if s.catalog == nil {
		return nil
	}
	return s.catalog
}

func (s *session) itemVersion() string {
	return s.catalog.Version()
}

func (s *session) printFilterSummary(w io.Writer) {
	report.PrintFilterSummary(w, s.cfg.GameMode, s.cfg.Position, s.all.Len(), s.byMode.Len(), s.filtered.Len())
}

// printAnalysisError reports an analyzer failure without stopping the run.
func printAnalysisError(err error) {
	var mc *model.MissingColumnError
	if errors.As(err, &mc) {
		cWarn.Fprintf(os.Stderr, "skipped %v\n", mc)
		return
	}
	cError.Fprintf(os.Stderr, "error: %v\n", err)
}

func printNotice(w io.Writer, status stats.Status, minSamples int, champion string) {
	cWarn.Fprintln(w, "  "+report.Notice(status, minSamples, champion))
}

// printWinRates prints the ranking. With n > 0 only the top and bottom n
// entries are shown.
func (s *session) printWinRates(w io.Writer, n int) error {
	res, err := stats.WinRates(s.filtered, s.cfg.MinSamples)
	if err != nil {
		return err
	}
	if res.Status != stats.StatusOK {
		fmt.Fprintf(w, "\n--- Win Rate ---\n")
		printNotice(w, res.Status, res.MinSamples, "")
		return nil
	}
	if n <= 0 {
		report.PrintWinRateTable(w, fmt.Sprintf("Win Rate (min %d games)", res.MinSamples), res.Ranking)
		return nil
	}
	report.PrintWinRateTable(w, fmt.Sprintf("Top %d Win Rate (min %d games)", n, res.MinSamples), stats.Head(res.Ranking, n))
	report.PrintWinRateTable(w, fmt.Sprintf("Bottom %d Win Rate (min %d games)", n, res.MinSamples), stats.Tail(res.Ranking, n))
	return nil
}

func (s *session) printCombat(w io.Writer, n int) error {
	res, err := stats.CombatRatios(s.filtered, s.cfg.MinSamples)
	if err != nil {
		return err
	}
	if res.Status != stats.StatusOK {
		fmt.Fprintf(w, "\n--- KDA ---\n")
		printNotice(w, res.Status, res.MinSamples, "")
		return nil
	}
	if n <= 0 {
		report.PrintCombatTable(w, fmt.Sprintf("KDA (min %d games)", res.MinSamples), res.Ranking)
		return nil
	}
	report.PrintCombatTable(w, fmt.Sprintf("Top %d KDA (min %d games)", n, res.MinSamples), stats.Head(res.Ranking, n))
	report.PrintCombatTable(w, fmt.Sprintf("Bottom %d KDA (min %d games)", n, res.MinSamples), stats.Tail(res.Ranking, n))
	return nil
}

func (s *session) printGold(w io.Writer) error {
	res, err := stats.GoldByOutcome(s.filtered)
	if err != nil {
		return err
	}
	if res.Status != stats.StatusOK {
		fmt.Fprintf(w, "\n--- Gold Earned by Outcome ---\n")
		printNotice(w, res.Status, 0, "")
		return nil
	}
	report.PrintGoldTable(w, res)
	return nil
}

// printItems prints the target champion's item table, at most n rows when n > 0.
func (s *session) printItems(w io.Writer, n int) error {
	res, err := stats.ItemFrequency(s.filtered, s.cfg.TargetCharacter, s.namer())
	if err != nil {
		return err
	}
	if res.Status != stats.StatusOK {
		fmt.Fprintf(w, "\n--- Top Items: %s ---\n", s.cfg.TargetCharacter)
		printNotice(w, res.Status, 0, s.cfg.TargetCharacter)
		return nil
	}
	if n > 0 {
		res.Items = stats.Head(res.Items, n)
	}
	report.PrintItemTable(w, res)
	if v := s.itemVersion(); v != "" {
		cMuted.Fprintf(w, "  item names from patch %s\n", v)
	}
	return nil
}

// printProfile prints the summary of each champion. Champions below the
// game threshold are still shown, with a warning.
func (s *session) printProfile(w io.Writer, champions ...string) error {
	res, err := stats.Summarize(s.filtered, 1)
	if err != nil {
		return err
	}
	for _, champ := range champions {
		g, ok := res.Lookup(champ)
		if !ok {
			fmt.Fprintf(w, "\n--- Profile: %s ---\n", champ)
			printNotice(w, stats.StatusNotFound, 0, champ)
			continue
		}
		report.PrintProfile(w, g)
		if g.Games < s.cfg.MinSamples {
			cWarn.Fprintf(w, "  only %d games, below the %d-game threshold used for rankings\n", g.Games, s.cfg.MinSamples)
		}
	}
	return nil
}

// section selects which analyses go into a JSON document.
type section int

const (
	secGold section = 1 << iota
	secWinRate
	secKDA
	secProfile
	secItems

	secAll = secGold | secWinRate | secKDA | secProfile | secItems
)

// document runs the selected analyses and collects them for JSON output.
// Analyzer errors are recorded in their section.
func (s *session) document(sections section, champions ...string) report.Document {
	doc := report.Document{
		Mode:        s.cfg.GameMode,
		Position:    s.cfg.Position,
		MinGames:    s.cfg.MinSamples,
		Games:       s.filtered.Len(),
		Champion:    s.cfg.TargetCharacter,
		ItemVersion: s.itemVersion(),
	}
	if len(champions) == 0 {
		champions = []string{s.cfg.TargetCharacter}
	}

	if sections&secGold != 0 {
		doc.Gold = report.GoldSection(stats.GoldByOutcome(s.filtered))
	}
	if sections&secWinRate != 0 {
		doc.WinRates = report.WinRateSection(stats.WinRates(s.filtered, s.cfg.MinSamples))
	}
	if sections&secKDA != 0 {
		doc.KDA = report.KDASection(stats.CombatRatios(s.filtered, s.cfg.MinSamples))
	}
	if sections&secProfile != 0 {
		res, err := stats.Summarize(s.filtered, 1)
		doc.Profile = report.ProfileSection(res, err, champions...)
	}
	if sections&secItems != 0 {
		doc.Items = report.ItemSection(stats.ItemFrequency(s.filtered, s.cfg.TargetCharacter, s.namer()))
	}
	return doc
}
