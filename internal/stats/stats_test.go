package stats

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/pable/go-lol-metrics/internal/model"
)

// row builds a minimal CLASSIC/BOTTOM participant.
func row(champ string, win bool, k, d, a int) model.MatchParticipant {
	return model.MatchParticipant{
		GameMode:     "CLASSIC",
		Position:     "BOTTOM",
		ChampionName: champ,
		Win:          win,
		Kills:        k,
		Deaths:       d,
		Assists:      a,
	}
}

// repeat returns n copies of r, the first wins of them marked as wins.
func repeat(r model.MatchParticipant, n, wins int) []model.MatchParticipant {
	out := make([]model.MatchParticipant, n)
	for i := range out {
		out[i] = r
		out[i].Win = i < wins
	}
	return out
}

func full(rows ...model.MatchParticipant) *model.Dataset {
	return model.NewDataset(model.FullSchema(), rows)
}

// fakeNamer resolves a fixed set of item ids.
type fakeNamer map[int]string

func (f fakeNamer) Name(id int) (string, bool) {
	n, ok := f[id]
	return n, ok
}

// ---- Dataset Filter ----

func TestFilter_PreservesOrder(t *testing.T) {
	rows := []model.MatchParticipant{
		{GameMode: "CLASSIC", Position: "TOP", ChampionName: "Garen"},
		{GameMode: "ARAM", Position: "NONE", ChampionName: "Lux"},
		{GameMode: "CLASSIC", Position: "BOTTOM", ChampionName: "Sivir"},
		{GameMode: "CLASSIC", Position: "BOTTOM", ChampionName: "Jinx"},
	}
	d := full(rows...)

	got, err := Filter(d, map[model.Column]string{
		model.ColGameMode: "CLASSIC",
		model.ColPosition: "BOTTOM",
	})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", got.Len())
	}
	if got.Rows[0].ChampionName != "Sivir" || got.Rows[1].ChampionName != "Jinx" {
		t.Errorf("order not preserved: %s, %s", got.Rows[0].ChampionName, got.Rows[1].ChampionName)
	}
	if d.Len() != 4 {
		t.Errorf("input dataset mutated: %d rows", d.Len())
	}
}

func TestFilter_RejectsNumericPredicate(t *testing.T) {
	_, err := Filter(full(), map[model.Column]string{model.ColKills: "3"})
	if err == nil {
		t.Error("expected error for numeric predicate")
	}
}

// Scenario C: no rows for the mode -> empty subset, every analyzer reports no data.
func TestEmptyModeReportsNoData(t *testing.T) {
	d := full(repeat(row("Sivir", true, 5, 2, 7), 5, 3)...)

	aram := ByMode(d, "ARAM")
	if aram.Len() != 0 {
		t.Fatalf("expected empty subset, got %d rows", aram.Len())
	}

	wr, err := WinRates(aram, 1)
	if err != nil {
		t.Fatalf("WinRates: %v", err)
	}
	if wr.Status != StatusNoEligible {
		t.Errorf("win rate status: want no eligible, got %v", wr.Status)
	}
	kda, err := CombatRatios(aram, 1)
	if err != nil {
		t.Fatalf("CombatRatios: %v", err)
	}
	if kda.Status != StatusNoEligible {
		t.Errorf("kda status: want no eligible, got %v", kda.Status)
	}
	gold, err := GoldByOutcome(aram)
	if err != nil {
		t.Fatalf("GoldByOutcome: %v", err)
	}
	if gold.Status != StatusNoData {
		t.Errorf("gold status: want no data, got %v", gold.Status)
	}
	items, err := ItemFrequency(aram, "Sivir", nil)
	if err != nil {
		t.Fatalf("ItemFrequency: %v", err)
	}
	if items.Status != StatusNotFound {
		t.Errorf("items status: want not found, got %v", items.Status)
	}
}

func TestValidPositions(t *testing.T) {
	d := full(
		model.MatchParticipant{Position: "UTILITY", ChampionName: "a"},
		model.MatchParticipant{Position: "Invalid", ChampionName: "b"},
		model.MatchParticipant{Position: "BOTTOM", ChampionName: "c"},
		model.MatchParticipant{Position: "UTILITY", ChampionName: "d"},
		model.MatchParticipant{Position: "NONE", ChampionName: "e"},
	)
	if got := Positions(d); !reflect.DeepEqual(got, []string{"UTILITY", "Invalid", "BOTTOM", "NONE"}) {
		t.Errorf("Positions: %v", got)
	}
	if got := ValidPositions(d); !reflect.DeepEqual(got, []string{"UTILITY", "BOTTOM"}) {
		t.Errorf("ValidPositions: %v", got)
	}
}

// ---- Group Aggregator / Eligibility ----

func TestGroupCounts_ExactKeys(t *testing.T) {
	d := full(row("Sivir", true, 0, 0, 0), row("sivir", true, 0, 0, 0), row("Sivir ", false, 0, 0, 0), row("Sivir", false, 0, 0, 0))
	counts, err := GroupCounts(d, model.ColChampion)
	if err != nil {
		t.Fatalf("GroupCounts: %v", err)
	}
	want := map[string]int{"Sivir": 2, "sivir": 1, "Sivir ": 1}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("counts: got %v, want %v", counts, want)
	}
}

func TestGroupMeans(t *testing.T) {
	d := full(row("Jinx", true, 10, 2, 4), row("Jinx", false, 4, 6, 8), row("Ashe", true, 1, 1, 1))
	means, err := GroupMeans(d, model.ColChampion, model.ColKills, model.ColWin)
	if err != nil {
		t.Fatalf("GroupMeans: %v", err)
	}
	if means["Jinx"][model.ColKills] != 7 {
		t.Errorf("Jinx kills mean: want 7, got %v", means["Jinx"][model.ColKills])
	}
	if means["Jinx"][model.ColWin] != 0.5 {
		t.Errorf("Jinx win mean: want 0.5, got %v", means["Jinx"][model.ColWin])
	}
	if len(means) != 2 {
		t.Errorf("expected 2 groups, got %d", len(means))
	}
}

func TestGroupMeans_MissingColumn(t *testing.T) {
	d := model.NewDataset(model.NewSchema(model.IdentityColumns...), []model.MatchParticipant{row("Jinx", true, 1, 1, 1)})
	_, err := GroupMeans(d, model.ColChampion, model.ColGoldEarned)
	var mce *model.MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
}

func TestEligible(t *testing.T) {
	counts := map[string]int{"a": 1, "b": 5, "c": 20, "d": 19}
	if got := Eligible(counts, 20); !reflect.DeepEqual(got, []string{"c"}) {
		t.Errorf("m=20: %v", got)
	}
	for _, m := range []int{0, 1} {
		if got := Eligible(counts, m); !reflect.DeepEqual(got, []string{"a", "b", "c", "d"}) {
			t.Errorf("m=%d: %v", m, got)
		}
	}
	if got := Eligible(counts, 100); len(got) != 0 {
		t.Errorf("m=100: %v", got)
	}
}

// ---- Win-Rate Analyzer ----

// Scenario A: 25 Sivir games, 23 wins, threshold 20 -> 92.0.
func TestWinRates_Sivir(t *testing.T) {
	rows := repeat(row("Sivir", false, 3, 3, 3), 25, 23)
	rows = append(rows, repeat(row("Jinx", false, 3, 3, 3), 10, 10)...)
	res, err := WinRates(full(rows...), 20)
	if err != nil {
		t.Fatalf("WinRates: %v", err)
	}
	if res.Status != StatusOK {
		t.Fatalf("status: %v", res.Status)
	}
	if len(res.Ranking) != 1 {
		t.Fatalf("expected only Sivir, got %+v", res.Ranking)
	}
	if res.Ranking[0].Champion != "Sivir" || res.Ranking[0].Rate != 92.0 {
		t.Errorf("got %+v, want Sivir 92.0", res.Ranking[0])
	}
	if res.Counts["Jinx"] != 10 {
		t.Errorf("counts should include ineligible Jinx: %v", res.Counts)
	}
}

func TestWinRates_ThresholdProperty(t *testing.T) {
	var rows []model.MatchParticipant
	for i, name := range []string{"A", "B", "C", "D", "E", "F"} {
		rows = append(rows, repeat(row(name, false, 0, 0, 0), i*3+1, i)...)
	}
	d := full(rows...)
	for _, m := range []int{0, 1, 4, 7, 10, 16, 17} {
		res, err := WinRates(d, m)
		if err != nil {
			t.Fatalf("m=%d: %v", m, err)
		}
		seen := map[string]int{}
		for _, w := range res.Ranking {
			seen[w.Champion]++
			if res.Counts[w.Champion] < m {
				t.Errorf("m=%d: %s has %d games", m, w.Champion, res.Counts[w.Champion])
			}
			if w.Rate < 0 || w.Rate > 100 {
				t.Errorf("m=%d: rate out of range %v", m, w.Rate)
			}
			if w.Rate != Round2(w.Rate) {
				t.Errorf("m=%d: rate not rounded %v", m, w.Rate)
			}
		}
		for champ, n := range res.Counts {
			if n >= m && seen[champ] != 1 {
				t.Errorf("m=%d: eligible %s appears %d times", m, champ, seen[champ])
			}
		}
	}
}

// Scenario E: threshold 1 admits every champion.
func TestWinRates_ThresholdOneAdmitsAll(t *testing.T) {
	d := full(row("Ashe", true, 0, 0, 0), row("Zeri", false, 0, 0, 0), row("Kaisa", true, 0, 0, 0))
	res, err := WinRates(d, 1)
	if err != nil {
		t.Fatalf("WinRates: %v", err)
	}
	if len(res.Ranking) != 3 {
		t.Fatalf("expected 3 champions, got %d", len(res.Ranking))
	}
	// Ashe and Kaisa tie at 100: ascending name order is kept.
	want := []string{"Ashe", "Kaisa", "Zeri"}
	for i, w := range res.Ranking {
		if w.Champion != want[i] {
			t.Errorf("rank %d: want %s, got %s", i, want[i], w.Champion)
		}
	}
}

func TestWinRates_Rounding(t *testing.T) {
	// 1 win out of 3 = 33.333...
	rows := repeat(row("Draven", false, 0, 0, 0), 3, 1)
	res, _ := WinRates(full(rows...), 1)
	if res.Ranking[0].Rate != 33.33 {
		t.Errorf("want 33.33, got %v", res.Ranking[0].Rate)
	}
}

func TestWinRates_Idempotent(t *testing.T) {
	var rows []model.MatchParticipant
	for i := 0; i < 40; i++ {
		rows = append(rows, row(fmt.Sprintf("C%d", i%7), i%3 == 0, i%5, i%4, i%6))
	}
	d := full(rows...)
	a, _ := WinRates(d, 2)
	b, _ := WinRates(d, 2)
	if !reflect.DeepEqual(a, b) {
		t.Error("WinRates not idempotent")
	}
	c1, _ := CombatRatios(d, 2)
	c2, _ := CombatRatios(d, 2)
	if !reflect.DeepEqual(c1, c2) {
		t.Error("CombatRatios not idempotent")
	}
}

func TestWinRates_MissingWinColumn(t *testing.T) {
	d := model.NewDataset(model.NewSchema(model.ColChampion, model.ColGameMode, model.ColPosition), nil)
	_, err := WinRates(d, 1)
	var mce *model.MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
	if mce.Columns[0] != model.ColWin {
		t.Errorf("missing column: %v", mce.Columns)
	}
}

// ---- Combat-Ratio Analyzer ----

// Scenario B: 5 kills, 7 assists, 0 deaths -> 12.0.
func TestCombatRatios_ZeroDeathsFloor(t *testing.T) {
	d := full(row("Sivir", true, 5, 0, 7), row("Sivir", true, 5, 0, 7))
	res, err := CombatRatios(d, 1)
	if err != nil {
		t.Fatalf("CombatRatios: %v", err)
	}
	got := res.Ranking[0]
	if got.KDA != 12.0 {
		t.Errorf("kda: want 12.0, got %v", got.KDA)
	}
	if got.Deaths != 0 {
		t.Errorf("reported deaths should stay 0, got %v", got.Deaths)
	}
}

func TestKDARatio_DenominatorFloor(t *testing.T) {
	cases := []struct {
		k, d, a float64
		want    float64
	}{
		{5, 0, 7, 12},
		{5, 0.5, 7, 12},
		{5, 1, 7, 12},
		{5, 2, 7, 6},
		{0, 0, 0, 0},
	}
	for _, c := range cases {
		if got := KDARatio(c.k, c.d, c.a); got != c.want {
			t.Errorf("KDARatio(%v,%v,%v) = %v, want %v", c.k, c.d, c.a, got, c.want)
		}
	}
}

func TestCombatRatios_Ranking(t *testing.T) {
	d := full(
		row("Jinx", true, 10, 5, 5),
		row("Jinx", false, 2, 5, 8),  // means 6/5/6.5 -> 2.5
		row("Ashe", true, 3, 2, 9),   // 6.0
		row("Zeri", true, 6, 4, 6),   // 3.0
		row("Ezreal", true, 6, 4, 6), // ties Zeri
	)
	res, err := CombatRatios(d, 1)
	if err != nil {
		t.Fatalf("CombatRatios: %v", err)
	}
	want := []string{"Ashe", "Ezreal", "Zeri", "Jinx"}
	for i, c := range res.Ranking {
		if c.Champion != want[i] {
			t.Errorf("rank %d: want %s, got %s (%+v)", i, want[i], c.Champion, res.Ranking)
		}
	}
	jinx, ok := res.Lookup("Jinx")
	if !ok {
		t.Fatal("Jinx missing")
	}
	if jinx.Kills != 6 || jinx.Deaths != 5 || jinx.Assists != 6.5 || jinx.KDA != 2.5 {
		t.Errorf("Jinx line: %+v", jinx)
	}
	if jinx.Games != 2 {
		t.Errorf("Jinx games: %d", jinx.Games)
	}
}

func TestCombatRatios_NoEligible(t *testing.T) {
	res, err := CombatRatios(full(row("Jinx", true, 1, 1, 1)), 5)
	if err != nil {
		t.Fatalf("CombatRatios: %v", err)
	}
	if res.Status != StatusNoEligible || res.Ranking != nil {
		t.Errorf("want no eligible, got %+v", res)
	}
}

// ---- Resource-Impact Analyzer ----

func TestGoldByOutcome(t *testing.T) {
	rows := []model.MatchParticipant{
		{ChampionName: "a", Win: true, GoldEarned: 12000},
		{ChampionName: "b", Win: true, GoldEarned: 13001},
		{ChampionName: "c", Win: false, GoldEarned: 9000},
	}
	res, err := GoldByOutcome(full(rows...))
	if err != nil {
		t.Fatalf("GoldByOutcome: %v", err)
	}
	if len(res.Outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(res.Outcomes))
	}
	loss, _ := res.Lookup(OutcomeLoss)
	win, _ := res.Lookup(OutcomeWin)
	if loss.MeanGold != 9000 || loss.Games != 1 {
		t.Errorf("loss: %+v", loss)
	}
	if win.MeanGold != 12500.5 || win.Games != 2 {
		t.Errorf("win: %+v", win)
	}
}

func TestGoldByOutcome_SingleOutcome(t *testing.T) {
	rows := []model.MatchParticipant{{ChampionName: "a", Win: true, GoldEarned: 1}}
	res, _ := GoldByOutcome(full(rows...))
	if len(res.Outcomes) != 1 || res.Outcomes[0].Outcome != OutcomeWin {
		t.Errorf("expected only Win, got %+v", res.Outcomes)
	}
}

func TestGoldByOutcome_MissingColumnIsNamed(t *testing.T) {
	d := model.NewDataset(model.NewSchema(model.IdentityColumns...), []model.MatchParticipant{row("a", true, 0, 0, 0)})
	_, err := GoldByOutcome(d)
	var mce *model.MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
	if mce.Columns[0] != model.ColGoldEarned {
		t.Errorf("missing: %v", mce.Columns)
	}
	// Other analyzers still run on the same dataset.
	if _, err := WinRates(d, 1); err != nil {
		t.Errorf("WinRates should still succeed: %v", err)
	}
}

// ---- Item-Frequency Analyzer ----

func itemRow(champ string, items ...int) model.MatchParticipant {
	r := row(champ, true, 0, 0, 0)
	copy(r.Items[:], items)
	return r
}

func TestItemFrequency_DropsEmptySlot(t *testing.T) {
	d := full(
		itemRow("Sivir", 3031, 3006, 0, 0, 0, 0, 3363),
		itemRow("Sivir", 3031, 3087, 3006, 0, 0, 0, 3363),
		itemRow("Jinx", 3031, 0, 0, 0, 0, 0, 0),
	)
	res, err := ItemFrequency(d, "Sivir", nil)
	if err != nil {
		t.Fatalf("ItemFrequency: %v", err)
	}
	if res.Games != 2 {
		t.Errorf("games: %d", res.Games)
	}
	for _, it := range res.Items {
		if it.ItemID == model.NoItem {
			t.Fatal("empty slot sentinel in output")
		}
	}
	want := []ItemCount{
		{ItemID: 3006, Label: "3006", Count: 2},
		{ItemID: 3031, Label: "3031", Count: 2},
		{ItemID: 3363, Label: "3363", Count: 2},
		{ItemID: 3087, Label: "3087", Count: 1},
	}
	if !reflect.DeepEqual(res.Items, want) {
		t.Errorf("got %+v\nwant %+v", res.Items, want)
	}
}

// Scenario D: an id the catalog lacks keeps its raw label.
func TestItemFrequency_PartialCatalog(t *testing.T) {
	d := full(itemRow("Sivir", 3031, 3006, 3006))
	namer := fakeNamer{3006: "Berserker's Greaves"}
	res, err := ItemFrequency(d, "Sivir", namer)
	if err != nil {
		t.Fatalf("ItemFrequency: %v", err)
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 items, got %+v", res.Items)
	}
	if res.Items[0].Label != "Berserker's Greaves" || !res.Items[0].Resolved {
		t.Errorf("resolved entry: %+v", res.Items[0])
	}
	if res.Items[1].Label != "3031" || res.Items[1].Resolved {
		t.Errorf("unresolved entry: %+v", res.Items[1])
	}
}

func TestItemFrequency_NotFound(t *testing.T) {
	res, err := ItemFrequency(full(itemRow("Jinx", 1001)), "Sivir", fakeNamer{})
	if err != nil {
		t.Fatalf("ItemFrequency: %v", err)
	}
	if res.Status != StatusNotFound || len(res.Items) != 0 {
		t.Errorf("want not found, got %+v", res)
	}
}

func TestItemFrequency_SameNameNotMerged(t *testing.T) {
	d := full(itemRow("Sivir", 2003, 2010))
	res, _ := ItemFrequency(d, "Sivir", fakeNamer{2003: "Potion", 2010: "Potion"})
	if len(res.Items) != 2 {
		t.Errorf("expected 2 separate entries, got %+v", res.Items)
	}
}

func TestNameItems_NilNamerNoop(t *testing.T) {
	items := []ItemCount{{ItemID: 1, Label: "1", Count: 1}}
	NameItems(items, nil)
	if items[0].Label != "1" || items[0].Resolved {
		t.Errorf("nil namer changed items: %+v", items)
	}
}

// ---- Summaries ----

func TestSummarize(t *testing.T) {
	a := row("Sivir", true, 4, 2, 6)
	a.GoldEarned = 11000
	b := row("Sivir", false, 2, 4, 4)
	b.GoldEarned = 9000
	c := row("Jinx", true, 1, 1, 1)
	res, err := Summarize(full(a, b, c), 2)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(res.Groups) != 1 {
		t.Fatalf("expected 1 group, got %+v", res.Groups)
	}
	want := GroupSummary{Champion: "Sivir", Games: 2, WinRate: 50, Kills: 3, Deaths: 3, Assists: 5, KDA: 2.67, MeanGold: 10000}
	if res.Groups[0] != want {
		t.Errorf("got %+v, want %+v", res.Groups[0], want)
	}
	if _, ok := res.Lookup("Jinx"); ok {
		t.Error("Jinx should not be eligible")
	}
}

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		92:           92,
		33.3333:      33.33,
		66.6666:      66.67,
		2.675 + 1e-9: 2.68,
		0:            0,
	}
	for in, want := range cases {
		if got := Round2(in); math.Abs(got-want) > 1e-12 {
			t.Errorf("Round2(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestHeadTail(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	if got := Head(s, 2); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("Head: %v", got)
	}
	if got := Tail(s, 2); !reflect.DeepEqual(got, []int{4, 5}) {
		t.Errorf("Tail: %v", got)
	}
	if got := Head(s, 10); len(got) != 5 {
		t.Errorf("Head overflow: %v", got)
	}
}
