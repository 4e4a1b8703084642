package coinfolio

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCreateSnapshot_Values(t *testing.T) {
	p := newTestPortfolio(t)
	seedAggregation(t, p)
	if _, err := p.AddSale("ETH", 2, 2000, "", "", ""); err != nil {
		t.Fatalf("AddSale: %v", err)
	}

	prices := map[string]float64{"BTC": 30000, "ETH": 2000}
	s, err := p.CreateSnapshot(prices, "monthly check")
	if err != nil {
		t.Fatalf("CreateSnapshot: %v", err)
	}

	// current balances: 1.5 BTC, 8 ETH (10 bought, 2 sold).
	// holdings: 1.5*30000 + 8*2000 = 61000; loans: 0.5*30000 = 15000.
	if s.HoldingsValue != 61000 {
		t.Errorf("HoldingsValue = %v, want 61000", s.HoldingsValue)
	}
	if s.LoansValue != 15000 {
		t.Errorf("LoansValue = %v, want 15000", s.LoansValue)
	}
	if s.NetValue != 46000 {
		t.Errorf("NetValue = %v, want 46000", s.NetValue)
	}
	if s.TotalInvested != 45000 {
		t.Errorf("TotalInvested = %v, want 45000", s.TotalInvested)
	}
	if s.TotalSold != 4000 {
		t.Errorf("TotalSold = %v, want 4000", s.TotalSold)
	}
	// profit = net - invested + sold = 46000 - 45000 + 4000.
	if s.ProfitLoss != 5000 {
		t.Errorf("ProfitLoss = %v, want 5000", s.ProfitLoss)
	}
	if want := 5000.0 / 45000 * 100; math.Abs(s.ProfitPercent-want) > 1e-9 {
		t.Errorf("ProfitPercent = %v, want %v", s.ProfitPercent, want)
	}
	if s.Note != "monthly check" {
		t.Errorf("Note = %q", s.Note)
	}
	if len(s.ID) != idLength {
		t.Errorf("ID = %q, want %d chars", s.ID, idLength)
	}
	if s.Timestamp.IsZero() {
		t.Error("Timestamp is zero")
	}

	btc, ok := s.CoinValues["BTC"]
	if !ok {
		t.Fatal("no BTC entry in CoinValues")
	}
	if btc.Amount != 1.5 || btc.Price != 30000 || btc.Value != 45000 {
		t.Errorf("BTC entry = %+v", btc)
	}
	if eth := s.CoinValues["ETH"]; eth.Amount != 8 || eth.Value != 16000 {
		t.Errorf("ETH entry = %+v", eth)
	}
}

// A fully-sold position contributes only its realized proceeds: it is not
// valued at spot on top of them, and it no longer demands a price.
func TestCreateSnapshot_FullySoldPosition(t *testing.T) {
	p := newTestPortfolio(t)
	if _, err := p.AddHolding("BTC", 1, 20000, "", "", ""); err != nil {
		t.Fatalf("AddHolding: %v", err)
	}
	if _, err := p.AddSale("BTC", 1, 25000, "", "", ""); err != nil {
		t.Fatalf("AddSale: %v", err)
	}

	s, err := p.CreateSnapshot(map[string]float64{}, "")
	if err != nil {
		t.Fatalf("CreateSnapshot: %v", err)
	}
	if s.HoldingsValue != 0 {
		t.Errorf("HoldingsValue = %v, want 0", s.HoldingsValue)
	}
	if s.NetValue != 0 {
		t.Errorf("NetValue = %v, want 0", s.NetValue)
	}
	// profit = 0 - 20000 + 25000: the realized gain and nothing else.
	if s.ProfitLoss != 5000 {
		t.Errorf("ProfitLoss = %v, want 5000", s.ProfitLoss)
	}
	if len(s.CoinValues) != 0 {
		t.Errorf("CoinValues = %v, want empty", s.CoinValues)
	}
}

func TestCreateSnapshot_MissingPrices(t *testing.T) {
	p := newTestPortfolio(t)
	seedAggregation(t, p)
	if _, err := p.AddLoan("SOL", 5, "binance", nil, "", ""); err != nil {
		t.Fatalf("AddLoan: %v", err)
	}

	_, err := p.CreateSnapshot(map[string]float64{"BTC": 30000}, "")
	if err == nil {
		t.Fatal("missing prices did not fail")
	}
	// Both missing coins are named, in sorted order.
	if !strings.Contains(err.Error(), "ETH SOL") {
		t.Errorf("error = %q, want the missing coins listed", err)
	}
}

func TestCreateSnapshot_ZeroInvested(t *testing.T) {
	p := newTestPortfolio(t)
	s, err := p.CreateSnapshot(map[string]float64{}, "")
	if err != nil {
		t.Fatalf("CreateSnapshot: %v", err)
	}
	if s.ProfitPercent != 0 {
		t.Errorf("ProfitPercent = %v on an empty portfolio", s.ProfitPercent)
	}
}

func TestCompareSnapshots(t *testing.T) {
	older := Snapshot{
		NetValue:   50000,
		ProfitLoss: 5000,
		CoinValues: map[string]CoinSnapshot{
			"BTC": {Amount: 1.5, Price: 30000, Value: 45000},
			"ETH": {Amount: 10, Price: 1500, Value: 15000},
		},
	}
	newer := Snapshot{
		NetValue:   60000,
		ProfitLoss: 15000,
		CoinValues: map[string]CoinSnapshot{
			"BTC": {Amount: 1.5, Price: 40000, Value: 60000},
			"SOL": {Amount: 20, Price: 100, Value: 2000},
		},
	}

	c := CompareSnapshots(older, newer)
	if c.NetValueChange != 10000 {
		t.Errorf("NetValueChange = %v, want 10000", c.NetValueChange)
	}
	if c.NetValuePercent != 20 {
		t.Errorf("NetValuePercent = %v, want 20", c.NetValuePercent)
	}
	if c.ProfitLossChange != 10000 {
		t.Errorf("ProfitLossChange = %v, want 10000", c.ProfitLossChange)
	}

	// Union of coins: one kept, one dropped, one added.
	if len(c.CoinChanges) != 3 {
		t.Fatalf("CoinChanges has %d coins, want 3", len(c.CoinChanges))
	}
	if btc := c.CoinChanges["BTC"]; btc.ValueChange != 15000 {
		t.Errorf("BTC ValueChange = %v, want 15000", btc.ValueChange)
	}
	if eth := c.CoinChanges["ETH"]; eth.NewValue != 0 || eth.ValueChange != -15000 {
		t.Errorf("ETH change = %+v", eth)
	}
	if sol := c.CoinChanges["SOL"]; sol.OldValue != 0 || sol.ValueChange != 2000 {
		t.Errorf("SOL change = %+v", sol)
	}
}

func TestCompareSnapshots_ZeroOlderNet(t *testing.T) {
	c := CompareSnapshots(Snapshot{}, Snapshot{NetValue: 100})
	if c.NetValuePercent != 0 {
		t.Errorf("NetValuePercent = %v with a zero baseline", c.NetValuePercent)
	}
}

func newTestSnapshotStore(t *testing.T) *SnapshotStore {
	t.Helper()
	ss, err := OpenSnapshotStore(filepath.Join(t.TempDir(), "snapshots.json"))
	if err != nil {
		t.Fatalf("OpenSnapshotStore: %v", err)
	}
	return ss
}

func TestSnapshotStore_EmptyFile(t *testing.T) {
	ss := newTestSnapshotStore(t)
	list, err := ss.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("fresh store lists %d snapshots", len(list))
	}
	n, err := ss.Count()
	if err != nil || n != 0 {
		t.Errorf("Count = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSnapshotStore_AddListNewestFirst(t *testing.T) {
	ss := newTestSnapshotStore(t)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"aaaaaaaa", "bbbbbbbb", "cccccccc"} {
		err := ss.Add(Snapshot{ID: id, Timestamp: base.Add(time.Duration(i) * time.Hour)})
		if err != nil {
			t.Fatalf("Add(%s): %v", id, err)
		}
	}

	list, err := ss.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var ids []string
	for _, s := range list {
		ids = append(ids, s.ID)
	}
	if want := []string{"cccccccc", "bbbbbbbb", "aaaaaaaa"}; !equalStrings(ids, want) {
		t.Errorf("List order = %v, want %v", ids, want)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSnapshotStore_GetAndRemove(t *testing.T) {
	ss := newTestSnapshotStore(t)
	if err := ss.Add(Snapshot{ID: "deadbeef", Timestamp: time.Now(), NetValue: 42}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	s, found, err := ss.Get("deadbeef")
	if err != nil || !found {
		t.Fatalf("Get = (_, %v, %v), want found", found, err)
	}
	if s.NetValue != 42 {
		t.Errorf("NetValue = %v, want 42", s.NetValue)
	}

	_, found, err = ss.Get("unknown0")
	if err != nil || found {
		t.Errorf("Get unknown id = (_, %v, %v), want (false, nil)", found, err)
	}

	removed, err := ss.Remove("deadbeef")
	if err != nil || !removed {
		t.Fatalf("Remove = (%v, %v), want (true, nil)", removed, err)
	}
	removed, err = ss.Remove("deadbeef")
	if err != nil || removed {
		t.Errorf("second Remove = (%v, %v), want (false, nil)", removed, err)
	}
}

func TestSnapshotStore_PersistenceAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.json")
	ss, err := OpenSnapshotStore(path)
	if err != nil {
		t.Fatalf("OpenSnapshotStore: %v", err)
	}
	if err := ss.Add(Snapshot{ID: "cafecafe", Timestamp: time.Now()}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	reopened, err := OpenSnapshotStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	n, err := reopened.Count()
	if err != nil || n != 1 {
		t.Errorf("Count after reopen = (%d, %v), want (1, nil)", n, err)
	}
}
