package coinfolio

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"
)

// newTestPriceService points a service at a stub API that serves the given
// id to price table, counting requests.
func newTestPriceService(t *testing.T, table map[string]float64, hits *int, opts ...PriceOption) *PriceService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		if r.URL.Path != "/simple/price" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("vs_currencies") != "usd" {
			http.Error(w, "missing vs_currencies", http.StatusBadRequest)
			return
		}
		var parts []string
		for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
			if price, ok := table[id]; ok {
				parts = append(parts, fmt.Sprintf("%q:{\"usd\":%g}", id, price))
			}
		}
		fmt.Fprintf(w, "{%s}", strings.Join(parts, ","))
	}))
	t.Cleanup(srv.Close)

	opts = append([]PriceOption{
		WithBaseURL(srv.URL),
		WithRateLimit(0),
	}, opts...)
	return NewPriceService(opts...)
}

func TestPriceService_Prices(t *testing.T) {
	ps := newTestPriceService(t, map[string]float64{
		"bitcoin":  65000.5,
		"ethereum": 3500,
	}, nil)

	prices, err := ps.Prices([]string{"btc", "ETH"})
	if err != nil {
		t.Fatalf("Prices: %v", err)
	}
	if want := map[string]float64{"BTC": 65000.5, "ETH": 3500}; !reflect.DeepEqual(prices, want) {
		t.Errorf("Prices() = %v, want %v", prices, want)
	}
}

func TestPriceService_Price(t *testing.T) {
	ps := newTestPriceService(t, map[string]float64{"solana": 150}, nil)
	price, err := ps.Price("sol")
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if price != 150 {
		t.Errorf("Price(sol) = %v, want 150", price)
	}
}

func TestPriceService_UnknownSymbols(t *testing.T) {
	ps := newTestPriceService(t, nil, nil)
	_, err := ps.Prices([]string{"BTC", "wat", "huh"})
	if err == nil {
		t.Fatal("unknown symbols did not fail")
	}
	if !strings.Contains(err.Error(), "HUH WAT") {
		t.Errorf("error = %q, want the unknown symbols listed", err)
	}
}

func TestPriceService_Cache(t *testing.T) {
	var hits int
	ps := newTestPriceService(t, map[string]float64{"bitcoin": 65000}, &hits)

	for i := 0; i < 3; i++ {
		if _, err := ps.Price("BTC"); err != nil {
			t.Fatalf("Price #%d: %v", i, err)
		}
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1 (cache)", hits)
	}
}

func TestPriceService_CacheExpiry(t *testing.T) {
	var hits int
	ps := newTestPriceService(t, map[string]float64{"bitcoin": 65000}, &hits,
		WithCacheTTL(time.Nanosecond))

	if _, err := ps.Price("BTC"); err != nil {
		t.Fatalf("Price: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, err := ps.Price("BTC"); err != nil {
		t.Fatalf("Price after expiry: %v", err)
	}
	if hits != 2 {
		t.Errorf("server hit %d times, want 2 (expired cache)", hits)
	}
}

func TestPriceService_CustomMappings(t *testing.T) {
	ps := newTestPriceService(t, map[string]float64{"my-custom-token": 0.5}, nil,
		WithCoinMappings(map[string]string{"mct": "my-custom-token"}))

	if id, ok := ps.CoinID("MCT"); !ok || id != "my-custom-token" {
		t.Fatalf("CoinID(MCT) = (%q, %v)", id, ok)
	}
	price, err := ps.Price("MCT")
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if price != 0.5 {
		t.Errorf("Price(MCT) = %v, want 0.5", price)
	}
}

func TestPriceService_MappingOverridesBuiltin(t *testing.T) {
	ps := NewPriceService(WithCoinMappings(map[string]string{"BTC": "not-bitcoin"}))
	if id, _ := ps.CoinID("BTC"); id != "not-bitcoin" {
		t.Errorf("CoinID(BTC) = %q, want the override", id)
	}
	// The package-level table is untouched.
	if coinIDs["BTC"] != "bitcoin" {
		t.Errorf("built-in table mutated: BTC = %q", coinIDs["BTC"])
	}
}

func TestPriceService_MissingPriceInResponse(t *testing.T) {
	// Server knows bitcoin but the response omits ethereum.
	ps := newTestPriceService(t, map[string]float64{"bitcoin": 65000}, nil)
	_, err := ps.Prices([]string{"BTC", "ETH"})
	if err == nil {
		t.Fatal("missing price in response did not fail")
	}
	if !strings.Contains(err.Error(), "ETH") {
		t.Errorf("error = %q, want the symbol named", err)
	}
}

func TestPriceService_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	ps := NewPriceService(WithBaseURL(srv.URL), WithRateLimit(0))
	if _, err := ps.Price("BTC"); err == nil {
		t.Fatal("server error did not fail")
	}
}
