package coinfolio

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// defaultBaseURL is the CoinGecko public API.
const defaultBaseURL = "https://api.coingecko.com/api/v3"

// Free tier allows roughly 30 requests per minute.
const defaultMinInterval = 2 * time.Second

const defaultCacheTTL = 2 * time.Minute

// coinIDs maps common coin symbols to their CoinGecko identifiers. Symbols
// not listed here can be mapped through WithCoinMappings (the config store
// feeds user-defined mappings in).
var coinIDs = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"USDT":  "tether",
	"USDC":  "usd-coin",
	"BNB":   "binancecoin",
	"XRP":   "ripple",
	"ADA":   "cardano",
	"DOGE":  "dogecoin",
	"SOL":   "solana",
	"DOT":   "polkadot",
	"MATIC": "matic-network",
	"LTC":   "litecoin",
	"SHIB":  "shiba-inu",
	"TRX":   "tron",
	"AVAX":  "avalanche-2",
	"LINK":  "chainlink",
	"ATOM":  "cosmos",
	"UNI":   "uniswap",
	"XLM":   "stellar",
	"ETC":   "ethereum-classic",
	"ALGO":  "algorand",
	"NEAR":  "near",
	"APE":   "apecoin",
	"MANA":  "decentraland",
	"SAND":  "the-sandbox",
	"AAVE":  "aave",
	"MKR":   "maker",
	"COMP":  "compound-governance-token",
	"XMR":   "monero",
	"EOS":   "eos",
	"XTZ":   "tezos",
	"VET":   "vechain",
	"FIL":   "filecoin",
	"ICP":   "internet-computer",
	"HBAR":  "hedera-hashgraph",
	"FLOW":  "flow",
	"QNT":   "quant-network",
	"ARB":   "arbitrum",
	"OP":    "optimism",
	"APT":   "aptos",
	"SUI":   "sui",
	"GRT":   "the-graph",
	"LDO":   "lido-dao",
	"PEPE":  "pepe",
	"TIA":   "celestia",
}

type cachedPrice struct {
	price     float64
	fetchedAt time.Time
}

// PriceService fetches spot USD prices for coins.
type PriceService struct {
	client      *http.Client
	baseURL     string
	coinIDs     map[string]string
	cache       map[string]cachedPrice
	cacheTTL    time.Duration
	minInterval time.Duration
	lastRequest time.Time
}

// PriceOption configures a PriceService.
type PriceOption func(*PriceService)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) PriceOption {
	return func(ps *PriceService) { ps.client = client }
}

// WithBaseURL points the service at a different API endpoint.
func WithBaseURL(base string) PriceOption {
	return func(ps *PriceService) { ps.baseURL = strings.TrimSuffix(base, "/") }
}

// WithCacheTTL sets how long a fetched price is reused.
func WithCacheTTL(ttl time.Duration) PriceOption {
	return func(ps *PriceService) { ps.cacheTTL = ttl }
}

// WithRateLimit sets the minimum interval between API requests.
func WithRateLimit(interval time.Duration) PriceOption {
	return func(ps *PriceService) { ps.minInterval = interval }
}

// WithCoinMappings adds symbol to CoinGecko id mappings, overriding the
// built-in table where they clash.
func WithCoinMappings(mappings map[string]string) PriceOption {
	return func(ps *PriceService) {
		for symbol, id := range mappings {
			ps.coinIDs[normalizeCoin(symbol)] = id
		}
	}
}

// NewPriceService creates a price service with the built-in symbol table.
func NewPriceService(opts ...PriceOption) *PriceService {
	ps := &PriceService{
		client:      &http.Client{Timeout: defaultHTTPTimeout},
		baseURL:     defaultBaseURL,
		coinIDs:     make(map[string]string, len(coinIDs)),
		cache:       make(map[string]cachedPrice),
		cacheTTL:    defaultCacheTTL,
		minInterval: defaultMinInterval,
	}
	for symbol, id := range coinIDs {
		ps.coinIDs[symbol] = id
	}
	for _, opt := range opts {
		opt(ps)
	}
	return ps
}

// CoinID returns the CoinGecko id for a symbol, and whether it is known.
func (ps *PriceService) CoinID(symbol string) (string, bool) {
	id, ok := ps.coinIDs[normalizeCoin(symbol)]
	return id, ok
}

// Price returns the spot USD price for a single coin symbol.
func (ps *PriceService) Price(symbol string) (float64, error) {
	prices, err := ps.Prices([]string{symbol})
	if err != nil {
		return 0, err
	}
	return prices[normalizeCoin(symbol)], nil
}

// Prices returns spot USD prices for the given coin symbols in one request.
// Unknown symbols are an error, not a guess.
func (ps *PriceService) Prices(symbols []string) (map[string]float64, error) {
	prices := make(map[string]float64, len(symbols))

	// resolve symbols, serving fresh cache entries directly
	ids := make([]string, 0, len(symbols))
	idToSymbol := make(map[string]string, len(symbols))
	var unknown []string
	for _, symbol := range symbols {
		symbol = normalizeCoin(symbol)
		if c, ok := ps.cache[symbol]; ok && time.Since(c.fetchedAt) < ps.cacheTTL {
			prices[symbol] = c.price
			continue
		}
		id, ok := ps.coinIDs[symbol]
		if !ok {
			unknown = append(unknown, symbol)
			continue
		}
		ids = append(ids, id)
		idToSymbol[id] = symbol
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown coin symbols %v: add a mapping with the config command", unknown)
	}
	if len(ids) == 0 {
		return prices, nil
	}

	ps.throttle()

	sort.Strings(ids)
	addr := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd",
		ps.baseURL, url.QueryEscape(strings.Join(ids, ",")))

	var jobj interface{}
	if err := jwget(ps.client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("fetching prices: %w", err)
	}

	for _, id := range ids {
		symbol := idToSymbol[id]
		jval, err := jsonpath.Get(fmt.Sprintf("$[%q].usd", id), jobj)
		if err != nil {
			return nil, fmt.Errorf("no USD price for %s (%s) in response: %w", symbol, id, err)
		}
		price, ok := jval.(float64)
		if !ok {
			return nil, fmt.Errorf("price for %s (%s) is not a number: %v", symbol, id, jval)
		}
		prices[symbol] = price
		ps.cache[symbol] = cachedPrice{price: price, fetchedAt: time.Now()}
	}
	return prices, nil
}

// throttle waits until the minimum interval since the last request elapsed.
func (ps *PriceService) throttle() {
	if wait := ps.minInterval - time.Since(ps.lastRequest); wait > 0 {
		time.Sleep(wait)
	}
	ps.lastRequest = time.Now()
}
