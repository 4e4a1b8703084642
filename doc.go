// Package coinfolio provides the types and services backing a personal
// cryptocurrency record book. It is designed to be local-first and
// transparent: everything lives in plain JSON files the user owns and can
// inspect.
//
// The core functionalities include:
//   - Record Keeping: Recording coin purchases (holdings), sales, loans and
//     stakes, each identified by a short unique id and kept in insertion
//     order.
//   - Data Persistence: A stateless Store that reads and rewrites the whole
//     JSON document on every operation, so the file on disk is always the
//     single source of truth.
//   - Portfolio Service: Per-coin aggregations (holdings, loans, sales,
//     stakes, net and available balances), invested and sold totals, and
//     the summary bundles consumed by presentation layers.
//   - Snapshots: Point-in-time valuations of the portfolio at given prices,
//     persisted separately and comparable over time.
//   - Live Prices: A CoinGecko-backed price service with symbol mappings,
//     caching and rate limiting.
//   - Configuration: User preferences and custom ticker mappings in their
//     own JSON file.
//
// This package serves as the foundational logic for the `cfo` command-line
// tool.
package coinfolio
