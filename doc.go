// Package tradecost computes cost basis and profit/loss for traded
// assets from a history of buy/sell fills, and converts multi-asset
// portfolios into a common reporting currency.
//
// The core functionalities include:
//   - Fill Aggregation: folding raw trade fills from one or more market
//     symbols of the same base asset into position totals (quantity
//     bought/sold, quote currency spent/received), deduplicated by fill
//     identifier so overlapping API pages never double count.
//   - PnL Engine: average-cost accounting over the aggregated totals,
//     splitting profit/loss into a realized part (matched buy/sell
//     volume priced at the spread between average entry and exit) and
//     an unrealized part (the open position marked to a current price).
//   - Currency Conversion: resolving exchange rates for a set of
//     symbol pairs (live source with a manual fallback) and applying
//     them to convert portfolio holdings into per-currency totals.
//
// All quantities and amounts are exact decimals; binary floating point
// is never used in a computation. This package is the foundational
// logic for the `tcs` command-line tool.
package tradecost
