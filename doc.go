// Package b3analyzer normalizes B3 brokerage statement extracts into a
// canonical transaction record, classifies movements by asset class, and
// builds the aggregated report tables consumed by the command-line tool.
//
// The core functionalities include:
//   - Statement ingestion: reading one or more xlsx extracts sharing the B3
//     header schema and concatenating them into a single row set.
//   - Canonicalization: deriving ticker, description and calendar attributes
//     from the raw columns, and sorting the result chronologically.
//   - Asset classifiers: independent filters selecting equities, real-estate
//     funds, depositary receipts, futures and income movements.
//   - Aggregation: dense period/ticker/type pivot tables with Total and
//     Média columns, plus futures point-value scaling and the inflow/outflow
//     split.
//   - Average cost: a sequential reconstruction of position size and cost
//     basis per asset, covering custody transfers and corporate actions.
//
// This package serves as the foundational logic for the `b3an` command-line
// tool. All computations are in-memory and recomputed on demand; nothing is
// persisted between sessions.
package b3analyzer
