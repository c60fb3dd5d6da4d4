// Package geograph converts spatial tabular records into typed, tensorized
// graph objects and back, without losing the metadata needed to reverse
// the trip.
//
// 🚀 What is geograph?
//
//	A conversion library that brings together:
//		• Tables: column-oriented records with optional geometry & multi-level row index
//		• Tensors: dense numeric matrices with device & dtype policy tags
//		• Converters: homogeneous and heterogeneous graph assembly & inversion
//		• Network bridge: gonum-backed attributed networks for analysis algorithms
//
// ✨ Why choose geograph?
//
//   - Faithful round trips – identifiers, column names, row order and
//     geometry survive conversion in both directions
//   - Predictable failure modes – invalid arguments fail fast, dirty data
//     degrades softly (dropped edges, zero-width matrices)
//   - Typed heterogeneity – per-type identifier spaces, never a shared one
//
// Everything is organized under four subpackages:
//
//	geotable/  — the tabular input/output model: Table, Index, geometry, CRS
//	tensor/    — dense matrices plus Device and DType policy parameters
//	graphconv/ — ToGraph/ToHeteroGraph, FromGraph/FromHeteroGraph, Describe
//	netbridge/ — ToNetwork/FromNetwork over gonum's graph interfaces
//
// Quick ASCII example:
//
//	   station table          link table           graph
//	   a (0,0) cap=10         a → b len=1          0 ──> 1
//	   b (1,0) cap=20    +    b → c len=2     =    1 ──> 2
//	   c (0,1) cap=30         c → a len=3          2 ──> 0
//
// Dive into the per-package docs for the detection rules, metadata layout
// and round-trip guarantees.
package geograph
