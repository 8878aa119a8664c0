// Package export serializes graphs for external renderers.
//
// The core makes no layout decisions; a renderer receives node and edge
// lists, metrics, and optional highlight paths, and decides positions,
// colors, and shapes itself. Two formats are provided:
//
//   - DOT: Graphviz text (undirected `graph`), with hypercube binary labels
//     and an optional highlighted path rendered as colored, thickened edges.
//   - JSON: a stable {nodes, edges, metrics} document for browser-side
//     renderers.
//
// Output is deterministic: nodes in ID order, edges in insertion order.
package export
