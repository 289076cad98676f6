// Package mcp defines the canonical, transport-agnostic representation of
// MCP server entries.
//
// Config builders render client-specific shapes (each client dialect has its
// own root key, discriminant values, and property names); the normalization
// layer maps those shapes back to [ServerRecord] so callers can merge and
// round-trip configs without caring which client wrote them.
package mcp
