// Package models contains the public data structures used by the tool
// library. These types are intentionally small and decoupled from
// internal representations so that they can remain stable for external
// consumers.
//
// The main entry points are:
//
//   - LLMTool, Specification, InputSchema, ParameterObject: types that
//     describe and carry calls to LLM tools, and that are compatible
//     with Model Context Protocol (MCP) style schemas.
//   - Call, Input: one requested tool invocation and its arguments.
//
// These types are designed to be serializable (where appropriate) and
// safe to pass across package boundaries without leaking internal
// implementation details.
package models
