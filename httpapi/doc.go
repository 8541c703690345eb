// Package httpapi serves circuit analysis over HTTP for lesson pages that
// grade drawings server-side.
//
// Routes:
//
//	POST /v1/analyze   schematic document in, verdict out
//	GET  /v1/schema    JSON Schema of the schematic document
//	GET  /v1/health    liveness
//	GET  /metrics      Prometheus metrics
//
// The analyze body may be JSON, YAML or TOML, chosen by Content-Type
// (JSON when absent). Feedback language comes from the "lang" query
// parameter, else Accept-Language, else the server default.
//
// Status codes: 200 for every verdict, valid or not; 400 for a body that
// cannot be read; 413 for oversized bodies in any format; 415 for
// unsupported content types; 422 for invalid schematics, including wires
// longer than Config.MaxWireLength; 503 when the analysis runs out of budget
// or time.
package httpapi
