// Package tensor provides the dense numeric matrix layer shared by all graph
// converters, together with the device-placement and numeric-width policy
// parameters threaded through every extraction call.
//
// Matrices wrap gonum's mat.Dense and carry two tags:
//
//   - Device is the placement target. Only the CPU backend is compiled in;
//     DeviceAuto resolves to DeviceCPU, and DeviceAccelerator fails fast with
//     ErrBackendUnavailable before any data is processed.
//   - DType is the numeric width. Float32 matrices store float64 internally
//     but truncate every ingested value to float32 precision, so exported
//     values are bit-identical to a true single-precision pipeline.
//
// Zero-width matrices are first-class: Zeros(n, 0, ...) is a real object with
// n rows and no columns, never nil. Downstream code can therefore treat "no
// features" uniformly with "some features".
//
// All matrices produced within one conversion call share a single resolved
// device; the converters validate this eagerly.
package tensor
