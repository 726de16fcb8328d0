// Package field provides the core scalar-field primitives for texture
// generation.
//
// The package defines the fundamental type shared by every pipeline stage:
//
//   - [Field]: a W×H grid of real-valued samples, row-major
//
// Fields are produced fully materialized by a noise source, handed forward
// through compositing and color mapping, and never partially computed. All
// stages that consume two fields require identical grid dimensions.
//
// # Example
//
//	f, _ := field.New(64, 64)
//	f.Set(3, 4, 0.5)
//	f.Normalize()
package field
