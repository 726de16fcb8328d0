// Package noise provides the scalar-field sources for texture generation.
//
// Each source implements the [Source] interface, producing a fully
// materialized field for a given grid:
//
//   - [Perlin]: gradient-interpolated lattice noise, smooth and continuous
//   - [Voronoi]: nearest-seed-point distance noise, sharp cell boundaries
//
// Sources draw every random decision (permutation tables, seed points)
// from the *rand.Rand passed to Generate, so identical seeds reproduce
// identical fields.
//
// # Edge policy
//
// Perlin noise wraps its gradient lattice modulo 256, so lattice indexing
// never special-cases the grid boundary. Voronoi distances are computed
// against seed points inside the grid bounds only; the field is not tiled.
//
// # Output range
//
// Both sources min-max normalize their raw output, so every generated
// field lies in [0,1].
package noise
