// Package wiregl is a minimal software wireframe renderer.
//
// It holds a fixed set of polyhedra (cube, pyramid, octahedron), transforms
// their vertices through a rotation + perspective pipeline and draws the
// edges with an integer Bresenham rasterizer into a caller-provided Target.
//
// Pipeline (fixed):
//
//	Mesh → Rotation → View offset → Projection → NDC → Screen → Rasterization.
//
// The renderer is a pure function of (shape, angle, target): it keeps no
// animation or selection state of its own, does not allocate in the render
// hot path, and never blocks. There is no depth buffer, no lighting and no
// hidden-line removal; the last write at a pixel wins.
//
// All operations are total over well-formed inputs. The only latent failure
// mode is numeric degeneracy in the projection when the frustum parameters
// are invalid; that is a caller precondition, not a checked error.
package wiregl
