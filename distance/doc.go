// Package distance provides the squared Euclidean distance between 3D points.
//
// Squared distances preserve the order of Euclidean distances, so nearest
// point searches compare them directly and never take a square root.
//
// # Usage
//
//	d2 := distance.Squared3(q, p)
package distance
