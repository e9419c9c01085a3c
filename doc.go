// Package apvd builds area-proportional Venn diagrams.
//
// Given N planar shapes (circles, axis-aligned ellipses, rotated ellipses,
// simple polygons) and a map from region keys to target areas, apvd
// iteratively perturbs the shapes so that the actual area of every region
// matches its target as closely as possible.
//
// The package is organized the way detour/recast are: a flat set of
// arena-backed, index-linked types (Node, Edge, Component, Region) built
// once per Scene and queried for the lifetime of one optimization Step.
// Two companion packages layer on top of it: optim (gradient-descent,
// Adam, clipped and "robust" optimizers) and trace (tiered keyframe
// index + replay reconstruction). cmd/apvd is a thin Cobra front end.
package apvd
