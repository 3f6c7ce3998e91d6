// Package render produces node-link diagrams of schema trees and
// relationship graphs.
//
// # Overview
//
// [TreeDOT] and [GraphDOT] emit Graphviz DOT source; [SVG] renders DOT to an
// SVG in-process. Tree edges are unlabelled parent→child arrows; graph edges
// carry their relationship symbol ("one_to_many", ...) as the edge label.
//
//	dot := render.GraphDOT(g, render.Options{})
//	svg, err := render.SVG(dot)
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with rounded box
// nodes. It can also be saved and processed with external Graphviz tools or
// customized before rendering.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no external graphviz installation is required.
package render
