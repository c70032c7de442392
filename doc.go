// Package mds is the root of a small toolkit for classic (Torgerson)
// multidimensional scaling: turning a table of pairwise distances into
// coordinates whose Euclidean distances reproduce it, and drawing them.
//
// 🚀 What is inside?
//
//	• Dense matrices & numeric kernels (double-centering, SVD)
//	• Classic MDS with typed validation and rank errors
//	• Distance builders: Euclidean from points, DTW from time series
//	• Scatter plots: SVG document or terminal grid
//	• A CLI: mds embed / mds plot
//
// Layout:
//
//	matrix/    Dense type, validators, statistics, SVD (gonum)
//	mds/       DistanceMatrix, Embedding, Classic, Embed, Stress
//	series/    dynamic time warping distances between sequences
//	plot/      node layout, SVG writer, text renderer
//	cmd/mds/   command-line front end
//	examples/  runnable programs
//
// Quick example, four corners of a unit square:
//
//	(0,1)───(1,1)
//	  │       │
//	(0,0)───(1,0)
//
// embedded from their 4×4 distance matrix, come back as the same square up
// to rotation, reflection and translation.
//
//	go get github.com/katalvlaran/mds/mds
package mds
