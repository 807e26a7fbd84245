// Package sink turns computed circular layouts into output artifacts:
// SVG documents, PNG rasters, and a JSON form of the layout itself.
// Sinks only serialize; all geometry decisions happen in the layout
// package, so every format draws the identical map.
package sink
