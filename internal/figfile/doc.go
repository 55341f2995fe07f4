// Package figfile loads figure description files written in HCL and turns
// them into plotpy plots.
//
// A file holds at most one figure block with figure-wide settings and any
// number of contour blocks:
//
//	figure {
//	  output = "bowl.png"
//	  equal  = true
//	  range  = [-1, 1, -1, 1]
//	  xlabel = "x"
//	  ylabel = "y"
//	  grid   = true
//	}
//
//	contour "bowl" {
//	  levels = [0.25, 0.5, 1]
//	  grid {
//	    xmin = -1
//	    xmax = 1
//	    nx   = 21
//	    ymin = -1
//	    ymax = 1
//	    ny   = 21
//	  }
//	  z = x*x + y*y
//	}
//
// With a grid block, z is an expression evaluated at every node with x and
// y bound to the node coordinates. Without one, x, y and z are literal
// matrices of equal shape.
//
// Figure block directives are written after every contour, so with
// subplots they act on the last panel only. Each contour block accepts
// its own equal, range and title, applied to its panel right after it is
// drawn.
package figfile
