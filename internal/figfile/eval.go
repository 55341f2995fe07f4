package figfile

import (
	"errors"
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

var matrixType = cty.List(cty.List(cty.Number))

// evalContext returns the functions and constants available to every
// expression in a figure file.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"pi": cty.NumberFloatVal(math.Pi),
			"e":  cty.NumberFloatVal(math.E),
		},
		Functions: map[string]function.Function{
			"abs":   stdlib.AbsoluteFunc,
			"ceil":  stdlib.CeilFunc,
			"floor": stdlib.FloorFunc,
			"log":   stdlib.LogFunc,
			"pow":   stdlib.PowFunc,
			"max":   stdlib.MaxFunc,
			"min":   stdlib.MinFunc,
			"sign":  stdlib.SignumFunc,
			"sqrt":  mathFunc(math.Sqrt),
			"exp":   mathFunc(math.Exp),
			"sin":   mathFunc(math.Sin),
			"cos":   mathFunc(math.Cos),
			"tan":   mathFunc(math.Tan),
		},
	}
}

// mathFunc wraps a float64 function of one argument as a cty function.
func mathFunc(f func(float64) float64) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "num", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			v, _ := args[0].AsBigFloat().Float64()
			r := f(v)
			if math.IsNaN(r) {
				return cty.UnknownVal(cty.Number), errors.New("result is not a number")
			}
			return cty.NumberFloatVal(r), nil
		},
	})
}

// meshgrid returns the node coordinates of g as two NY x NX matrices.
func meshgrid(g *Grid) (x, y [][]float64, err error) {
	if g.NX < 2 || g.NY < 2 {
		return nil, nil, fmt.Errorf("grid needs at least 2 nodes per direction, got %dx%d", g.NX, g.NY)
	}
	dx := (g.XMax - g.XMin) / float64(g.NX-1)
	dy := (g.YMax - g.YMin) / float64(g.NY-1)
	x = make([][]float64, g.NY)
	y = make([][]float64, g.NY)
	for i := 0; i < g.NY; i++ {
		x[i] = make([]float64, g.NX)
		y[i] = make([]float64, g.NX)
		for j := 0; j < g.NX; j++ {
			x[i][j] = g.XMin + float64(j)*dx
			y[i][j] = g.YMin + float64(i)*dy
		}
	}
	return x, y, nil
}

// evalOnGrid evaluates expr at every node of (x, y).
func evalOnGrid(expr hcl.Expression, x, y [][]float64) ([][]float64, error) {
	ctx := evalContext().NewChild()
	z := make([][]float64, len(x))
	for i := range x {
		z[i] = make([]float64, len(x[i]))
		for j := range x[i] {
			ctx.Variables = map[string]cty.Value{
				"x": cty.NumberFloatVal(x[i][j]),
				"y": cty.NumberFloatVal(y[i][j]),
			}
			v, diags := expr.Value(ctx)
			if diags.HasErrors() {
				return nil, diags
			}
			f, err := toFloat(v)
			if err != nil {
				return nil, fmt.Errorf("at x=%g y=%g: %w", x[i][j], y[i][j], err)
			}
			z[i][j] = f
		}
	}
	return z, nil
}

// evalMatrix evaluates expr as a literal matrix.
func evalMatrix(expr hcl.Expression) ([][]float64, error) {
	v, diags := expr.Value(evalContext())
	if diags.HasErrors() {
		return nil, diags
	}
	v, err := convert.Convert(v, matrixType)
	if err != nil {
		return nil, fmt.Errorf("z must be a matrix of numbers: %w", err)
	}
	if !v.IsWhollyKnown() || v.IsNull() {
		return nil, errors.New("z must be a known matrix")
	}
	var rows [][]float64
	if err := gocty.FromCtyValue(v, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func toFloat(v cty.Value) (float64, error) {
	v, err := convert.Convert(v, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("z must be a number: %w", err)
	}
	if v.IsNull() || !v.IsKnown() {
		return 0, errors.New("z must be a known number")
	}
	var f float64
	if err := gocty.FromCtyValue(v, &f); err != nil {
		return 0, err
	}
	return f, nil
}
