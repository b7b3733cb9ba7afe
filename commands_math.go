package main

import (
	"math"
)

var mathCommands = map[string]command{
	"+":      binary(func(a, b float64) float64 { return a + b }),
	"+_":     reduceAll(func(a, b float64) float64 { return a + b }),
	"++":     unary(func(a float64) float64 { return a + 1 }),
	"-":      binary(func(a, b float64) float64 { return a - b }),
	"--":     unary(func(a float64) float64 { return a - 1 }),
	"x":      binary(func(a, b float64) float64 { return a * b }),
	"x_":     reduceAll(func(a, b float64) float64 { return a * b }),
	"/":      binary(func(a, b float64) float64 { return a / b }),
	"chs":    unary(func(a float64) float64 { return -a }),
	"abs":    unary(math.Abs),
	"round":  unary(math.Round),
	"int":    unary(math.Round),
	"inv":    unary(func(a float64) float64 { return 1 / a }),
	"sqrt":   unary(math.Sqrt),
	"throot": binary(func(a, b float64) float64 { return math.Pow(a, 1/b) }),
	"proot":  cmdPrincipalRoots,
	"^":      binary(math.Pow),
	"exp":    binary(math.Pow),
	"%":      binary(math.Mod),
	"mod":    binary(math.Mod),
	"!":      unary(factorial),
	"gcd":    cmdGCD,
	"min":    binary(math.Min),
	"min_":   cmdMinAll,
	"max":    binary(math.Max),
	"max_":   cmdMaxAll,
	"avg":    binary(func(a, b float64) float64 { return (a + b) / 2 }),
	"avg_":   cmdAvgAll,
	"rand":   cmdRand,

	"pi": constant(math.Pi),
	"e":  constant(math.E),
	"g":  constant(9.80665),

	"deg_rad": unary(func(a float64) float64 { return a * math.Pi / 180 }),
	"rad_deg": unary(func(a float64) float64 { return a * 180 / math.Pi }),
	"sin":     unary(math.Sin),
	"asin":    unary(math.Asin),
	"cos":     unary(math.Cos),
	"acos":    unary(math.Acos),
	"tan":     unary(math.Tan),
	"atan":    unary(math.Atan),
	"log":     unary(math.Log10),
	"log10":   unary(math.Log10),
	"log2":    unary(math.Log2),
	"logn":    binary(func(a, b float64) float64 { return math.Log(a) / math.Log(b) }),
	"ln":      unary(math.Log),
}

func constant(val float64) command {
	return func(in *Interpreter, op string) {
		in.pushFloat(val)
	}
}

func unary(fn func(a float64) float64) command {
	return func(in *Interpreter, op string) {
		in.checkDepth(1, op)
		in.pushFloat(fn(in.popFloat(op)))
	}
}

// binary pops b then a, pushing fn(a, b).
func binary(fn func(a, b float64) float64) command {
	return func(in *Interpreter, op string) {
		in.checkDepth(2, op)
		b := in.popFloat(op)
		a := in.popFloat(op)
		in.pushFloat(fn(a, b))
	}
}

// reduceAll combines the whole stack into one value, top first; a stack of
// fewer than two values is left alone.
func reduceAll(fn func(a, b float64) float64) command {
	return func(in *Interpreter, op string) {
		for len(in.stack) > 1 {
			b := in.popFloat(op)
			a := in.popFloat(op)
			in.pushFloat(fn(a, b))
		}
	}
}

func cmdMinAll(in *Interpreter, op string) {
	in.checkDepth(1, op)
	m := math.Inf(1)
	for len(in.stack) > 0 {
		m = math.Min(m, in.popFloat(op))
	}
	in.pushFloat(m)
}

func cmdMaxAll(in *Interpreter, op string) {
	in.checkDepth(1, op)
	m := math.Inf(-1)
	for len(in.stack) > 0 {
		m = math.Max(m, in.popFloat(op))
	}
	in.pushFloat(m)
}

func cmdAvgAll(in *Interpreter, op string) {
	in.checkDepth(1, op)
	n := len(in.stack)
	var sum float64
	for len(in.stack) > 0 {
		sum += in.popFloat(op)
	}
	in.pushFloat(sum / float64(n))
}

// a b c proot pushes the two roots of ax^2 + bx + c as real and imaginary
// part pairs.
func cmdPrincipalRoots(in *Interpreter, op string) {
	in.checkDepth(3, op)
	c := in.popFloat(op)
	b := in.popFloat(op)
	a := in.popFloat(op)

	re := -b / (2 * a)
	if d := b*b - 4*a*c; d < 0 {
		im := math.Sqrt(-d) / (2 * a)
		in.pushFloat(re)
		in.pushFloat(im)
		in.pushFloat(re)
		in.pushFloat(-im)
	} else {
		delta := math.Sqrt(d) / (2 * a)
		in.pushFloat(re + delta)
		in.pushFloat(0)
		in.pushFloat(re - delta)
		in.pushFloat(0)
	}
}

func cmdGCD(in *Interpreter, op string) {
	in.checkDepth(2, op)
	b := in.popUint(op)
	a := in.popUint(op)
	for b != 0 {
		a, b = b, a%b
	}
	in.push(formatUint(a))
}

// rand pushes a random integer in [0, n).
func cmdRand(in *Interpreter, op string) {
	in.checkDepth(1, op)
	n := in.popUint(op)
	in.pushFloat(math.Floor(float64(n) * in.rng.Float64()))
}

// factorial of the integer part of n; anything under 2 is 1.
func factorial(n float64) float64 {
	n = math.Floor(n)
	if n > 170 {
		return math.Inf(1)
	}
	f := 1.0
	for ; n >= 2; n-- {
		f *= n
	}
	return f
}
