package main

import (
	"fmt"
	"strconv"
	"strings"
)

var convCommands = map[string]command{
	"dec_hex": func(in *Interpreter, op string) {
		in.checkDepth(1, op)
		in.push(strconv.FormatUint(in.popUint(op), 16))
	},
	"hex_dec": func(in *Interpreter, op string) {
		in.checkDepth(1, op)
		in.pushInt(in.popHexInt(op))
	},
	"dec_bin": func(in *Interpreter, op string) {
		in.checkDepth(1, op)
		in.push(strconv.FormatUint(in.popUint(op), 2))
	},
	"bin_dec": func(in *Interpreter, op string) {
		in.checkDepth(1, op)
		in.pushInt(in.popBinInt(op))
	},
	"bin_hex": func(in *Interpreter, op string) {
		in.checkDepth(1, op)
		in.push(strconv.FormatInt(in.popBinInt(op), 16))
	},
	"hex_bin": func(in *Interpreter, op string) {
		in.checkDepth(1, op)
		in.push(strconv.FormatInt(in.popHexInt(op), 2))
	},

	"c_f":   unary(celsiusToFahrenheit),
	"C_F":   unary(celsiusToFahrenheit),
	"f_c":   unary(fahrenheitToCelsius),
	"F_C":   unary(fahrenheitToCelsius),
	"mi_km": unary(func(a float64) float64 { return a * kmPerMile }),
	"km_mi": unary(func(a float64) float64 { return a / kmPerMile }),
	"ft_m":  unary(func(a float64) float64 { return a / feetPerMeter }),
	"m_ft":  unary(func(a float64) float64 { return a * feetPerMeter }),
	"tip":   unary(func(a float64) float64 { return a * 0.15 }),
	"tip+":  unary(func(a float64) float64 { return a * 0.20 }),
	"a_b":   cmdConvert,

	"hex_rgb": cmdHexRGB,
	"rgb_hex": cmdRGBHex,
	"rgb":     cmdRGB,
	"rgbh":    cmdRGBHexBytes,
}

const (
	kmPerMile    = 1.609344
	feetPerMeter = 3.281
)

func celsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }
func fahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

// a_b scales by the configured conversion constant.
func cmdConvert(in *Interpreter, op string) {
	in.checkDepth(1, op)
	in.pushFloat(in.popFloat(op) * in.config.ConversionConstant)
}

// hex_rgb splits a hex color like ff8000 (or #ff8000) into decimal r g b.
func cmdHexRGB(in *Interpreter, op string) {
	in.checkDepth(1, op)
	arg := in.popString(op)
	hex := strings.TrimPrefix(arg, "#")
	if len(hex) != 6 {
		in.halt(ArgError{Op: op, Arg: arg, Reason: "is not a 6 digit hex color"})
	}
	for i := 0; i < 6; i += 2 {
		part := hex[i : i+2]
		u, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			in.halt(ValueError{Token: part, Kind: kindHexByte})
		}
		in.push(formatUint(u))
	}
}

func cmdRGBHex(in *Interpreter, op string) {
	in.checkDepth(3, op)
	b := in.popByte(op)
	g := in.popByte(op)
	r := in.popByte(op)
	in.push(hexColor(r, g, b))
}

// rgb pushes a color swatch, followed by its hex code, for decimal r g b.
func cmdRGB(in *Interpreter, op string) {
	in.checkDepth(3, op)
	b := in.popByte(op)
	g := in.popByte(op)
	r := in.popByte(op)
	in.push(swatch(r, g, b), hexColor(r, g, b))
}

// rgbh is rgb for hex r g b components.
func cmdRGBHexBytes(in *Interpreter, op string) {
	in.checkDepth(3, op)
	b := in.popHexByte(op)
	g := in.popHexByte(op)
	r := in.popHexByte(op)
	in.push(swatch(r, g, b), hexColor(r, g, b))
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("%02x%02x%02x", r, g, b)
}
