package main

// @generated from interp_test.go

//go:generate go run scripts/gen_interp_expects.go -- interp_test.go interp_expects_test.go

import "time"

func withInterpOptions(opts ...Option) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.withOptions(opts...)
	}
}

func withInterpProgram(program string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.withProgram(program)
	}
}

func withInterpTokens(tokens ...string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.withTokens(tokens...)
	}
}

func withInterpStack(values ...string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.withStack(values...)
	}
}

func withInterpConfig(cfg Config) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.withConfig(cfg)
	}
}

func withInterpFunction(name string, body ...string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.withFunction(name, body...)
	}
}

func withInterpMemory(name string, value string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.withMemory(name, value)
	}
}

func withInterpRegister(reg int, value float64) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.withRegister(reg, value)
	}
}

func withInterpTimeout(timeout time.Duration) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.withTimeout(timeout)
	}
}

func expectInterpError(err error) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectError(err)
	}
}

func expectInterpStack(values ...string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectStack(values...)
	}
}

func expectInterpQueue(tokens ...string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectQueue(tokens...)
	}
}

func expectInterpFunction(name string, body ...string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectFunction(name, body...)
	}
}

func expectInterpFunctions(names ...string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectFunctions(names...)
	}
}

func expectInterpMemory(name string, value string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectMemory(name, value)
	}
}

func expectInterpRegister(reg int, value float64) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectRegister(reg, value)
	}
}

func expectInterpOutput(output string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectOutput(output)
	}
}

func expectInterpWarnings(warnings ...string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectWarnings(warnings...)
	}
}

func expectInterpDump(dump string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectDump(dump)
	}
}
