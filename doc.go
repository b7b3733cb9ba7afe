/* Package main implements comp, a postfix calculator.

comp reads a flat sequence of operations, such as

	3 4 + 2 x

executing each one in turn against a stack of values. Any operation that does
not name a command, a user defined function, or a stored memory value is a
literal, and is simply pushed onto the stack.

Values are kept as the text they were written as; a command parses the values
it pops, as a float for most arithmetic, or as an unsigned, hex, or binary
integer for conversions, and pushes back its formatted result.

Control Flow

Nothing is parsed ahead of time. Instead, control words rewrite the queue of
pending operations as they are executed:

	( NAME ... )              defines NAME, up to the first )
	[ ... ]                   defines the anonymous function _, up to the first ]
	a b ifeq ... else ... fi  runs one branch, depending on whether a == b
	{ ... }                   is a comment; comments nest

Calling a function splices its body onto the front of the queue; so does an
ifeq, with whichever branch was taken. Since function bodies are captured
only up to the first terminator, they may not contain another definition.

The map, fold, and scan combinators apply the anonymous function across the
whole stack, by injecting a fixed number of stack rotations and calls to _:

	1 2 3 [ 1 + ] map   => 2 3 4
	10 2 3 [ - ] fold   => 5
	1 2 3 4 [ + ] scan  => 1 3 6 10

Memory

	5 sto x   stores 5 under x
	rcl x     pushes the value stored under x
	x         re-evaluates the value stored under x
	sa _a     store and recall register a; also b and c

Configuration is read from comp.toml in the home directory; see Config.
*/
package main
