/*
Package main implements FTTH, a small stack-oriented concatenative language.

FTTH compiles a Forth-like surface syntax into a compact bytecode stream held
in a single append-only dictionary arena, and runs it with a two-stack inner
interpreter: a data stack for values, and a return stack for call frames and
counted-loop state. The same arena, plus the word table naming positions
within it, can be dumped to and restored from a binary image so a session can
resume without recompiling its source.

The pieces are tightly coupled by one shared invariant: the byte layout of
the dictionary arena. The compiler emits into it and leaves forward
references as patchable placeholders; the inner interpreter dispatches
opcodes directly out of it; the image format is a byte-for-byte snapshot of
it. None of the three can change shape without the others noticing.

Word table entries before the VM's builtin_count mark are the primitives
installed at startup -- each just a tiny fragment of bytecode ending in EXIT.
Everything after that mark is user-defined, and is exactly what the textual
SAVE writes out. The binary image (SAVEB/LOADB) and LIST cover the whole word
table, primitives included.

Out of scope for this package: reading files off a real filesystem, driving
a terminal, and parsing command-line flags beyond the one contract the CLI
exposes. Those are wired in through the I/O surface (see io.go) and main.go,
not hardcoded into the compiler or interpreter.
*/
package main
