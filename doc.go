/* Package forthwith parses and evaluates a small Forth subset.

The language has integer literals, the fixed operations + - * / DUP DROP SWAP
OVER and . (pop-and-print), and user definitions written : name body ; where a
body may itself contain further definitions.

Parsing is recursive descent built from a handful of parser combinators over
whitespace-split words; it either produces an immutable token sequence or a
*ParseError, never both. Evaluation walks that sequence against two stateful
collaborators, a value Stack and a word Dictionary, producing output text that
carries at most one trailing RuntimeError report. Word references resolve
against the dictionary at the moment they are evaluated, so redefining a word
changes what every later call sees.

Parse and Evaluate are the whole core surface; Interp and Session wrap them
with per-run resource scoping for embedders such as the bundled CLI and HTTP
service under cmd/forthwith.
*/
package forthwith
