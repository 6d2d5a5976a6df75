/*
Package rewrite performs the text transform at the heart of supafix.

	+--------------------+
	|   ClientRewriter   |
	+---------+----------+
	          |
	   +------+-------+
	   |              |
	+--+---+      +---+----+
	| Rule |      | Result |
	| (per |      | (what  |
	| mode)|      | moved) |
	+------+      +--------+

🎯 Purpose:
- Swaps the legacy shared-client import for a mode-specific one
- Injects a client-construction statement near the first usage
- Reports exactly what changed so callers can classify the outcome

🔄 Flow:
1. Bail out untouched when the legacy import is absent
2. Replace the import with the mode's import
3. Locate the first client usage and its enclosing exported function
4. Inject the construction statement after the first try-block opening,
   or after the function's opening line when there is no try block

📝 Design Philosophy:
The rewriter is a pure transform: bytes in, bytes out, no filesystem.
It does not parse TypeScript — the substitutions are pattern-based and
tuned to the route files they were written for. Anything the patterns
can't place is left for manual review rather than guessed at.
*/
package rewrite
