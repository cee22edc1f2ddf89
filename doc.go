/* Package forth evaluates a minimal FORTH-like stack language.

The language has integer literals, the four arithmetic operators, the four
classic stack manipulation words ( drop dup swap over ), and user definitions
of the form

	: name body... ;

A definition stores its body as raw text under the lowercased name. When the
name is later recognized, the stored text is spliced back into the front of
the remaining input and re-scanned from scratch, so a word's meaning depends
on the dictionary as it stands at each use, not as it stood at definition
time. Redefining a word replaces its text for subsequent uses only; text
already spliced into the stream is unaffected.

There is no separate tokenize/parse/execute split. Evaluation repeatedly
partitions the remaining input into the longest recognizable prefix and a
remainder, executing each prefix against the stack and dictionary before the
remainder is scanned again. Recognizers are tried in a fixed order on every
pass: numeric literals, operators, definitions, one dictionary expansion,
then commands. A token that survives all of them is an unknown word and
aborts evaluation.

An interpreter instance is a plain mutable value. Successive Evaluate calls
against the same instance share its stack and dictionary; nothing is ever
rolled back, so state mutated before a failure point remains visible through
Stack. Instances are not safe for concurrent use.
*/
package forth
