// Package dispatch turns ni operations into script invocations.
//
// Each operation resolves its inputs (target path, label) and hands an
// ordered argument list to a Runner, which executes <script_dir>/<name>.sh
// and reports the child's exit code. The package owns no state between
// calls.
package dispatch
