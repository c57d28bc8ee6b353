// Package bootstrap implements the dot2dot launch sequence: probe the Python
// interpreter, decide whether the declared requirements need (re)installing
// based on persisted markers and the current git revision, run pip when they
// do, then hand control to src/main.py with every forwarded argument. The
// flow is strictly linear; each step either succeeds or aborts the launch.
package bootstrap
