package autofix

import "errors"

// errCleanupCommandFailed marks a cleanup action whose underlying shell
// command exited non-zero; cleanup drains continue past it regardless.
var errCleanupCommandFailed = errors.New("cleanup command failed")
