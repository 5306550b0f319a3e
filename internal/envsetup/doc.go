// Package envsetup prepares a development environment by running a declared
// sequence of commands. It encapsulates command execution, per-command
// timeouts, and failure handling, making the main package cleaner and more
// focused on CLI parsing and orchestration.
package envsetup
