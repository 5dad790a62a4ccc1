// Package config defines the runtime configuration of the patrol binary and
// loads it from an optional HCL file.
//
// A config file sets any subset of the attributes below; omitted ones keep
// their current value:
//
//	input        = "input.txt"
//	workers      = cpus        # number; `cpus` is the machine's CPU count
//	path_pruning = false
//	log_level    = "info"
//	log_format   = "console"   # or "json"
package config
