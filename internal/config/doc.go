// Package config loads the remapper configuration from YAML.
//
// Every key is optional; missing keys take the values of Default. A
// typical file:
//
//	diff:
//	  thresholds: {0: 100, 10: 95, 25: 90}
//	  min_instructions: 8
//	parallelism: 4
//	log_level: debug
//	identity:
//	  supplier: counter
//	  prefix: "app."
//
// Thresholds may also be written as a list of {min_size, percent} entries.
package config
