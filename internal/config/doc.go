// Package config loads wallbreak settings from an HCL file.
//
// Example:
//
//	maze {
//	  rows         = default_rows
//	  cols         = 20
//	  density      = 0.3
//	  seed         = 42
//	  max_attempts = 500
//	}
//
//	search {
//	  break_wall = true
//	  max_states = 0
//	}
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
// Every block and attribute is optional; missing values keep their defaults.
// Expressions may reference default_rows, default_cols and default_density.
package config
