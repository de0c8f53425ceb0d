// Package cli builds the wallbreak command tree.
//
// Commands:
//
//	wallbreak gen      generate a maze solvable without breaking walls
//	wallbreak solve    find the shortest path through a maze file
//	wallbreak replay   step through the search as an animation
//	wallbreak analyze  print grid statistics and path lengths
//
// Settings come from built-in defaults, then the optional --config HCL
// file, then explicitly set flags. Usage errors exit with code 2 and a
// missing path with code 1.
package cli
