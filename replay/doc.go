// Package replay turns a bfs.Result into a step-by-step animation model.
//
// A replay has len(Visited)+len(Path) steps. Steps 1..len(Visited) reveal
// the discovery trace one coordinate at a time (PhaseExploring); the
// remaining steps reveal the path from start to goal (PhaseRevealing). Step 0
// shows nothing (PhaseIdle) and the final step is PhaseDone.
//
// A Player supports Next, Prev, Seek and Reset, and Play drives it from a
// ticker for auto-play. Frame snapshots are independent copies and can be
// handed to a renderer while the player keeps moving.
//
// Once the revealed part of the path reaches a Wall cell, the frame reports
// it as BrokenWall so a renderer can highlight it.
//
// A Player is not safe for concurrent use.
package replay
