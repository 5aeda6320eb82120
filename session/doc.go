// Package session implements the interactive conversation loop: read a
// line of user input, run the agent for one turn, print the
// conversation as it unfolds, repeat until the user quits.
package session
