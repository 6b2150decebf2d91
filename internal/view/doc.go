// Package view renders the portfolio as a tree of pure functions. Every
// function maps its arguments to a gomponents node and reads nothing else;
// the page state and datasets arrive by value from the caller.
package view
