// Package magetasks implements the build, lint and test targets behind
// innostat's magefile. Each exported function maps to one mage target.
package magetasks
