// Package memory provides in-process implementations of the ports.
package memory
