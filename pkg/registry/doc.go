// Package registry provides the ordered module catalog with O(1) lookup by ID.
package registry
