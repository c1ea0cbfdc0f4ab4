/*
Package report projects a module session into a flat list of labeled,
locale-formatted entries and renders it for export (Markdown, JSON, YAML).

Numbers always use the pt-BR convention of pkg/locale with 2 to 4 fraction
digits; this formatting is part of the exported contract.
*/
package report
