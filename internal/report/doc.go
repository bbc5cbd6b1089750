// Package report renders a filtered catalog for the headless list command
// as a text table, JSON, YAML or Markdown.
package report
