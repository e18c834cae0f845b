// Package viz draws charts and summaries in the terminal.
//
//   - [Graph]: a chart as a coloured asciigraph plot
//   - [SparklineChart]: a one-line overview of a sequence
//   - lipgloss styles shared by the terminal shell and the CLI
package viz
