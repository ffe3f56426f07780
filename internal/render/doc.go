// Package render turns query results into terminal output: the
// box-drawing ancestor/descendant charts, person profiles, the person
// table and the HTML report export. The CLI and the interactive shell
// share these renderers so the two surfaces always agree.
package render
