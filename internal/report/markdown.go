package report

import (
	"io"

	"github.com/nao1215/markdown"
)

func writeMarkdown(w io.Writer, r Result) error {
	md := markdown.NewMarkdown(w)
	md.H1("Pokédex")
	md.PlainText("")
	md.PlainText(summary(r))
	md.PlainText("")

	if len(r.Visible) == 0 {
		md.Note("No Pokémon matched.")
		return md.Build()
	}

	md.Table(markdown.TableSet{
		Header: headers,
		Rows:   rows(r.Visible),
	})
	return md.Build()
}
