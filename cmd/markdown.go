package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/expense/logger"
	"go.uber.org/zap"
)

// stylePlain prints markdown as is, without terminal rendering.
const stylePlain = "plain"

// Styles lists the accepted values of the -style flag.
var Styles = []string{"auto", "dark", "light", "notty", "ascii", stylePlain}

// printMarkdown renders md for the terminal according to the selected style.
// If rendering fails, the raw markdown is printed instead.
func printMarkdown(md string) {
	if current.Style == stylePlain {
		fmt.Fprint(stdout, md)
		return
	}

	opt := glamour.WithAutoStyle()
	if current.Style != "" && current.Style != "auto" {
		opt = glamour.WithStandardStyle(current.Style)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err != nil {
		logger.Warn("cannot create markdown renderer", zap.String("style", current.Style), zap.Error(err))
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logger.Warn("cannot render markdown", zap.Error(err))
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
