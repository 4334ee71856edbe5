package cli

import (
	"fmt"
	"io"

	"github.com/semwerk/semspec/internal/core/domain"
)

// printFindings renders a findings list for one source file.
// Returns the number of findings printed.
func printFindings(w io.Writer, source string, findings []domain.Finding) int {
	if len(findings) == 0 {
		fmt.Fprintf(w, "%s %s\n", styleOK.Render("ok"), source)
		return 0
	}

	fmt.Fprintf(w, "%s %s: %d finding(s)\n", styleError.Render("invalid"), source, len(findings))
	for _, f := range findings {
		switch {
		case f.EntityID != "" && f.Field != "":
			fmt.Fprintf(w, "  %s %s: %s\n", styleEntity.Render(f.EntityID), styleSubtleField(f.Field), f.Message)
		case f.EntityID != "":
			fmt.Fprintf(w, "  %s: %s\n", styleEntity.Render(f.EntityID), f.Message)
		default:
			fmt.Fprintf(w, "  %s\n", f.Message)
		}
	}
	return len(findings)
}

func styleSubtleField(field string) string {
	return styleSubtle.Render("(" + field + ")")
}
