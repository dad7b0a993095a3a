package formatter

import (
	"fmt"
	"strings"

	"github.com/plusplan/plusplan/internal/requirements"
)

// FormatRequirements renders the logistical requirements report.
func FormatRequirements(r *requirements.Result) string {
	var b strings.Builder

	b.WriteString(Header("Visa"))
	b.WriteString("\n")
	if r.Visa.Required {
		b.WriteString(fmt.Sprintf("  %s %s visa needed for %s\n",
			StyleYellow.Render("!"),
			r.Visa.Type,
			StyleBlue.Render(strings.Join(r.Visa.AffectedCountries, ", "))))
		b.WriteString(fmt.Sprintf("  %s apply by %s\n", Dim("deadline"), Bold(HumanDate(r.Visa.Deadline))))
	} else {
		b.WriteString(StyleGreen.Render("  ✓ no visas required") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(Header("Insurance"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s policy covering: %s\n", Bold(r.Insurance.Type), strings.Join(r.Insurance.Coverage, ", ")))

	b.WriteString("\n")
	b.WriteString(Header("Permits"))
	b.WriteString("\n")
	if r.Permits.Required {
		for _, p := range r.Permits.Permits {
			b.WriteString(fmt.Sprintf("  %s %s — %s %s\n",
				StyleYellow.Render("!"), Bold(p.Type), p.Reason, Dim("("+p.IssuingAuthority+")")))
		}
	} else {
		b.WriteString(StyleGreen.Render("  ✓ no permits required") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(Header("Accessibility"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  wheelchair access, dietary tracking, language support (%s)\n",
		strings.Join(r.Accessibility.LanguageSupport, ", ")))

	return RenderBox("Requirements", b.String())
}
