package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/desks/pkg/commands/stateview"
	"github.com/arthur-debert/desks/pkg/commands/workflow"
	"github.com/arthur-debert/desks/pkg/output/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// textRenderer writes the human layout. Without color the same layout is
// produced with every style reduced to its spacing.
type textRenderer struct {
	w      io.Writer
	styles *styles.Registry
}

func newTextRenderer(w io.Writer, color bool) *textRenderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &textRenderer{w: w, styles: styles.Default(r)}
}

func (r *textRenderer) s(name, text string) string {
	return r.styles.Render(name, text)
}

func (r *textRenderer) RenderResult(result *workflow.Result) error {
	var b strings.Builder

	if result.DryRun {
		b.WriteString(r.s("DryRunBanner", "DRY RUN, no changes were made") + "\n")
	}

	switch {
	case result.Skipped:
		b.WriteString(r.s("Info", "Nothing to do:") + " " + result.Reason + "\n")
	case len(result.Plan) > 0:
		heading, mark, style := "Done:", "✓", "Success"
		if result.DryRun {
			heading, mark, style = "Would run:", "•", "Muted"
		}
		b.WriteString(r.s("Header", heading) + "\n")
		for _, op := range result.Plan {
			b.WriteString(r.s("Indent", r.s(style, mark)+" "+op.String()) + "\n")
		}
	}

	binding := result.Binding
	if binding.Initialized() {
		line := r.s("Path", binding.Anchor)
		if binding.CurrentTarget != "" {
			line += " -> " + r.s("Path", binding.CurrentTarget)
		}
		b.WriteString(r.s("Label", "Desktop") + line + "\n")
	}
	if strings.HasPrefix(result.Command, "usual") && len(binding.Shortcuts) > 0 {
		b.WriteString(r.s("Header", "Shortcuts") + "\n")
		for _, name := range binding.ShortcutNames() {
			b.WriteString(r.s("Indent", r.s("Label", name)+r.s("Path", binding.Shortcuts[name])) + "\n")
		}
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *textRenderer) pathLine(label string, info *stateview.PathInfo) string {
	if info == nil {
		return r.s("Label", label) + r.s("Muted", "(unset)") + "\n"
	}
	status := info.Status
	if info.LinkTarget != "" {
		status += " -> " + info.LinkTarget
	}
	return r.s("Label", label) + r.s("Path", info.Path) + "  " + r.s("Status", "("+status+")") + "\n"
}

func (r *textRenderer) RenderState(view *stateview.View) error {
	var b strings.Builder

	if view.StateFile != "" {
		b.WriteString(r.s("Label", "State") + r.s("Path", view.StateFile) + "\n")
	}

	if view.Initialized {
		b.WriteString(r.pathLine("Desktop", view.Anchor))
		b.WriteString(r.pathLine("Original", view.Temporary))
		b.WriteString(r.pathLine("Target", view.CurrentTarget))
	} else {
		b.WriteString(r.s("Info", "Not initialized.") + " Run 'desks init' to start.\n")
	}

	if len(view.Shortcuts) > 0 {
		b.WriteString(r.s("Header", "Shortcuts") + "\n")
		for _, sc := range view.Shortcuts {
			b.WriteString(r.s("Indent", r.s("Label", sc.Name)+r.s("Path", sc.Path)+"  "+r.s("Status", "("+sc.Status+")")) + "\n")
		}
	}

	if len(view.Problems) > 0 {
		b.WriteString(r.s("Header", "Problems") + "\n")
		for _, p := range view.Problems {
			b.WriteString(r.s("Indent", r.s("Warning", "!")+" "+p) + "\n")
		}
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *textRenderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintln(r.w, r.s("Error", "Error:")+" "+err.Error())
	return writeErr
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.w, r.s("Info", msg))
	return err
}
