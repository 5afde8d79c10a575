package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/sprig"
)

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <template.json>",
		Short: "Render a template headlessly and print the node tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return check(cmd.OutOrStdout(), args[0])
		},
	}
}

func check(out io.Writer, path string) error {
	tmpl, err := loadTemplateFile(path)
	if err != nil {
		return err
	}
	ctx := sprig.NewContext()
	engine := sprig.NewRetainedEngine()
	if err := ctx.Init(engine, nil); err != nil {
		return err
	}
	defer ctx.Close()

	scene := sprig.NewScene(ctx, tmpl, nil)
	defer scene.Destroy()
	if err := scene.Render(); err != nil {
		return err
	}

	for _, n := range scene.Children() {
		printNode(out, n, 0)
	}
	fmt.Fprintf(out, "%d nodes\n", engine.Live()-1)
	for _, key := range tmpl.MissingProps() {
		fmt.Fprintf(out, "skipped %q: container has no props\n", key)
	}
	return nil
}

func printNode(out io.Writer, n *sprig.Node, depth int) {
	fmt.Fprintf(out, "%s%s%s\n", strings.Repeat("  ", depth), n.Key(), formatProps(n))
	for _, c := range n.Children() {
		printNode(out, c, depth+1)
	}
}

// formatProps renders the primitive's props sorted by name.
func formatProps(n *sprig.Node) string {
	r, ok := n.Get().(*sprig.RetainedNode)
	if !ok {
		return ""
	}
	props := r.Props()
	if len(props) == 0 {
		return ""
	}
	names := make([]string, 0, len(props))
	for k := range props {
		names = append(names, k)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString(" {")
	for i, k := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", k, props[k])
	}
	b.WriteByte('}')
	return b.String()
}
