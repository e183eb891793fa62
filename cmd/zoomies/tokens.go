package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/zoomies/internal/ui/config"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/fonts"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
)

// Token kinds accepted by --kind.
const (
	kindSpace  = "space"
	kindSize   = "size"
	kindRadius = "radius"
	kindZIndex = "zIndex"
	kindShadow = "shadow"
	kindFont   = "font"
)

var tokenKinds = []string{kindSpace, kindSize, kindRadius, kindZIndex, kindShadow, kindFont}

func newTokensCmd(app *AppContext) *cobra.Command {
	var kinds []string

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the registered token tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(kinds) == 0 {
				kinds = tokenKinds
			}
			r := lipgloss.NewRenderer(cmd.OutOrStdout())
			for _, kind := range kinds {
				if err := printTokens(cmd.OutOrStdout(), r, app.Config, kind); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&kinds, "kind", nil,
		fmt.Sprintf("token tables to print (%s)", strings.Join(tokenKinds, ", ")))
	return cmd
}

func printTokens(w io.Writer, r *lipgloss.Renderer, cfg *config.Config, kind string) error {
	var rows [][]string
	headers := []string{"TOKEN", "VALUE"}

	switch kind {
	case kindSpace:
		rows = tableRows(cfg.Space())
	case kindRadius:
		rows = tableRows(cfg.Radius())
	case kindZIndex:
		rows = tableRows(cfg.ZIndex())
	case kindSize:
		size := cfg.Size()
		for _, key := range size.Keys() {
			v, _ := size.Get(key)
			value := v.Keyword
			if !v.IsKeyword() {
				value = strconv.Itoa(v.Pixels) + "px"
			}
			rows = append(rows, []string{tokens.Ref(key), value})
		}
	case kindShadow:
		headers = []string{"TOKEN", "OFFSET", "OPACITY", "RADIUS", "ELEVATION"}
		for _, key := range tokens.ShadowKeys() {
			s, _ := tokens.ShadowFor(key)
			rows = append(rows, []string{
				string(key),
				fmt.Sprintf("%d,%d", s.Offset.Width, s.Offset.Height),
				strconv.FormatFloat(s.Opacity, 'f', -1, 64),
				strconv.Itoa(s.Radius),
				strconv.Itoa(s.Elevation),
			})
		}
	case kindFont:
		headers = []string{"FONT", "FAMILY", "DEFAULT SIZE", "FACES"}
		for _, name := range cfg.FontNames() {
			f, _ := cfg.Font(name)
			size, _ := f.Size(fonts.DefaultStep)
			faces := make([]string, 0, len(f.Faces()))
			for _, face := range f.Faces() {
				faces = append(faces, strconv.Itoa(face.Weight))
			}
			rows = append(rows, []string{"$" + name, f.Family, strconv.Itoa(size) + "px", strings.Join(faces, " ")})
		}
	default:
		return fmt.Errorf("unknown token kind %q (want one of %s)", kind, strings.Join(tokenKinds, ", "))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.NewStyle().Faint(true)).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintf(w, "%s\n%s\n", r.NewStyle().Bold(true).Render(kind), t.Render())
	return err
}

func tableRows(t tokens.Table) [][]string {
	rows := make([][]string, 0, t.Len())
	for _, key := range t.Keys() {
		v, _ := t.Get(key)
		rows = append(rows, []string{tokens.Ref(key), strconv.Itoa(v)})
	}
	return rows
}
