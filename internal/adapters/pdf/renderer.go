// Package pdf draws document layouts on A4 pages with maroto.
package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
	"github.com/SscSPs/oris_formation_app/internal/core/ports/renderers"
)

var (
	brandBlue  = &props.Color{Red: 30, Green: 64, Blue: 175}
	headerGray = &props.Color{Red: 229, Green: 231, Blue: 235}
	mutedGray  = &props.Color{Red: 107, Green: 114, Blue: 128}
)

var cellBorder = &props.Cell{BorderType: border.Full, BorderThickness: 0.2}

// MarotoRenderer implements renderers.DocumentRenderer.
type MarotoRenderer struct {
	margin float64
}

func NewMarotoRenderer() *MarotoRenderer {
	return &MarotoRenderer{margin: 12}
}

var _ renderers.DocumentRenderer = (*MarotoRenderer)(nil)

func (r *MarotoRenderer) newDocument(o orientation.Type, gridSize int) core.Maroto {
	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(o).
		WithLeftMargin(r.margin).
		WithTopMargin(r.margin).
		WithRightMargin(r.margin)
	if gridSize > 0 {
		b = b.WithMaxGridSize(gridSize)
	}
	return maroto.New(b.Build())
}

// generate turns maroto failures, panics included, into ErrRender.
func generate(ctx context.Context, m core.Maroto, what string) (content []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrRender, what, err)
	}
	defer func() {
		if p := recover(); p != nil {
			content = nil
			err = fmt.Errorf("%w: %s: %v", apperrors.ErrRender, what, p)
		}
	}()
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrRender, what, err)
	}
	return doc.GetBytes(), nil
}

func textCol(size int, value string, ps props.Text) core.Col {
	return text.NewCol(size, value, ps)
}

func spacer(height float64) core.Row {
	return row.New(height)
}

func separator() core.Row {
	return line.NewRow(4, props.Line{Color: headerGray, Thickness: 0.3})
}

func small(style fontstyle.Type, a align.Type) props.Text {
	return props.Text{Size: 8, Style: style, Align: a}
}

func body(style fontstyle.Type, a align.Type) props.Text {
	return props.Text{Size: 9, Style: style, Align: a, Top: 1.5, Left: 1, Right: 1}
}
