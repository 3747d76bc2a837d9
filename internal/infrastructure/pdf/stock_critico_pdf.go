// Package pdf genera la rendición imprimible del reporte de stock crítico
// con Maroto v2: título, cabecera de tabla y una fila por insumo bajo umbral.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/quimlab/insumos-api/internal/application/reportes"
	"github.com/quimlab/insumos-api/internal/domain/entity"
)

var _ reportes.PDFGenerator = (*StockCriticoPDFGenerator)(nil)

var (
	colorTitulo = &props.Color{Red: 153, Green: 0, Blue: 0}
	colorGris   = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// StockCriticoPDFGenerator implementa reportes.PDFGenerator usando Maroto v2.
type StockCriticoPDFGenerator struct{}

// NewStockCriticoPDFGenerator construye el generador.
func NewStockCriticoPDFGenerator() *StockCriticoPDFGenerator {
	return &StockCriticoPDFGenerator{}
}

// GenerarStockCritico genera el PDF y devuelve sus bytes.
func (g *StockCriticoPDFGenerator) GenerarStockCritico(insumos []*entity.InsumoConProveedor) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock crítico", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(tituloRow())
	m.AddRows(line.NewRow(2, props.Line{Color: colorTitulo, Thickness: 0.5}))
	m.AddRows(cabeceraTablaRow())
	for _, insumo := range insumos {
		m.AddRows(filaInsumoRow(insumo))
	}
	if len(insumos) == 0 {
		m.AddRows(row.New(8).Add(
			text.NewCol(12, "Sin insumos por debajo del umbral.", props.Text{
				Align: align.Center, Color: colorGris, Style: fontstyle.Italic,
			}),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func tituloRow() core.Row {
	return row.New(12).Add(
		text.NewCol(8, "Stock crítico de insumos", props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorTitulo, Align: align.Left,
		}),
		text.NewCol(4, time.Now().Format("2006-01-02 15:04"), props.Text{
			Size: 9, Color: colorGris, Align: align.Right, Top: 3,
		}),
	)
}

func cabeceraTablaRow() core.Row {
	estilo := props.Text{Style: fontstyle.Bold, Size: 9}
	return row.New(8).Add(
		text.NewCol(1, "ID", estilo),
		text.NewCol(3, "Nombre", estilo),
		text.NewCol(3, "Categoría", estilo),
		text.NewCol(1, "Cantidad", estilo),
		text.NewCol(1, "Unidad", estilo),
		text.NewCol(3, "Ubicación", estilo),
	)
}

func filaInsumoRow(i *entity.InsumoConProveedor) core.Row {
	normal := props.Text{Size: 9}
	return row.New(6).Add(
		text.NewCol(1, fmt.Sprintf("%d", i.ID), normal),
		text.NewCol(3, i.Nombre, normal),
		text.NewCol(3, i.Categoria, normal),
		col.New(1).Add(text.New(fmt.Sprintf("%d", i.Cantidad), props.Text{Size: 9, Style: fontstyle.Bold, Color: colorTitulo})),
		text.NewCol(1, i.Unidad, normal),
		text.NewCol(3, i.Ubicacion, normal),
	)
}
