// Package excel serializa el catálogo de insumos a un libro xlsx: una hoja
// por categoría, cabecera fija de 7 columnas y filas coloreadas según la
// tabla de colores de la categoría.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/quimlab/insumos-api/internal/application/reportes"
	"github.com/quimlab/insumos-api/internal/domain/entity"
	"github.com/quimlab/insumos-api/internal/domain/stock"
)

var _ reportes.WorkbookGenerator = (*InsumosWorkbookGenerator)(nil)

// maxNombreHoja límite de longitud de nombre de hoja del formato xlsx.
const maxNombreHoja = 31

var encabezado = []string{"ID", "Nombre", "Categoría", "Cantidad", "Unidad", "Ubicación", "Proveedor"}

// sinProveedor texto de relleno cuando el insumo no referencia proveedor.
const sinProveedor = "Sin proveedor"

// InsumosWorkbookGenerator implementa reportes.WorkbookGenerator con excelize.
type InsumosWorkbookGenerator struct{}

// NewInsumosWorkbookGenerator construye el generador.
func NewInsumosWorkbookGenerator() *InsumosWorkbookGenerator {
	return &InsumosWorkbookGenerator{}
}

// GenerarInsumos construye el libro completo en memoria y devuelve sus bytes.
// Los insumos llegan ordenados por categoría y nombre; se crea una hoja por
// cada valor de categoría observado, respetando el orden de las filas.
func (g *InsumosWorkbookGenerator) GenerarInsumos(insumos []*entity.InsumoConProveedor) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
		Border: []excelize.Border{
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("estilo de cabecera: %w", err)
	}

	var hojas []string
	for _, grupo := range agruparPorCategoria(insumos) {
		hoja := nombreHoja(grupo.categoria)
		if _, err := f.NewSheet(hoja); err != nil {
			return nil, fmt.Errorf("crear hoja %q: %w", hoja, err)
		}
		hojas = append(hojas, hoja)

		for col, titulo := range encabezado {
			celda, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := f.SetCellValue(hoja, celda, titulo); err != nil {
				return nil, fmt.Errorf("cabecera %q: %w", hoja, err)
			}
		}
		if err := f.SetCellStyle(hoja, "A1", "G1", headerStyle); err != nil {
			return nil, fmt.Errorf("estilo cabecera %q: %w", hoja, err)
		}

		rowStyle, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{stock.ColorRelleno(grupo.categoria)}},
		})
		if err != nil {
			return nil, fmt.Errorf("estilo de filas %q: %w", hoja, err)
		}

		for n, insumo := range grupo.filas {
			fila := n + 2
			proveedor := insumo.Proveedor
			if proveedor == "" {
				proveedor = sinProveedor
			}
			valores := []any{
				insumo.ID, insumo.Nombre, insumo.Categoria, insumo.Cantidad,
				insumo.Unidad, insumo.Ubicacion, proveedor,
			}
			for col, v := range valores {
				celda, _ := excelize.CoordinatesToCellName(col+1, fila)
				if err := f.SetCellValue(hoja, celda, v); err != nil {
					return nil, fmt.Errorf("fila %d de %q: %w", fila, hoja, err)
				}
			}
			inicio, _ := excelize.CoordinatesToCellName(1, fila)
			fin, _ := excelize.CoordinatesToCellName(len(valores), fila)
			if err := f.SetCellStyle(hoja, inicio, fin, rowStyle); err != nil {
				return nil, fmt.Errorf("estilo fila %d de %q: %w", fila, hoja, err)
			}
		}

		if err := f.SetColWidth(hoja, "A", "G", 20); err != nil {
			return nil, fmt.Errorf("ancho de columnas %q: %w", hoja, err)
		}
	}

	// La hoja por defecto solo sobra cuando se creó al menos una de categoría.
	if len(hojas) > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("eliminar hoja por defecto: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

type grupoCategoria struct {
	categoria string
	filas     []*entity.InsumoConProveedor
}

// agruparPorCategoria particiona por valor exacto de categoría conservando el
// orden de aparición de las filas (ya vienen ordenadas por categoría, nombre).
func agruparPorCategoria(insumos []*entity.InsumoConProveedor) []grupoCategoria {
	var grupos []grupoCategoria
	indice := make(map[string]int)
	for _, i := range insumos {
		pos, ok := indice[i.Categoria]
		if !ok {
			pos = len(grupos)
			indice[i.Categoria] = pos
			grupos = append(grupos, grupoCategoria{categoria: i.Categoria})
		}
		grupos[pos].filas = append(grupos[pos].filas, i)
	}
	return grupos
}

// nombreHoja trunca la categoría al máximo permitido por el formato.
func nombreHoja(categoria string) string {
	r := []rune(categoria)
	if len(r) > maxNombreHoja {
		return string(r[:maxNombreHoja])
	}
	return categoria
}
