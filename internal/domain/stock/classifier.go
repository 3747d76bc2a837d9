// Package stock contiene las reglas puras de clasificación de inventario:
// el mapeo de etiquetas libres de categoría a un tipo enumerado, la tabla de
// umbrales de stock crítico y la tabla de colores para el reporte exportado.
package stock

import "strings"

// Categoria es el tipo enumerado bajo el que se agrupan las etiquetas libres
// de los insumos. Las tablas de umbrales y, en el exportador, de colores se
// indexan por este tipo en lugar de comparar strings ad hoc.
type Categoria string

const (
	CategoriaReactivos    Categoria = "reactivos"
	CategoriaVidrio       Categoria = "material de vidrio"
	CategoriaPlastico     Categoria = "material de plastico"
	CategoriaInstrumentos Categoria = "instrumentos y equipos"
	CategoriaSoluciones   Categoria = "soluciones y mas"
	CategoriaOtra         Categoria = "otra"
)

// umbrales cantidad mínima por categoría; por debajo el stock es crítico.
// Las categorías sin entrada nunca son críticas bajo esta regla.
var umbrales = map[Categoria]int{
	CategoriaReactivos:    100,
	CategoriaVidrio:       5,
	CategoriaPlastico:     5,
	CategoriaInstrumentos: 1,
	CategoriaSoluciones:   1,
}

// Clasificar mapea la etiqueta libre de un insumo a su Categoria.
// Las clases reactivas se reconocen por subcadena ("reactivos organicos
// solidos", "reactivos inorganicos liquidos", ...); el resto por igualdad
// exacta, sensible a mayúsculas. Etiquetas desconocidas van a CategoriaOtra.
func Clasificar(etiqueta string) Categoria {
	if strings.Contains(etiqueta, "reactivo") {
		return CategoriaReactivos
	}
	switch etiqueta {
	case string(CategoriaVidrio):
		return CategoriaVidrio
	case string(CategoriaPlastico):
		return CategoriaPlastico
	case string(CategoriaInstrumentos):
		return CategoriaInstrumentos
	case string(CategoriaSoluciones):
		return CategoriaSoluciones
	}
	return CategoriaOtra
}

// EsCritico decide si un insumo con la etiqueta y cantidad dadas está por
// debajo de su umbral. Función pura y total: sin efectos, mismo resultado
// para la misma entrada; CategoriaOtra no tiene umbral y nunca es crítica.
func EsCritico(etiqueta string, cantidad int) bool {
	umbral, ok := umbrales[Clasificar(etiqueta)]
	if !ok {
		return false
	}
	return cantidad < umbral
}
