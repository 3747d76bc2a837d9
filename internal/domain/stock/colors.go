package stock

// coloresRelleno color de fondo (RGB hex) por etiqueta de categoría para las
// filas del reporte exportado. Las etiquetas se conservan tal cual aparecen
// en los datos (incluida la mayúscula de "Instrumentos y equipos").
var coloresRelleno = map[string]string{
	"Instrumentos y equipos":         "FFE6CC",
	"reactivos organicos solidos":    "FFCCCC",
	"reactivos organicos liquido":    "FFDDCC",
	"reactivos inorganicos solidos":  "CCE5FF",
	"reactivos inorganicos liquidos": "CCFFFF",
	"soluciones y mas":               "E6FFCC",
	"material de vidrio":             "F2E6FF",
	"material de plastico":           "FFF2CC",
}

// ColorRelleno devuelve el color de fondo para una etiqueta de categoría,
// con blanco como valor explícito para etiquetas sin entrada en la tabla.
func ColorRelleno(etiqueta string) string {
	if c, ok := coloresRelleno[etiqueta]; ok {
		return c
	}
	return "FFFFFF"
}
