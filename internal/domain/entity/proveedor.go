package entity

// Proveedor datos de referencia de un proveedor. Los insumos lo referencian
// de forma opcional; no hay acoplamiento de ciclo de vida.
type Proveedor struct {
	ID       int64
	Nombre   string
	Contacto string
	Telefono string
	Email    string
}
