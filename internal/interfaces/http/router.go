package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quimlab/insumos-api/internal/application/auth"
	"github.com/quimlab/insumos-api/internal/application/insumos"
	"github.com/quimlab/insumos-api/internal/application/movimientos"
	"github.com/quimlab/insumos-api/internal/application/proveedores"
	"github.com/quimlab/insumos-api/internal/application/reportes"
	"github.com/quimlab/insumos-api/internal/application/usuarios"
	"github.com/quimlab/insumos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InsumoUC     *insumos.UseCase
	ProveedorUC  *proveedores.UseCase
	MovimientoUC *movimientos.UseCase
	UsuarioUC    *usuarios.UseCase
	ReporteUC    *reportes.UseCase
	AuthUC       *auth.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Se conservan las rutas históricas en
// la raíz (sin prefijo) por compatibilidad con los clientes existentes.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/login", authHandler.Login)

	// Catálogo de insumos
	insumoHandler := NewInsumoHandler(deps.InsumoUC)
	app.Get("/productos", insumoHandler.List)
	app.Get("/productos/:id", insumoHandler.GetByID)
	app.Post("/productos", insumoHandler.Create)
	app.Put("/productos/:id", insumoHandler.Update)
	app.Delete("/productos/:id", insumoHandler.Delete)

	// Proveedores
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	app.Get("/proveedores", proveedorHandler.List)
	app.Get("/proveedores/:id", proveedorHandler.GetByID)
	app.Post("/proveedores", proveedorHandler.Create)
	app.Put("/proveedores/:id", proveedorHandler.Update)
	app.Delete("/proveedores/:id", proveedorHandler.Delete)

	// Ledger de movimientos
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	app.Get("/movimientos", movimientoHandler.List)
	app.Post("/movimientos", movimientoHandler.Registrar)

	// Usuarios (requiere Bearer Token; mutaciones solo admin)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuariosGroup := app.Group("/usuarios", AuthMiddleware(deps.JWTSecret))
	usuariosGroup.Get("/", usuarioHandler.List)
	usuariosGroup.Get("/:id", usuarioHandler.GetByID)
	usuariosGroup.Post("/", RequireRole(entity.RolAdmin), usuarioHandler.Create)
	usuariosGroup.Put("/:id", RequireRole(entity.RolAdmin), usuarioHandler.Update)
	usuariosGroup.Delete("/:id", RequireRole(entity.RolAdmin), usuarioHandler.Delete)

	// Reportes
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	app.Get("/reportes/stock-critico", reporteHandler.StockCritico)
	app.Get("/reportes/stock-critico/pdf", reporteHandler.StockCriticoPDF)
	app.Get("/reportes/consumo", reporteHandler.Consumo)
	app.Get("/reportes/exportar-insumos", reporteHandler.ExportarInsumos)
}
