package postgres

import (
	"context"
	"fmt"

	"github.com/quimlab/insumos-api/internal/domain/entity"
	"github.com/quimlab/insumos-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del ledger sobre PostgreSQL (usable con pool
// o tx). Solo inserta y lee: los movimientos son inmutables.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create inserta el movimiento; ID y Fecha los asigna la base de datos al
// confirmar.
func (r *MovimientoRepo) Create(mov *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (insumo_id, tipo, cantidad, motivo)
		VALUES ($1, $2, $3, $4)
		RETURNING id, fecha`
	err := r.q.QueryRow(context.Background(), query,
		mov.InsumoID, mov.Tipo, mov.Cantidad, mov.Motivo,
	).Scan(&mov.ID, &mov.Fecha)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ListConInsumo devuelve todos los movimientos con el nombre del insumo,
// fecha descendente.
func (r *MovimientoRepo) ListConInsumo() ([]*entity.MovimientoConInsumo, error) {
	query := `
		SELECT m.id, m.insumo_id, m.tipo, m.cantidad, COALESCE(m.motivo, ''), m.fecha, p.nombre
		FROM movimientos m
		JOIN productos p ON m.insumo_id = p.id
		ORDER BY m.fecha DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimientoConInsumo
	for rows.Next() {
		var m entity.MovimientoConInsumo
		if err := rows.Scan(
			&m.ID, &m.InsumoID, &m.Tipo, &m.Cantidad, &m.Motivo, &m.Fecha, &m.NombreInsumo,
		); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByInsumo cuenta los movimientos que referencian al insumo.
func (r *MovimientoRepo) CountByInsumo(insumoID int64) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM movimientos WHERE insumo_id = $1`, insumoID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count movimientos: %w", err)
	}
	return total, nil
}

// TotalConsumoPorInsumo suma las salidas por insumo, total descendente.
func (r *MovimientoRepo) TotalConsumoPorInsumo() ([]*entity.ConsumoInsumo, error) {
	query := `
		SELECT p.nombre AS insumo, SUM(m.cantidad) AS total_consumido
		FROM movimientos m
		JOIN productos p ON m.insumo_id = p.id
		WHERE m.tipo = 'salida'
		GROUP BY p.nombre
		ORDER BY total_consumido DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("consumo por insumo: %w", err)
	}
	defer rows.Close()
	var list []*entity.ConsumoInsumo
	for rows.Next() {
		var c entity.ConsumoInsumo
		if err := rows.Scan(&c.Insumo, &c.TotalConsumido); err != nil {
			return nil, fmt.Errorf("scan consumo: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
