// Package trend reconstruye la curva histórica de nivel de stock a partir del
// libro de movimientos. Cómputo puro: sin I/O, sin reloj global (el "ahora" se
// inyecta), mismo input produce siempre el mismo output.
package trend

import (
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
)

// Scope ámbito del filtro de la curva.
type Scope string

const (
	ScopeAll        Scope = "ALL"
	ScopeDepartment Scope = "DEPARTMENT"
	ScopeProduct    Scope = "PRODUCT"
)

// ParseScope valida el scope recibido por query param.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeAll, ScopeDepartment, ScopeProduct:
		return Scope(s), nil
	case "":
		return ScopeAll, nil
	}
	return "", fmt.Errorf("scope desconocido: %q", s)
}

// Window ventana temporal visible de la curva. La granularidad del bucket va
// atada a la ventana: horaria para 24h, diaria para el resto.
type Window string

const (
	Window24h Window = "24h"
	Window3d  Window = "3d"
	Window7d  Window = "7d"
	Window30d Window = "30d"
	Window3m  Window = "3m"
	Window6m  Window = "6m"
)

// ParseWindow valida la ventana recibida por query param. Vacío = 7d.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case Window24h, Window3d, Window7d, Window30d, Window3m, Window6m:
		return Window(s), nil
	case "":
		return Window7d, nil
	}
	return "", fmt.Errorf("ventana desconocida: %q", s)
}

// Start devuelve el borde izquierdo de la ventana respecto de now.
func (w Window) Start(now time.Time) time.Time {
	switch w {
	case Window24h:
		return now.Add(-24 * time.Hour)
	case Window3d:
		return now.AddDate(0, 0, -3)
	case Window30d:
		return now.AddDate(0, 0, -30)
	case Window3m:
		return now.AddDate(0, -3, 0)
	case Window6m:
		return now.AddDate(0, -6, 0)
	default:
		return now.AddDate(0, 0, -7)
	}
}

// bucket trunca un instante a la granularidad de la ventana.
func (w Window) bucket(t time.Time) time.Time {
	if w == Window24h {
		return t.Truncate(time.Hour)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Point un punto de la curva: etiqueta legible, instante del primer movimiento
// del bucket y saldo al cierre del bucket.
type Point struct {
	Label      string
	Timestamp  time.Time
	StockLevel int64
}

// Build reconstruye la serie de niveles de stock.
//
//  1. Filtra los movimientos según scope (DEPARTMENT compara contra el
//     departamento registrado en el asiento; PRODUCT resuelve scopeID a su
//     código QR vía products; si el producto no existe, la serie es vacía).
//  2. Ordena ascendente por fecha: el saldo acumulado solo es correcto
//     reproduciendo del más viejo al más nuevo.
//  3. Reproduce TODO el historial filtrado desde cero (IN suma, OUT resta),
//     porque el saldo con el que se entra a la ventana depende de toda la
//     actividad previa.
//  4. Emite puntos solo para movimientos con fecha >= now-window, fusionando
//     en el mismo punto los que caen en el mismo bucket (gana el último saldo).
//  5. Si no hubo movimientos dentro de la ventana pero el saldo acumulado no es
//     cero, sintetiza dos puntos (inicio y ahora) para dibujar una línea plana.
//
// Los movimientos con fecha cero (fila ilegible en la hoja) se descartan;
// skipped informa cuántos fueron para que el caller lo deje en el log. El saldo
// es entero con signo y no se recorta: si el libro trae historia inconsistente
// (p. ej. importada), la curva muestra lo que el libro implica, negativo incluido.
func Build(
	movements []*entity.Movement,
	products []*entity.Product,
	scope Scope,
	scopeID string,
	window Window,
	now time.Time,
) (points []Point, skipped int) {
	filtered := make([]*entity.Movement, 0, len(movements))

	var qrFilter string
	if scope == ScopeProduct {
		var target *entity.Product
		for _, p := range products {
			if p.ID == scopeID {
				target = p
				break
			}
		}
		if target == nil {
			// Producto no resoluble: serie vacía, pero contamos igual los descartes
			for _, m := range movements {
				if m.Timestamp.IsZero() {
					skipped++
				}
			}
			return nil, skipped
		}
		qrFilter = target.QRCode
	}

	for _, m := range movements {
		if m.Timestamp.IsZero() {
			skipped++
			continue
		}
		switch scope {
		case ScopeDepartment:
			if m.DepartmentID != scopeID {
				continue
			}
		case ScopeProduct:
			if m.QRCode != qrFilter {
				continue
			}
		}
		filtered = append(filtered, m)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.Before(filtered[j].Timestamp)
	})

	start := window.Start(now)
	var balance int64
	var lastBucket time.Time

	for _, m := range filtered {
		switch m.Type {
		case entity.MovementTypeIN:
			balance += m.Quantity
		case entity.MovementTypeOUT:
			balance -= m.Quantity
		default:
			continue
		}

		if m.Timestamp.Before(start) {
			continue
		}

		b := window.bucket(m.Timestamp)
		if len(points) > 0 && b.Equal(lastBucket) {
			// Mismo bucket que el último punto: se sobreescribe el saldo,
			// la serie queda con un punto por bucket como máximo
			points[len(points)-1].StockLevel = balance
			continue
		}
		points = append(points, Point{
			Label:      formatLabel(m.Timestamp, window),
			Timestamp:  m.Timestamp,
			StockLevel: balance,
		})
		lastBucket = b
	}

	if len(points) == 0 && balance != 0 {
		// Hubo actividad antes de la ventana pero nada dentro: línea plana
		points = append(points,
			Point{Label: "Inicio del período", Timestamp: start, StockLevel: balance},
			Point{Label: "Ahora", Timestamp: now, StockLevel: balance},
		)
	}

	return points, skipped
}

var monthsShort = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// formatLabel etiqueta legible según la densidad de la ventana.
func formatLabel(t time.Time, w Window) string {
	mes := monthsShort[t.Month()-1]
	switch w {
	case Window24h:
		return t.Format("15:04")
	case Window3d:
		return fmt.Sprintf("%02d %s %s", t.Day(), mes, t.Format("15:04"))
	case Window6m:
		return fmt.Sprintf("%s %d", mes, t.Year())
	default:
		return fmt.Sprintf("%02d %s", t.Day(), mes)
	}
}
