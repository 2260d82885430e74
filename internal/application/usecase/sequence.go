package usecase

import (
	"fmt"
	"strconv"
	"strings"
)

// nextSequentialID genera el siguiente ID con formato "<prefijo>-NNN" a partir
// de los IDs existentes: busca el número más alto y suma uno. Tolera huecos y
// filas con IDs ilegibles (se ignoran).
//
// La hoja no tiene autoincremento, así que el número sale de releer la tabla;
// la ventana de carrera entre dos altas simultáneas se acepta igual que en el
// resto de escrituras del almacén.
func nextSequentialID(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		parts := strings.SplitN(id, "-", 2)
		if len(parts) != 2 {
			continue
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, max+1)
}
