package inventory

import "sync"

// keyedMutex un mutex por clave (código QR). Serializa la secuencia
// leer-calcular-escribir de cada producto; sin esto, dos escaneos concurrentes
// del mismo QR leen la misma cantidad de partida y el segundo pisa al primero.
//
// Las entradas no se liberan: el mapa queda acotado por la cantidad de
// productos distintos escaneados durante la vida del proceso.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// lock bloquea la clave y devuelve la función de desbloqueo.
func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
