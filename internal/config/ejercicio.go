package config

import (
	"sync"
	"time"
)

// Ejercicio guarda el ejercicio fiscal activo que filtra listados de
// expedientes y cierres. Se inyecta explícitamente donde hace falta en
// lugar de leerse como global suelto; los interesados pueden suscribirse
// al cambio de año.
type Ejercicio struct {
	mu   sync.RWMutex
	year int
	subs []func(int)
}

// NewEjercicio arranca en el año indicado; con 0 usa el año actual.
func NewEjercicio(year int) *Ejercicio {
	if year <= 0 {
		year = time.Now().Year()
	}
	return &Ejercicio{year: year}
}

func (e *Ejercicio) Year() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.year
}

// Set cambia el ejercicio activo y avisa a los suscriptores. Los callbacks
// se ejecutan fuera del lock.
func (e *Ejercicio) Set(year int) {
	if year <= 0 {
		return
	}
	e.mu.Lock()
	if year == e.year {
		e.mu.Unlock()
		return
	}
	e.year = year
	subs := make([]func(int), len(e.subs))
	copy(subs, e.subs)
	e.mu.Unlock()

	for _, fn := range subs {
		fn(year)
	}
}

// Subscribe registra un callback que se invoca con cada cambio de año.
func (e *Ejercicio) Subscribe(fn func(int)) {
	if fn == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, fn)
}
