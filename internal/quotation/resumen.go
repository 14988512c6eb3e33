package quotation

import "math"

// Resumen es el subconjunto del resultado que se guarda dentro del
// expediente para poder listar y cerrar sin recalcular.
type Resumen struct {
	CosteRealPax     float64 `json:"costeRealPax"`
	PrecioVentaPax   float64 `json:"precioVentaPax"`
	MargenPax        float64 `json:"margenPax"`
	MargenPorcentaje float64 `json:"margenPorcentaje"`
	BeneficioTotal   float64 `json:"beneficioTotal"`
	IngresosTotales  float64 `json:"ingresosTotales"`
	CosteTotal       float64 `json:"costeTotal"`
}

// Resumen redondea en la frontera de guardado; el cálculo interno mantiene
// precisión completa hasta aquí.
func (r Resultado) Resumen() Resumen {
	return Resumen{
		CosteRealPax:     redondear2(r.CosteRealPax),
		PrecioVentaPax:   redondear2(r.PrecioVentaPax),
		MargenPax:        redondear2(r.MargenPax),
		MargenPorcentaje: redondear2(r.MargenPorcentaje),
		BeneficioTotal:   redondear2(r.BeneficioTotal),
		IngresosTotales:  redondear2(r.IngresosTotales),
		CosteTotal:       redondear2(r.CosteTotal),
	}
}

// Redondeado devuelve una copia con todos los importes a dos decimales,
// lista para mostrar.
func (r Resultado) Redondeado() Resultado {
	out := r
	out.Desglose = Desglose{
		Hotel:       redondear2(r.Desglose.Hotel),
		Restaurante: redondear2(r.Desglose.Restaurante),
		Bus:         redondear2(r.Desglose.Bus),
		Guia:        redondear2(r.Desglose.Guia),
		GuiaLocal:   redondear2(r.Desglose.GuiaLocal),
		Entradas:    redondear2(r.Desglose.Entradas),
		Seguro:      redondear2(r.Desglose.Seguro),
		Otros:       redondear2(r.Desglose.Otros),
	}
	out.CosteBasePax = redondear2(r.CosteBasePax)
	out.CosteGratuidades = redondear2(r.CosteGratuidades)
	out.RecargoGratuidadPax = redondear2(r.RecargoGratuidadPax)
	out.CosteRealPax = redondear2(r.CosteRealPax)
	out.CosteTotal = redondear2(r.CosteTotal)
	out.PrecioVentaPax = redondear2(r.PrecioVentaPax)
	out.IngresosTotales = redondear2(r.IngresosTotales)
	out.MargenPax = redondear2(r.MargenPax)
	out.BeneficioTotal = redondear2(r.BeneficioTotal)
	out.MargenPorcentaje = redondear2(r.MargenPorcentaje)
	out.IVA = redondear2(r.IVA)
	out.BeneficioNeto = redondear2(r.BeneficioNeto)
	return out
}

func redondear2(v float64) float64 {
	return math.Round(v*100) / 100
}
