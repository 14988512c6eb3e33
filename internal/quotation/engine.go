package quotation

import "math"

// Categoria clasifica un servicio dentro del presupuesto.
type Categoria string

const (
	CategoriaHotel       Categoria = "hotel"
	CategoriaRestaurante Categoria = "restaurante"
	CategoriaBus         Categoria = "bus"
	CategoriaGuia        Categoria = "guia"
	CategoriaGuiaLocal   Categoria = "guia_local"
	CategoriaEntradas    Categoria = "entradas"
	CategoriaSeguro      Categoria = "seguro"
	CategoriaOtros       Categoria = "otros"
)

// ModoCalculo decide si el coste unitario se aplica por pasajero de pago
// o se reparte entre todos ellos. Solo aplica a guía local, restaurante
// y otros; el resto de categorías tiene regla fija.
type ModoCalculo string

const (
	ModoPorPersona ModoCalculo = "por_persona"
	ModoPorGrupo   ModoCalculo = "por_grupo"
)

// TipoIVA se aplica únicamente sobre beneficio positivo.
const TipoIVA = 0.21

// Servicio es una línea de coste del presupuesto. Los campos descriptivos
// (proveedor, nombre, localidad, release) no intervienen en el cálculo.
type Servicio struct {
	ID        int64       `json:"id"`
	Categoria Categoria   `json:"categoria"`
	Nombre    string      `json:"nombre,omitempty"`
	Proveedor string      `json:"proveedor,omitempty"`
	Localidad string      `json:"localidad,omitempty"`
	Release   string      `json:"release,omitempty"` // fecha límite del cupo, YYYY-MM-DD
	Coste     float64     `json:"coste"`
	Noches    int         `json:"noches,omitempty"`
	Modo      ModoCalculo `json:"modo,omitempty"`
}

// Parametros son las entradas a nivel de viaje compartidas por todos los
// servicios de un presupuesto.
type Parametros struct {
	TotalPasajeros int     `json:"totalPasajeros"`
	Gratuidades    int     `json:"gratuidades"`
	DiasGuia       int     `json:"diasGuia"`
	Bonificacion   float64 `json:"bonificacion"`
	PrecioVentaPax float64 `json:"precioVentaPax"`
}

// Desglose acumula el coste por pasajero de pago de cada categoría.
type Desglose struct {
	Hotel       float64 `json:"hotel"`
	Restaurante float64 `json:"restaurante"`
	Bus         float64 `json:"bus"`
	Guia        float64 `json:"guia"`
	GuiaLocal   float64 `json:"guiaLocal"`
	Entradas    float64 `json:"entradas"`
	Seguro      float64 `json:"seguro"`
	Otros       float64 `json:"otros"`
}

// Suma devuelve el coste base por pasajero de pago.
func (d Desglose) Suma() float64 {
	return d.Hotel + d.Restaurante + d.Bus + d.Guia + d.GuiaLocal + d.Entradas + d.Seguro + d.Otros
}

// Resultado es la salida completa del motor. Siempre viene poblado; ante
// cualquier fallo interno se devuelve a cero con ambos contadores en 1.
type Resultado struct {
	TotalPasajeros  int `json:"totalPasajeros"`
	PasajerosDePago int `json:"pasajerosDePago"`

	Desglose Desglose `json:"desglose"`

	CosteBasePax        float64 `json:"costeBasePax"`
	CosteGratuidades    float64 `json:"costeGratuidades"`
	RecargoGratuidadPax float64 `json:"recargoGratuidadPax"`
	CosteRealPax        float64 `json:"costeRealPax"`
	CosteTotal          float64 `json:"costeTotal"`

	PrecioVentaPax  float64 `json:"precioVentaPax"`
	IngresosTotales float64 `json:"ingresosTotales"`

	MargenPax        float64 `json:"margenPax"`
	BeneficioTotal   float64 `json:"beneficioTotal"`
	MargenPorcentaje float64 `json:"margenPorcentaje"`
	IVA              float64 `json:"iva"`
	BeneficioNeto    float64 `json:"beneficioNeto"`
}

// Calcular transforma la lista de servicios y los parámetros del viaje en el
// desglose de costes, precio y margen. Es una función total: nunca lanza
// panic hacia fuera y no modifica sus argumentos. El recálculo es síncrono
// y completo en cada invocación; no guarda estado entre llamadas.
func Calcular(servicios []Servicio, p Parametros) (res Resultado) {
	defer func() {
		// Un cálculo roto nunca debe tumbar la sesión de edición:
		// se degrada en silencio a un resultado a cero.
		if r := recover(); r != nil {
			res = Resultado{TotalPasajeros: 1, PasajerosDePago: 1}
		}
	}()

	total := p.TotalPasajeros
	if total < 1 {
		total = 1
	}
	gratuidades := p.Gratuidades
	if gratuidades < 0 {
		gratuidades = 0
	}
	pago := total - gratuidades
	if pago < 1 {
		pago = 1
	}
	dias := p.DiasGuia
	if dias < 1 {
		dias = 1
	}

	var d Desglose
	for _, s := range servicios {
		coste := importeSeguro(s.Coste)
		noches := s.Noches
		if noches < 0 {
			noches = 0
		}

		switch s.Categoria {
		case CategoriaBus:
			// El bus completo se reparte entre pasajeros de pago,
			// sea cual sea el modo de cálculo.
			d.Bus += dividir(coste, pago)
		case CategoriaGuia:
			d.Guia += dividir(coste*float64(dias), pago)
		case CategoriaGuiaLocal:
			d.GuiaLocal += segunModo(s.Modo, coste, pago)
		case CategoriaHotel:
			d.Hotel += coste * float64(noches)
		case CategoriaSeguro:
			d.Seguro += coste
		case CategoriaEntradas:
			d.Entradas += coste
		case CategoriaRestaurante:
			d.Restaurante += segunModo(s.Modo, coste, pago)
		case CategoriaOtros:
			d.Otros += segunModo(s.Modo, coste, pago)
		default:
			// Categoría desconocida: no aporta coste.
		}
	}

	base := d.Suma()

	// Una gratuidad cuesta exactamente el coste base por pasajero; el total
	// se reparte como recargo entre los pasajeros de pago.
	costeGratuidades := base * float64(gratuidades)
	recargo := dividir(costeGratuidades, pago)

	bonificacion := importeSeguro(p.Bonificacion)
	costeReal := base + recargo + bonificacion
	costeTotal := costeReal * float64(pago)

	venta := importeSeguro(p.PrecioVentaPax)
	ingresos := venta * float64(pago)

	margen := venta - costeReal
	beneficio := margen * float64(pago)

	porcentaje := 0.0
	if costeReal > 0 {
		porcentaje = margen / costeReal * 100
	}

	iva := 0.0
	if beneficio > 0 {
		iva = beneficio * TipoIVA
	}

	return Resultado{
		TotalPasajeros:      total,
		PasajerosDePago:     pago,
		Desglose:            d,
		CosteBasePax:        base,
		CosteGratuidades:    costeGratuidades,
		RecargoGratuidadPax: recargo,
		CosteRealPax:        costeReal,
		CosteTotal:          costeTotal,
		PrecioVentaPax:      venta,
		IngresosTotales:     ingresos,
		MargenPax:           margen,
		BeneficioTotal:      beneficio,
		MargenPorcentaje:    porcentaje,
		IVA:                 iva,
		BeneficioNeto:       beneficio - iva,
	}
}

// segunModo aplica la regla flexible de guía local/restaurante/otros:
// por grupo reparte el importe, por persona lo suma directo.
func segunModo(modo ModoCalculo, importe float64, pago int) float64 {
	if modo == ModoPorGrupo {
		return dividir(importe, pago)
	}
	return importe
}

// dividir evita la división por cero aunque el clamp de pasajeros de pago
// ya la hace imposible en la práctica.
func dividir(importe float64, pago int) float64 {
	if pago <= 0 {
		return 0
	}
	return importe / float64(pago)
}

// importeSeguro fuerza a cero importes negativos o no numéricos antes de
// entrar al cálculo.
func importeSeguro(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
