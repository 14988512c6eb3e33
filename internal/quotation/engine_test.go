package quotation

import (
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

func casi(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestCalcularBusRepartido(t *testing.T) {
	servicios := []Servicio{
		{ID: 1, Categoria: CategoriaBus, Coste: 1000},
	}
	res := Calcular(servicios, Parametros{TotalPasajeros: 40})

	if res.PasajerosDePago != 40 {
		t.Fatalf("pasajeros de pago: got %d want 40", res.PasajerosDePago)
	}
	if !casi(res.Desglose.Bus, 25) {
		t.Fatalf("bus por pax: got %v want 25", res.Desglose.Bus)
	}
	if !casi(res.CosteBasePax, 25) {
		t.Fatalf("coste base: got %v want 25", res.CosteBasePax)
	}
}

func TestCalcularHotelPorNoches(t *testing.T) {
	servicios := []Servicio{
		{ID: 1, Categoria: CategoriaBus, Coste: 1000},
		{ID: 2, Categoria: CategoriaHotel, Coste: 50, Noches: 2},
	}
	res := Calcular(servicios, Parametros{TotalPasajeros: 40})

	if !casi(res.Desglose.Hotel, 100) {
		t.Fatalf("hotel por pax: got %v want 100", res.Desglose.Hotel)
	}
	if !casi(res.CosteBasePax, 125) {
		t.Fatalf("coste base: got %v want 125", res.CosteBasePax)
	}
}

func TestCalcularGratuidades(t *testing.T) {
	servicios := []Servicio{
		{ID: 1, Categoria: CategoriaBus, Coste: 1000},
		{ID: 2, Categoria: CategoriaHotel, Coste: 50, Noches: 2},
	}
	res := Calcular(servicios, Parametros{TotalPasajeros: 40, Gratuidades: 2})

	if res.PasajerosDePago != 38 {
		t.Fatalf("pasajeros de pago: got %d want 38", res.PasajerosDePago)
	}
	if !casi(res.CosteGratuidades, 250) {
		t.Fatalf("coste gratuidades: got %v want 250", res.CosteGratuidades)
	}
	if !casi(res.RecargoGratuidadPax, 250.0/38.0) {
		t.Fatalf("recargo por pax: got %v want %v", res.RecargoGratuidadPax, 250.0/38.0)
	}
	if !casi(res.CosteRealPax, 125+250.0/38.0) {
		t.Fatalf("coste real: got %v want %v", res.CosteRealPax, 125+250.0/38.0)
	}
}

func TestCalcularBonificacionYVenta(t *testing.T) {
	servicios := []Servicio{
		{ID: 1, Categoria: CategoriaBus, Coste: 1000},
		{ID: 2, Categoria: CategoriaHotel, Coste: 50, Noches: 2},
	}
	p := Parametros{
		TotalPasajeros: 40,
		Gratuidades:    2,
		Bonificacion:   10,
		PrecioVentaPax: 180,
	}
	res := Calcular(servicios, p)

	costeReal := 125 + 250.0/38.0 + 10
	if !casi(res.CosteRealPax, costeReal) {
		t.Fatalf("coste real: got %v want %v", res.CosteRealPax, costeReal)
	}

	margen := 180 - costeReal
	if !casi(res.MargenPax, margen) {
		t.Fatalf("margen por pax: got %v want %v", res.MargenPax, margen)
	}

	beneficio := margen * 38
	if !casi(res.BeneficioTotal, beneficio) {
		t.Fatalf("beneficio total: got %v want %v", res.BeneficioTotal, beneficio)
	}
	if !casi(res.IVA, beneficio*TipoIVA) {
		t.Fatalf("iva: got %v want %v", res.IVA, beneficio*TipoIVA)
	}
	if !casi(res.BeneficioNeto, beneficio-beneficio*TipoIVA) {
		t.Fatalf("beneficio neto: got %v want %v", res.BeneficioNeto, beneficio-beneficio*TipoIVA)
	}
	if !casi(res.IngresosTotales, 180*38) {
		t.Fatalf("ingresos: got %v want %v", res.IngresosTotales, 180.0*38)
	}
}

func TestCalcularModoRestaurante(t *testing.T) {
	grupo := []Servicio{
		{ID: 1, Categoria: CategoriaRestaurante, Coste: 500, Modo: ModoPorGrupo},
	}
	res := Calcular(grupo, Parametros{TotalPasajeros: 40, Gratuidades: 2})
	if !casi(res.Desglose.Restaurante, 500.0/38.0) {
		t.Fatalf("restaurante por grupo: got %v want %v", res.Desglose.Restaurante, 500.0/38.0)
	}

	persona := []Servicio{
		{ID: 1, Categoria: CategoriaRestaurante, Coste: 500, Modo: ModoPorPersona},
	}
	res = Calcular(persona, Parametros{TotalPasajeros: 40, Gratuidades: 2})
	if !casi(res.Desglose.Restaurante, 500) {
		t.Fatalf("restaurante por persona: got %v want 500", res.Desglose.Restaurante)
	}
}

func TestCalcularGuiaPorDias(t *testing.T) {
	servicios := []Servicio{
		{ID: 1, Categoria: CategoriaGuia, Coste: 200},
	}
	res := Calcular(servicios, Parametros{TotalPasajeros: 20, DiasGuia: 3})
	if !casi(res.Desglose.Guia, 600.0/20.0) {
		t.Fatalf("guia por pax: got %v want %v", res.Desglose.Guia, 600.0/20.0)
	}

	// GuiaLocal por persona no multiplica por días.
	servicios = []Servicio{
		{ID: 1, Categoria: CategoriaGuiaLocal, Coste: 200, Modo: ModoPorPersona},
	}
	res = Calcular(servicios, Parametros{TotalPasajeros: 20, DiasGuia: 3})
	if !casi(res.Desglose.GuiaLocal, 200) {
		t.Fatalf("guia local por pax: got %v want 200", res.Desglose.GuiaLocal)
	}
}

func TestCalcularSeguroYEntradasDirectos(t *testing.T) {
	servicios := []Servicio{
		{ID: 1, Categoria: CategoriaSeguro, Coste: 12.5},
		{ID: 2, Categoria: CategoriaEntradas, Coste: 30},
	}
	res := Calcular(servicios, Parametros{TotalPasajeros: 50, Gratuidades: 5})
	if !casi(res.Desglose.Seguro, 12.5) || !casi(res.Desglose.Entradas, 30) {
		t.Fatalf("seguro/entradas: got %v/%v want 12.5/30", res.Desglose.Seguro, res.Desglose.Entradas)
	}
}

func TestCalcularEntradasInvalidas(t *testing.T) {
	servicios := []Servicio{
		{ID: 1, Categoria: CategoriaBus, Coste: -100},
		{ID: 2, Categoria: CategoriaHotel, Coste: math.NaN(), Noches: -3},
		{ID: 3, Categoria: "paracaidas", Coste: 999},
	}
	p := Parametros{TotalPasajeros: -5, Gratuidades: -2, DiasGuia: 0, Bonificacion: -1, PrecioVentaPax: -50}
	res := Calcular(servicios, p)

	if res.TotalPasajeros != 1 || res.PasajerosDePago != 1 {
		t.Fatalf("contadores: got %d/%d want 1/1", res.TotalPasajeros, res.PasajerosDePago)
	}
	if !casi(res.CosteBasePax, 0) || !casi(res.CosteRealPax, 0) {
		t.Fatalf("costes deben quedar a cero: base=%v real=%v", res.CosteBasePax, res.CosteRealPax)
	}
	if !casi(res.PrecioVentaPax, 0) || !casi(res.BeneficioTotal, 0) {
		t.Fatalf("venta/beneficio deben quedar a cero: venta=%v beneficio=%v", res.PrecioVentaPax, res.BeneficioTotal)
	}
}

func TestCalcularSinServicios(t *testing.T) {
	res := Calcular(nil, Parametros{TotalPasajeros: 30, Bonificacion: 7.5})
	if !casi(res.CosteBasePax, 0) {
		t.Fatalf("coste base sin servicios: got %v want 0", res.CosteBasePax)
	}
	if !casi(res.CosteRealPax, 7.5) {
		t.Fatalf("coste real sin servicios: got %v want 7.5", res.CosteRealPax)
	}
}

func TestCalcularSinGratuidadesNoRecarga(t *testing.T) {
	servicios := []Servicio{
		{ID: 1, Categoria: CategoriaBus, Coste: 900},
	}
	res := Calcular(servicios, Parametros{TotalPasajeros: 30, Bonificacion: 5})
	if !casi(res.RecargoGratuidadPax, 0) {
		t.Fatalf("recargo sin gratuidades: got %v want 0", res.RecargoGratuidadPax)
	}
	if !casi(res.CosteRealPax, res.CosteBasePax+5) {
		t.Fatalf("coste real: got %v want %v", res.CosteRealPax, res.CosteBasePax+5)
	}
}

func TestCalcularPerdidaSinIVA(t *testing.T) {
	servicios := []Servicio{
		{ID: 1, Categoria: CategoriaBus, Coste: 4000},
	}
	res := Calcular(servicios, Parametros{TotalPasajeros: 20, PrecioVentaPax: 100})
	if res.MargenPax >= 0 {
		t.Fatalf("se esperaba margen negativo, got %v", res.MargenPax)
	}
	if !casi(res.IVA, 0) {
		t.Fatalf("iva sobre pérdida: got %v want 0", res.IVA)
	}
	if !casi(res.BeneficioNeto, res.BeneficioTotal) {
		t.Fatalf("neto con pérdida: got %v want %v", res.BeneficioNeto, res.BeneficioTotal)
	}
}

func TestCalcularOrdenIndependiente(t *testing.T) {
	servicios := []Servicio{
		{ID: 1, Categoria: CategoriaBus, Coste: 1000},
		{ID: 2, Categoria: CategoriaHotel, Coste: 50, Noches: 2},
		{ID: 3, Categoria: CategoriaRestaurante, Coste: 500, Modo: ModoPorGrupo},
		{ID: 4, Categoria: CategoriaSeguro, Coste: 12},
		{ID: 5, Categoria: CategoriaGuia, Coste: 150},
	}
	p := Parametros{TotalPasajeros: 40, Gratuidades: 2, DiasGuia: 4, Bonificacion: 10, PrecioVentaPax: 300}

	want := Calcular(servicios, p)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		mezcla := make([]Servicio, len(servicios))
		copy(mezcla, servicios)
		rng.Shuffle(len(mezcla), func(a, b int) { mezcla[a], mezcla[b] = mezcla[b], mezcla[a] })

		got := Calcular(mezcla, p)
		if !casi(got.CosteRealPax, want.CosteRealPax) || !casi(got.BeneficioNeto, want.BeneficioNeto) {
			t.Fatalf("el orden altera el resultado: got real=%v neto=%v want real=%v neto=%v",
				got.CosteRealPax, got.BeneficioNeto, want.CosteRealPax, want.BeneficioNeto)
		}
	}
}

func TestCalcularCosteTotalConsistente(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	categorias := []Categoria{
		CategoriaHotel, CategoriaRestaurante, CategoriaBus, CategoriaGuia,
		CategoriaGuiaLocal, CategoriaEntradas, CategoriaSeguro, CategoriaOtros,
	}
	modos := []ModoCalculo{ModoPorPersona, ModoPorGrupo}

	for i := 0; i < 200; i++ {
		n := rng.Intn(8)
		servicios := make([]Servicio, 0, n)
		for j := 0; j < n; j++ {
			servicios = append(servicios, Servicio{
				ID:        int64(j + 1),
				Categoria: categorias[rng.Intn(len(categorias))],
				Coste:     rng.Float64() * 2000,
				Noches:    rng.Intn(5),
				Modo:      modos[rng.Intn(len(modos))],
			})
		}
		p := Parametros{
			TotalPasajeros: rng.Intn(80) - 5,
			Gratuidades:    rng.Intn(6),
			DiasGuia:       rng.Intn(10) - 1,
			Bonificacion:   rng.Float64() * 30,
			PrecioVentaPax: rng.Float64() * 500,
		}

		res := Calcular(servicios, p)
		if res.PasajerosDePago < 1 || res.TotalPasajeros < 1 {
			t.Fatalf("contadores por debajo de 1: %d/%d", res.TotalPasajeros, res.PasajerosDePago)
		}
		if !casi(res.CosteTotal, res.CosteRealPax*float64(res.PasajerosDePago)) {
			t.Fatalf("coste total inconsistente: got %v want %v", res.CosteTotal, res.CosteRealPax*float64(res.PasajerosDePago))
		}
		if !casi(res.BeneficioNeto, res.BeneficioTotal-res.IVA) {
			t.Fatalf("neto inconsistente: got %v want %v", res.BeneficioNeto, res.BeneficioTotal-res.IVA)
		}
		if res.BeneficioTotal <= 0 && !casi(res.IVA, 0) {
			t.Fatalf("iva sobre beneficio no positivo: %v", res.IVA)
		}
	}
}

func TestResumenRedondeado(t *testing.T) {
	servicios := []Servicio{
		{ID: 1, Categoria: CategoriaBus, Coste: 1000},
		{ID: 2, Categoria: CategoriaHotel, Coste: 50, Noches: 2},
	}
	p := Parametros{TotalPasajeros: 40, Gratuidades: 2, Bonificacion: 10, PrecioVentaPax: 180}
	resumen := Calcular(servicios, p).Resumen()

	if resumen.CosteRealPax != 141.58 {
		t.Fatalf("coste real redondeado: got %v want 141.58", resumen.CosteRealPax)
	}
	if resumen.MargenPax != 38.42 {
		t.Fatalf("margen redondeado: got %v want 38.42", resumen.MargenPax)
	}
	if resumen.IngresosTotales != 6840 {
		t.Fatalf("ingresos redondeados: got %v want 6840", resumen.IngresosTotales)
	}
}
