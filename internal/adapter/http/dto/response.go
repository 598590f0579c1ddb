package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fletero/backoffice/internal/domain"
)

// CajaResponse represents a caja in API responses.
type CajaResponse struct {
	ID        string          `json:"id"`
	Localidad string          `json:"localidad"`
	Sucursal  string          `json:"sucursal"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CajaFromDomain converts a domain caja to a response.
func CajaFromDomain(c *domain.Caja) *CajaResponse {
	return &CajaResponse{
		ID:        c.ID,
		Localidad: c.Localidad,
		Sucursal:  c.Sucursal,
		Total:     c.Total,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CajasFromDomain converts domain cajas to responses.
func CajasFromDomain(cajas []*domain.Caja) []*CajaResponse {
	result := make([]*CajaResponse, len(cajas))
	for i, c := range cajas {
		result[i] = CajaFromDomain(c)
	}
	return result
}

// ConsistencyResponse reports a caja total against the recomputed
// movement sum for its location.
type ConsistencyResponse struct {
	Localidad   string          `json:"localidad"`
	Total       decimal.Decimal `json:"total"`
	MovementSum decimal.Decimal `json:"movement_sum"`
	Difference  decimal.Decimal `json:"difference"`
	Consistent  bool            `json:"consistent"`
	CheckedAt   time.Time       `json:"checked_at"`
}

// ConsistencyFromDomain converts a domain report to a response.
func ConsistencyFromDomain(r *domain.ConsistencyReport) *ConsistencyResponse {
	return &ConsistencyResponse{
		Localidad:   r.Localidad,
		Total:       r.Total,
		MovementSum: r.MovementSum,
		Difference:  r.Difference,
		Consistent:  r.Consistent,
		CheckedAt:   r.CheckedAt,
	}
}

// IngresoResponse represents an ingreso in API responses.
type IngresoResponse struct {
	ID          string          `json:"id"`
	Tipo        string          `json:"tipo"`
	Observacion string          `json:"observacion"`
	Recaudacion decimal.Decimal `json:"recaudacion"`
	Localidad   string          `json:"localidad"`
	Sucursal    string          `json:"sucursal"`
	Usuario     string          `json:"usuario"`
	RoleID      int             `json:"role_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// IngresoFromDomain converts a domain ingreso to a response.
func IngresoFromDomain(i *domain.Ingreso) *IngresoResponse {
	return &IngresoResponse{
		ID:          i.ID,
		Tipo:        i.Tipo,
		Observacion: i.Observacion,
		Recaudacion: i.Recaudacion,
		Localidad:   i.Localidad,
		Sucursal:    i.Sucursal,
		Usuario:     i.Usuario,
		RoleID:      i.RoleID,
		CreatedAt:   i.CreatedAt,
	}
}

// IngresosFromDomain converts domain ingresos to responses.
func IngresosFromDomain(ingresos []*domain.Ingreso) []*IngresoResponse {
	result := make([]*IngresoResponse, len(ingresos))
	for i, in := range ingresos {
		result[i] = IngresoFromDomain(in)
	}
	return result
}

// GastoResponse represents a gasto in API responses. Recaudacion keeps
// the stored negative sign.
type GastoResponse struct {
	ID          string          `json:"id"`
	Tipo        string          `json:"tipo"`
	Observacion string          `json:"observacion"`
	Recaudacion decimal.Decimal `json:"recaudacion"`
	Localidad   string          `json:"localidad"`
	Sucursal    string          `json:"sucursal"`
	Usuario     string          `json:"usuario"`
	RoleID      int             `json:"role_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// GastoFromDomain converts a domain gasto to a response.
func GastoFromDomain(g *domain.Gasto) *GastoResponse {
	return &GastoResponse{
		ID:          g.ID,
		Tipo:        g.Tipo,
		Observacion: g.Observacion,
		Recaudacion: g.Recaudacion,
		Localidad:   g.Localidad,
		Sucursal:    g.Sucursal,
		Usuario:     g.Usuario,
		RoleID:      g.RoleID,
		CreatedAt:   g.CreatedAt,
	}
}

// GastosFromDomain converts domain gastos to responses.
func GastosFromDomain(gastos []*domain.Gasto) []*GastoResponse {
	result := make([]*GastoResponse, len(gastos))
	for i, g := range gastos {
		result[i] = GastoFromDomain(g)
	}
	return result
}

// RemuneracionResponse represents a remuneracion in API responses.
type RemuneracionResponse struct {
	ID                string          `json:"id"`
	Armador           string          `json:"armador"`
	FechaCarga        time.Time       `json:"fecha_carga"`
	FechaEntrega      time.Time       `json:"fecha_entrega"`
	KmLineal          decimal.Decimal `json:"km_lineal"`
	PagoFleteroEspera decimal.Decimal `json:"pago_fletero_espera"`
	Viaticos          decimal.Decimal `json:"viaticos"`
	Auto              decimal.Decimal `json:"auto"`
	Refuerzo          decimal.Decimal `json:"refuerzo"`
	Recaudacion       decimal.Decimal `json:"recaudacion"`
	Chofer            string          `json:"chofer"`
	DatosCliente      map[string]any  `json:"datos_cliente"`
	Localidad         string          `json:"localidad"`
	Sucursal          string          `json:"sucursal"`
	Usuario           string          `json:"usuario"`
	RoleID            int             `json:"role_id"`
	CreatedAt         time.Time       `json:"created_at"`
}

// RemuneracionFromDomain converts a domain remuneracion to a response.
func RemuneracionFromDomain(m *domain.Remuneracion) *RemuneracionResponse {
	return &RemuneracionResponse{
		ID:                m.ID,
		Armador:           m.Armador,
		FechaCarga:        m.FechaCarga,
		FechaEntrega:      m.FechaEntrega,
		KmLineal:          m.KmLineal,
		PagoFleteroEspera: m.PagoFleteroEspera,
		Viaticos:          m.Viaticos,
		Auto:              m.Auto,
		Refuerzo:          m.Refuerzo,
		Recaudacion:       m.Recaudacion,
		Chofer:            m.Chofer,
		DatosCliente:      m.DatosCliente,
		Localidad:         m.Localidad,
		Sucursal:          m.Sucursal,
		Usuario:           m.Usuario,
		RoleID:            m.RoleID,
		CreatedAt:         m.CreatedAt,
	}
}

// RemuneracionesFromDomain converts domain remuneraciones to responses.
func RemuneracionesFromDomain(rems []*domain.Remuneracion) []*RemuneracionResponse {
	result := make([]*RemuneracionResponse, len(rems))
	for i, m := range rems {
		result[i] = RemuneracionFromDomain(m)
	}
	return result
}

// LegalResponse represents a legal record in API responses.
type LegalResponse struct {
	ID                string          `json:"id"`
	Armador           string          `json:"armador"`
	FechaCarga        time.Time       `json:"fecha_carga"`
	FechaEntrega      time.Time       `json:"fecha_entrega"`
	KmLineal          decimal.Decimal `json:"km_lineal"`
	PagoFleteroEspera decimal.Decimal `json:"pago_fletero_espera"`
	Viaticos          decimal.Decimal `json:"viaticos"`
	Auto              decimal.Decimal `json:"auto"`
	Refuerzo          decimal.Decimal `json:"refuerzo"`
	Recaudacion       decimal.Decimal `json:"recaudacion"`
	Chofer            string          `json:"chofer"`
	DatosCliente      map[string]any  `json:"datos_cliente"`
	Localidad         string          `json:"localidad"`
	Sucursal          string          `json:"sucursal"`
	Usuario           string          `json:"usuario"`
	RoleID            int             `json:"role_id"`
	CreatedAt         time.Time       `json:"created_at"`
}

// LegalFromDomain converts a domain legal record to a response.
func LegalFromDomain(l *domain.Legal) *LegalResponse {
	return &LegalResponse{
		ID:                l.ID,
		Armador:           l.Armador,
		FechaCarga:        l.FechaCarga,
		FechaEntrega:      l.FechaEntrega,
		KmLineal:          l.KmLineal,
		PagoFleteroEspera: l.PagoFleteroEspera,
		Viaticos:          l.Viaticos,
		Auto:              l.Auto,
		Refuerzo:          l.Refuerzo,
		Recaudacion:       l.Recaudacion,
		Chofer:            l.Chofer,
		DatosCliente:      l.DatosCliente,
		Localidad:         l.Localidad,
		Sucursal:          l.Sucursal,
		Usuario:           l.Usuario,
		RoleID:            l.RoleID,
		CreatedAt:         l.CreatedAt,
	}
}

// LegalesFromDomain converts domain legal records to responses.
func LegalesFromDomain(legales []*domain.Legal) []*LegalResponse {
	result := make([]*LegalResponse, len(legales))
	for i, l := range legales {
		result[i] = LegalFromDomain(l)
	}
	return result
}

// RendicionResponse represents a rendicion in API responses.
type RendicionResponse struct {
	ID             string          `json:"id"`
	Armador        string          `json:"armador"`
	RendicionFinal decimal.Decimal `json:"rendicion_final"`
	Detalle        string          `json:"detalle"`
	Localidad      string          `json:"localidad"`
	Sucursal       string          `json:"sucursal"`
	Usuario        string          `json:"usuario"`
	RoleID         int             `json:"role_id"`
	CreatedAt      time.Time       `json:"created_at"`
}

// RendicionFromDomain converts a domain rendicion to a response.
func RendicionFromDomain(r *domain.Rendicion) *RendicionResponse {
	return &RendicionResponse{
		ID:             r.ID,
		Armador:        r.Armador,
		RendicionFinal: r.RendicionFinal,
		Detalle:        r.Detalle,
		Localidad:      r.Localidad,
		Sucursal:       r.Sucursal,
		Usuario:        r.Usuario,
		RoleID:         r.RoleID,
		CreatedAt:      r.CreatedAt,
	}
}

// RendicionesFromDomain converts domain rendiciones to responses.
func RendicionesFromDomain(rendiciones []*domain.Rendicion) []*RendicionResponse {
	result := make([]*RendicionResponse, len(rendiciones))
	for i, r := range rendiciones {
		result[i] = RendicionFromDomain(r)
	}
	return result
}

// SalidaResponse represents a salida in API responses.
type SalidaResponse struct {
	ID                   string          `json:"id"`
	Chofer               string          `json:"chofer"`
	KmViajeControl       decimal.Decimal `json:"km_viaje_control"`
	KmViajeControlPrecio decimal.Decimal `json:"km_viaje_control_precio"`
	FletesKm             decimal.Decimal `json:"fletes_km"`
	FletesKmPrecio       decimal.Decimal `json:"fletes_km_precio"`
	Armadores            string          `json:"armadores"`
	TotalViaticos        decimal.Decimal `json:"total_viaticos"`
	Motivo               string          `json:"motivo"`
	TotalFlete           decimal.Decimal `json:"total_flete"`
	TotalControl         decimal.Decimal `json:"total_control"`
	Fabrica              string          `json:"fabrica"`
	Salida               string          `json:"salida"`
	Espera               string          `json:"espera"`
	ChoferVehiculo       string          `json:"chofer_vehiculo"`
	DatosCliente         map[string]any  `json:"datos_cliente"`
	Localidad            string          `json:"localidad"`
	Sucursal             string          `json:"sucursal"`
	Usuario              string          `json:"usuario"`
	RoleID               int             `json:"role_id"`
	CreatedAt            time.Time       `json:"created_at"`
}

// SalidaFromDomain converts a domain salida to a response.
func SalidaFromDomain(s *domain.Salida) *SalidaResponse {
	return &SalidaResponse{
		ID:                   s.ID,
		Chofer:               s.Chofer,
		KmViajeControl:       s.KmViajeControl,
		KmViajeControlPrecio: s.KmViajeControlPrecio,
		FletesKm:             s.FletesKm,
		FletesKmPrecio:       s.FletesKmPrecio,
		Armadores:            s.Armadores,
		TotalViaticos:        s.TotalViaticos,
		Motivo:               s.Motivo,
		TotalFlete:           s.TotalFlete,
		TotalControl:         s.TotalControl,
		Fabrica:              s.Fabrica,
		Salida:               s.Salida,
		Espera:               s.Espera,
		ChoferVehiculo:       s.ChoferVehiculo,
		DatosCliente:         s.DatosCliente,
		Localidad:            s.Localidad,
		Sucursal:             s.Sucursal,
		Usuario:              s.Usuario,
		RoleID:               s.RoleID,
		CreatedAt:            s.CreatedAt,
	}
}

// SalidasFromDomain converts domain salidas to responses.
func SalidasFromDomain(salidas []*domain.Salida) []*SalidaResponse {
	result := make([]*SalidaResponse, len(salidas))
	for i, s := range salidas {
		result[i] = SalidaFromDomain(s)
	}
	return result
}

// OrdenResponse represents a work order in API responses.
type OrdenResponse struct {
	ID           string    `json:"id"`
	Chofer       string    `json:"chofer"`
	FechaLlegada time.Time `json:"fecha_llegada"`
	OrdenFirma   string    `json:"orden_firma"`
	Finalizado   bool      `json:"finalizado"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrdenFromDomain converts a domain work order to a response.
func OrdenFromDomain(o *domain.Orden) *OrdenResponse {
	return &OrdenResponse{
		ID:           o.ID,
		Chofer:       o.Chofer,
		FechaLlegada: o.FechaLlegada,
		OrdenFirma:   o.OrdenFirma,
		Finalizado:   o.Finalizado,
		CreatedAt:    o.CreatedAt,
	}
}

// OrdenesFromDomain converts domain work orders to responses.
func OrdenesFromDomain(ordenes []*domain.Orden) []*OrdenResponse {
	result := make([]*OrdenResponse, len(ordenes))
	for i, o := range ordenes {
		result[i] = OrdenFromDomain(o)
	}
	return result
}

// ChoferResponse represents a driver in API responses.
type ChoferResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Vehiculo  string    `json:"vehiculo"`
	Telefono  string    `json:"telefono"`
	Localidad string    `json:"localidad"`
	Sucursal  string    `json:"sucursal"`
	CreatedAt time.Time `json:"created_at"`
}

// ChoferFromDomain converts a domain driver to a response.
func ChoferFromDomain(c *domain.Chofer) *ChoferResponse {
	return &ChoferResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Vehiculo:  c.Vehiculo,
		Telefono:  c.Telefono,
		Localidad: c.Localidad,
		Sucursal:  c.Sucursal,
		CreatedAt: c.CreatedAt,
	}
}

// ChoferesFromDomain converts domain drivers to responses.
func ChoferesFromDomain(choferes []*domain.Chofer) []*ChoferResponse {
	result := make([]*ChoferResponse, len(choferes))
	for i, c := range choferes {
		result[i] = ChoferFromDomain(c)
	}
	return result
}

// UserResponse represents an account in API responses. The password hash
// never leaves the server.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	RoleID    int       `json:"role_id"`
	Localidad string    `json:"localidad"`
	Sucursal  string    `json:"sucursal"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		RoleID:    u.RoleID,
		Localidad: u.Localidad,
		Sucursal:  u.Sucursal,
		CreatedAt: u.CreatedAt,
	}
}

// MovementResponse pairs a mutated money entity with the caja snapshot
// taken in the same transaction.
type MovementResponse[T any] struct {
	Entity T             `json:"entity"`
	Caja   *CajaResponse `json:"caja"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
