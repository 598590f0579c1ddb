package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fletero/backoffice/internal/usecase"
)

// SignupRequest represents a request to create an account.
type SignupRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	RoleID    int    `json:"role_id"`
	Localidad string `json:"localidad"`
	Sucursal  string `json:"sucursal"`
}

// ToUseCaseInput converts to use case input.
func (r *SignupRequest) ToUseCaseInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Username:  r.Username,
		Email:     r.Email,
		Password:  r.Password,
		RoleID:    r.RoleID,
		Localidad: r.Localidad,
		Sucursal:  r.Sucursal,
	}
}

// SigninRequest represents a credential check request.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateIngresoRequest represents a request to create an ingreso.
type CreateIngresoRequest struct {
	Tipo        string          `json:"tipo"`
	Observacion string          `json:"observacion"`
	Recaudacion decimal.Decimal `json:"recaudacion"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateIngresoRequest) ToUseCaseInput() usecase.CreateIngresoInput {
	return usecase.CreateIngresoInput{
		Tipo:        r.Tipo,
		Observacion: r.Observacion,
		Recaudacion: r.Recaudacion,
	}
}

// UpdateIngresoRequest represents a request to update an ingreso.
type UpdateIngresoRequest struct {
	Tipo        string          `json:"tipo"`
	Recaudacion decimal.Decimal `json:"recaudacion"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateIngresoRequest) ToUseCaseInput() usecase.UpdateIngresoInput {
	return usecase.UpdateIngresoInput{
		Tipo:        r.Tipo,
		Recaudacion: r.Recaudacion,
	}
}

// CreateGastoRequest represents a request to create a gasto.
type CreateGastoRequest struct {
	Tipo        string          `json:"tipo"`
	Observacion string          `json:"observacion"`
	Recaudacion decimal.Decimal `json:"recaudacion"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateGastoRequest) ToUseCaseInput() usecase.CreateGastoInput {
	return usecase.CreateGastoInput{
		Tipo:        r.Tipo,
		Observacion: r.Observacion,
		Recaudacion: r.Recaudacion,
	}
}

// UpdateGastoRequest represents a request to update a gasto.
type UpdateGastoRequest struct {
	Tipo        string          `json:"tipo"`
	Recaudacion decimal.Decimal `json:"recaudacion"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateGastoRequest) ToUseCaseInput() usecase.UpdateGastoInput {
	return usecase.UpdateGastoInput{
		Tipo:        r.Tipo,
		Recaudacion: r.Recaudacion,
	}
}

// RemuneracionRequest carries the trip payment field set, shared by the
// remuneracion and legal endpoints for both create and update.
type RemuneracionRequest struct {
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
}

// ToUseCaseInput converts to use case input.
func (r *RemuneracionRequest) ToUseCaseInput() usecase.RemuneracionInput {
	return usecase.RemuneracionInput{
		Armador:           r.Armador,
		FechaCarga:        r.FechaCarga,
		FechaEntrega:      r.FechaEntrega,
		KmLineal:          r.KmLineal,
		PagoFleteroEspera: r.PagoFleteroEspera,
		Viaticos:          r.Viaticos,
		Auto:              r.Auto,
		Refuerzo:          r.Refuerzo,
		Recaudacion:       r.Recaudacion,
		Chofer:            r.Chofer,
		DatosCliente:      r.DatosCliente,
	}
}

// RendicionRequest represents a request to create or update a rendicion.
type RendicionRequest struct {
	Armador        string          `json:"armador"`
	RendicionFinal decimal.Decimal `json:"rendicion_final"`
	Detalle        string          `json:"detalle"`
}

// ToUseCaseInput converts to use case input.
func (r *RendicionRequest) ToUseCaseInput() usecase.RendicionInput {
	return usecase.RendicionInput{
		Armador:        r.Armador,
		RendicionFinal: r.RendicionFinal,
		Detalle:        r.Detalle,
	}
}

// SalidaRequest represents a request to create or update a salida.
type SalidaRequest struct {
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
}

// ToUseCaseInput converts to use case input.
func (r *SalidaRequest) ToUseCaseInput() usecase.SalidaInput {
	return usecase.SalidaInput{
		Chofer:               r.Chofer,
		KmViajeControl:       r.KmViajeControl,
		KmViajeControlPrecio: r.KmViajeControlPrecio,
		FletesKm:             r.FletesKm,
		FletesKmPrecio:       r.FletesKmPrecio,
		Armadores:            r.Armadores,
		TotalViaticos:        r.TotalViaticos,
		Motivo:               r.Motivo,
		TotalFlete:           r.TotalFlete,
		TotalControl:         r.TotalControl,
		Fabrica:              r.Fabrica,
		Salida:               r.Salida,
		Espera:               r.Espera,
		ChoferVehiculo:       r.ChoferVehiculo,
		DatosCliente:         r.DatosCliente,
	}
}

// OrdenRequest represents a request to create or update a work order.
type OrdenRequest struct {
	Chofer       string    `json:"chofer"`
	FechaLlegada time.Time `json:"fecha_llegada"`
	OrdenFirma   string    `json:"orden_firma"`
	Finalizado   bool      `json:"finalizado"`
}

// ToUseCaseInput converts to use case input.
func (r *OrdenRequest) ToUseCaseInput() usecase.OrdenInput {
	return usecase.OrdenInput{
		Chofer:       r.Chofer,
		FechaLlegada: r.FechaLlegada,
		OrdenFirma:   r.OrdenFirma,
		Finalizado:   r.Finalizado,
	}
}

// ChoferRequest represents a request to create or update a driver.
type ChoferRequest struct {
	Nombre   string `json:"nombre"`
	Vehiculo string `json:"vehiculo"`
	Telefono string `json:"telefono"`
}

// ToUseCaseInput converts to use case input.
func (r *ChoferRequest) ToUseCaseInput() usecase.ChoferInput {
	return usecase.ChoferInput{
		Nombre:   r.Nombre,
		Vehiculo: r.Vehiculo,
		Telefono: r.Telefono,
	}
}

// ProvisionCajaRequest represents a request to provision a location's caja.
type ProvisionCajaRequest struct {
	Total decimal.Decimal `json:"total"`
}

// ToUseCaseInput converts to use case input.
func (r *ProvisionCajaRequest) ToUseCaseInput() usecase.ProvisionCajaInput {
	return usecase.ProvisionCajaInput{Total: r.Total}
}

// SetCajaTotalRequest represents an admin override of a caja total.
type SetCajaTotalRequest struct {
	Total decimal.Decimal `json:"total"`
}
