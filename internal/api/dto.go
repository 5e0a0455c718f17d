package api

import (
	"github.com/lifepath/projector/internal/domain"
	"github.com/shopspring/decimal"
)

// RunRequest carries optional run parameters; unset fields use the server defaults.
type RunRequest struct {
	Parameters *ParametersDTO `json:"parameters,omitempty"`
}

// ParametersDTO is a partial override of the default simulation parameters.
type ParametersDTO struct {
	Years         *int             `json:"years,omitempty"`
	InflationRate *decimal.Decimal `json:"inflation_rate,omitempty"`
	TaxRate       *decimal.Decimal `json:"tax_rate,omitempty"`
	Policies      *domain.Policies `json:"policies,omitempty"`
}

// apply overlays the set fields on base.
func (p *ParametersDTO) apply(base domain.SimulationParameters) domain.SimulationParameters {
	if p == nil {
		return base
	}
	if p.Years != nil {
		base.Years = *p.Years
	}
	if p.InflationRate != nil {
		base.InflationRate = *p.InflationRate
	}
	if p.TaxRate != nil {
		base.TaxRate = *p.TaxRate
	}
	if p.Policies != nil {
		base.Policies = *p.Policies
	}
	return base
}

// CompareRequest names two stored scenarios, or carries them inline.
type CompareRequest struct {
	FirstID    string           `json:"first_id,omitempty"`
	SecondID   string           `json:"second_id,omitempty"`
	First      *domain.Scenario `json:"first,omitempty"`
	Second     *domain.Scenario `json:"second,omitempty"`
	Parameters *ParametersDTO   `json:"parameters,omitempty"`
}

// SweepRequest is a one-parameter sensitivity run. Either Values or the
// From/To/Step range must be given.
type SweepRequest struct {
	Parameter  string            `json:"parameter"`
	Values     []decimal.Decimal `json:"values,omitempty"`
	From       *decimal.Decimal  `json:"from,omitempty"`
	To         *decimal.Decimal  `json:"to,omitempty"`
	Step       *decimal.Decimal  `json:"step,omitempty"`
	Parameters *ParametersDTO    `json:"parameters,omitempty"`
}

// ListResponse wraps collection results.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
