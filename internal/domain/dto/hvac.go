package dto

import "github.com/voltplan/loadcalc/internal/domain"

// HVACParams are the run options for a cooling-load calculation. Zero values
// take the documented defaults.
type HVACParams struct {
	City            string  `json:"city,omitempty"`             // default "mumbai"
	Season          string  `json:"season,omitempty"`           // summer|monsoon|winter, default summer
	SafetyFactor    float64 `json:"safety_factor,omitempty"`    // default 1.10
	DuctLossFactor  float64 `json:"duct_loss_factor,omitempty"` // default 1.05
	DiversityFactor float64 `json:"diversity_factor,omitempty"` // default 1.0
}

// HVACRequest is the api body for POST /calc/hvac.
type HVACRequest struct {
	Params HVACParams    `json:"params"`
	Rooms  []domain.Room `json:"rooms" validate:"required,min=1,dive"`
}
