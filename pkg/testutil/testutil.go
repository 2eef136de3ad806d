// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/bizforge/business-forecast/internal/engine"
)

// SaaSRequest returns the canonical SaaS generation request used across
// integration-style tests.
func SaaSRequest() engine.Request {
	return engine.Request{
		UserID:    42,
		ProjectID: 7,
		Title:     "Plateforme RH",
		Sector:    "SaaS B2B plateforme",
		Objective: "croissance modérée",
	}
}

// EcommerceRequest returns a funnel-dynamics generation request.
func EcommerceRequest() engine.Request {
	return engine.Request{
		UserID:    11,
		ProjectID: 3,
		Title:     "Boutique créateurs",
		Sector:    "e-commerce mode",
		Objective: "levée seed",
	}
}

// ServicesRequest returns a capacity-dynamics generation request.
func ServicesRequest() engine.Request {
	return engine.Request{
		UserID:    5,
		ProjectID: 21,
		Title:     "Atelier mobile",
		Sector:    "services à domicile",
		Objective: "",
	}
}
