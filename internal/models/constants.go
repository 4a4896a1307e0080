// Package models contains data types and constants shared by the Waste Not client.
package models

// Endpoint paths, relative to the configured base URL
const (
	EndpointChat         = "/chat"
	EndpointFoodBanks    = "/foodbanks"
	EndpointDriverPickup = "/driver-pickup"
)

// DefaultBaseURL is used when no base URL is configured
const DefaultBaseURL = "http://localhost:8123"

// Session identifiers are drawn from [MinSessionID, MaxSessionID]
const (
	MinSessionID = 1
	MaxSessionID = 10000
)

// DefaultHeaders returns the headers sent with every request
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
}
