package handlers

import (
	"strings"
)

type FieldValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateCredentials(c CredentialsRequest) []FieldValidationError {
	errs := []FieldValidationError{}
	if strings.TrimSpace(c.Username) == "" {
		errs = append(errs, FieldValidationError{Field: "Username", Description: "Username is required"})
	} else if len(c.Username) < 3 {
		errs = append(errs, FieldValidationError{Field: "Username", Description: "Username must have at least 3 characters"})
	}
	if c.Password == "" {
		errs = append(errs, FieldValidationError{Field: "Password", Description: "Password is required"})
	} else if len(c.Password) < 6 {
		errs = append(errs, FieldValidationError{Field: "Password", Description: "Password must have at least 6 characters"})
	}
	return errs
}

var validPeriods = map[string]bool{
	"7d": true, "30d": true, "90d": true, "monthly": true, "quarterly": true,
}

func validateSettings(req SettingsRequest) []FieldValidationError {
	errs := []FieldValidationError{}
	if req.Period != nil && !validPeriods[*req.Period] {
		errs = append(errs, FieldValidationError{Field: "Period", Description: "Period must be one of 7d, 30d, 90d, monthly, quarterly"})
	}
	if req.ForecastHorizon != nil && (*req.ForecastHorizon < 1 || *req.ForecastHorizon > 52) {
		errs = append(errs, FieldValidationError{Field: "ForecastHorizon", Description: "Forecast horizon must be between 1 and 52 weeks"})
	}
	if req.ConfidenceInterval != nil && (*req.ConfidenceInterval < 50 || *req.ConfidenceInterval > 99) {
		errs = append(errs, FieldValidationError{Field: "ConfidenceInterval", Description: "Confidence interval must be between 50 and 99"})
	}
	if req.DeliveryThreshold != nil && (*req.DeliveryThreshold < 0 || *req.DeliveryThreshold > 100) {
		errs = append(errs, FieldValidationError{Field: "DeliveryThreshold", Description: "Delivery threshold must be between 0 and 100"})
	}
	if req.RefreshSeconds != nil && *req.RefreshSeconds < 5 {
		errs = append(errs, FieldValidationError{Field: "RefreshSeconds", Description: "Refresh interval cannot be below 5 seconds"})
	}
	return errs
}
