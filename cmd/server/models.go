package main

import (
	"time"

	"github.com/brokerline/docengine/docs"
	"github.com/brokerline/docengine/intake"
)

// API request and response models

// CreateIntakeRequest is the request body for creating an intake.
type CreateIntakeRequest struct {
	ClientFirstName string       `json:"clientFirstName"`
	ClientLastName  string       `json:"clientLastName"`
	ClientEmail     string       `json:"clientEmail"`
	ClientPhone     string       `json:"clientPhone"`
	BrokerName      string       `json:"brokerName"`
	Answers         docs.Answers `json:"answers"`
}

// EvaluateResponse is the response for a stateless engine run.
type EvaluateResponse struct {
	Tags           []string                   `json:"tags"`
	Documents      []docs.DocumentRequirement `json:"documents"`
	EvaluationTime string                     `json:"evaluationTime"`
}

// IntakeSummary is one entry in the intake listing.
type IntakeSummary struct {
	ID              string          `json:"id"`
	ClientFirstName string          `json:"clientFirstName"`
	ClientLastName  string          `json:"clientLastName"`
	BrokerName      string          `json:"brokerName,omitempty"`
	Progress        intake.Progress `json:"progress"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// IntakeResponse is the full intake record with upload state.
type IntakeResponse struct {
	*intake.Intake
	UploadedDocIDs []string        `json:"uploadedDocIds"`
	Progress       intake.Progress `json:"progress"`
}

// ErrorResponse is the error payload for all non-2xx responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
