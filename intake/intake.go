// Package intake persists borrower case records: the questionnaire
// answers, the engine result snapshotted at creation time, and the
// upload status tracked against that snapshot.
package intake

import (
	"time"

	"github.com/brokerline/docengine/docs"
)

// Intake is one borrower case record. RequiredDocs is the engine output
// captured when the intake was created; later catalog or rule changes
// never retroactively alter it — the snapshot is authoritative once
// persisted.
type Intake struct {
	ID              string `json:"id"`
	ClientFirstName string `json:"clientFirstName"`
	ClientLastName  string `json:"clientLastName"`
	ClientEmail     string `json:"clientEmail,omitempty"`
	ClientPhone     string `json:"clientPhone,omitempty"`
	BrokerName      string `json:"brokerName,omitempty"`

	Answers      docs.Answers               `json:"answers"`
	Tags         []string                   `json:"tags"`
	RequiredDocs []docs.DocumentRequirement `json:"requiredDocs"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasRequiredDoc reports whether docID is part of the intake's snapshot.
func (in *Intake) HasRequiredDoc(docID string) bool {
	for _, d := range in.RequiredDocs {
		if d.ID == docID {
			return true
		}
	}
	return false
}

// Progress is the upload completion state of an intake.
type Progress struct {
	Required int `json:"required"`
	Uploaded int `json:"uploaded"`
}

// ComputeProgress counts how many of the intake's required documents
// appear in uploaded. Ids outside the snapshot are ignored.
func ComputeProgress(in *Intake, uploaded []string) Progress {
	p := Progress{Required: len(in.RequiredDocs)}
	for _, id := range uploaded {
		if in.HasRequiredDoc(id) {
			p.Uploaded++
		}
	}
	return p
}
