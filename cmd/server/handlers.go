package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/brokerline/docengine/docs"
	"github.com/brokerline/docengine/intake"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":      "healthy",
		"catalogSize": s.engine.Catalog().Len(),
	})
}

// handleEvaluate runs the engine statelessly over posted answers.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var answers docs.Answers
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	startTime := time.Now()
	result, err := s.engine.Run(&answers)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "evaluation failed", err)
		return
	}

	respondJSON(w, http.StatusOK, EvaluateResponse{
		Tags:           result.Tags,
		Documents:      result.Documents,
		EvaluationTime: time.Since(startTime).String(),
	})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"documents": s.engine.Catalog().All(),
	})
}

func (s *Server) handleCreateIntake(w http.ResponseWriter, r *http.Request) {
	var req CreateIntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.ClientFirstName == "" || req.ClientLastName == "" {
		respondError(w, http.StatusBadRequest, "clientFirstName and clientLastName are required", nil)
		return
	}

	result, err := s.engine.Run(&req.Answers)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "evaluation failed", err)
		return
	}

	in := &intake.Intake{
		ID:              uuid.New().String(),
		ClientFirstName: req.ClientFirstName,
		ClientLastName:  req.ClientLastName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		BrokerName:      req.BrokerName,
		Answers:         req.Answers,
		Tags:            result.Tags,
		RequiredDocs:    result.Documents,
	}

	if err := s.store.Create(in); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create intake", err)
		return
	}

	respondJSON(w, http.StatusCreated, IntakeResponse{
		Intake:         in,
		UploadedDocIDs: []string{},
		Progress:       intake.ComputeProgress(in, nil),
	})
}

func (s *Server) handleListIntakes(w http.ResponseWriter, r *http.Request) {
	intakes, err := s.store.List()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list intakes", err)
		return
	}

	summaries := make([]IntakeSummary, 0, len(intakes))
	for _, in := range intakes {
		uploaded, err := s.store.UploadedDocIDs(in.ID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to load uploads", err)
			return
		}
		summaries = append(summaries, IntakeSummary{
			ID:              in.ID,
			ClientFirstName: in.ClientFirstName,
			ClientLastName:  in.ClientLastName,
			BrokerName:      in.BrokerName,
			Progress:        intake.ComputeProgress(in, uploaded),
			CreatedAt:       in.CreatedAt,
			UpdatedAt:       in.UpdatedAt,
		})
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"intakes": summaries,
	})
}

func (s *Server) handleGetIntake(w http.ResponseWriter, r *http.Request) {
	intakeID := chi.URLParam(r, "intakeId")

	in, err := s.store.Get(intakeID)
	if err != nil {
		respondError(w, http.StatusNotFound, "intake not found", err)
		return
	}

	uploaded, err := s.store.UploadedDocIDs(intakeID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load uploads", err)
		return
	}

	respondJSON(w, http.StatusOK, IntakeResponse{
		Intake:         in,
		UploadedDocIDs: uploaded,
		Progress:       intake.ComputeProgress(in, uploaded),
	})
}

func (s *Server) handleDeleteIntake(w http.ResponseWriter, r *http.Request) {
	intakeID := chi.URLParam(r, "intakeId")

	if err := s.store.Delete(intakeID); err != nil {
		respondError(w, http.StatusNotFound, "intake not found", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMarkUploaded(w http.ResponseWriter, r *http.Request) {
	intakeID := chi.URLParam(r, "intakeId")
	docID := chi.URLParam(r, "docId")

	if err := s.store.MarkUploaded(intakeID, docID); err != nil {
		respondStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearUploaded(w http.ResponseWriter, r *http.Request) {
	intakeID := chi.URLParam(r, "intakeId")
	docID := chi.URLParam(r, "docId")

	if err := s.store.ClearUploaded(intakeID, docID); err != nil {
		respondStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, intake.ErrNotFound):
		respondError(w, http.StatusNotFound, "intake not found", err)
	case errors.Is(err, intake.ErrDocNotRequired):
		respondError(w, http.StatusBadRequest, "document is not required for this intake", err)
	default:
		respondError(w, http.StatusInternalServerError, "store operation failed", err)
	}
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	respondJSON(w, status, resp)
}
