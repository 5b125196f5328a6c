package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/satlantas/laka-report-api/config"
	"github.com/satlantas/laka-report-api/models"
)

// AddEntityHandler appends a vehicle or pedestrian to a report
func (re Report) AddEntityHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]

	var entity models.InvolvedEntity
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if entity.Type != models.EntityVehicle && entity.Type != models.EntityPedestrian {
		config.ErrorStatus("invalid entity type", http.StatusBadRequest, w, fmt.Errorf("type must be %q or %q", models.EntityVehicle, models.EntityPedestrian))
		return
	}
	entity.ID = uuid.New().String()

	report, err := re.mutateReport(context.Background(), reportID, func(rep *models.AccidentReport) error {
		rep.InvolvedEntities = append(rep.InvolvedEntities, entity)
		return nil
	})
	if err != nil {
		config.ErrorStatus("failed to add entity", http.StatusNotFound, w, err)
		return
	}

	BroadcastReportUpdate("report_updated", *report)
	writeReportJSON(w, http.StatusCreated, report)
}

// UpdateEntityHandler replaces the fields of one involved entity
func (re Report) UpdateEntityHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]
	entityID := mux.Vars(r)["entity_id"]

	var entity models.InvolvedEntity
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	report, err := re.mutateReport(context.Background(), reportID, func(rep *models.AccidentReport) error {
		existing := rep.FindEntity(entityID)
		if existing == nil {
			return fmt.Errorf("no entity with id %s", entityID)
		}
		entity.ID = entityID
		if entity.Type == "" {
			entity.Type = existing.Type
		}
		*existing = entity
		return nil
	})
	if err != nil {
		config.ErrorStatus("failed to update entity", http.StatusNotFound, w, err)
		return
	}

	BroadcastReportUpdate("report_updated", *report)
	writeReportJSON(w, http.StatusOK, report)
}

// DeleteEntityHandler removes an involved entity. Parties that pointed
// at it keep existing but lose the reference.
func (re Report) DeleteEntityHandler(w http.ResponseWriter, r *http.Request) {
	reportID := mux.Vars(r)["report_id"]
	entityID := mux.Vars(r)["entity_id"]

	report, err := re.mutateReport(context.Background(), reportID, func(rep *models.AccidentReport) error {
		idx := -1
		for i := range rep.InvolvedEntities {
			if rep.InvolvedEntities[i].ID == entityID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("no entity with id %s", entityID)
		}
		rep.InvolvedEntities = append(rep.InvolvedEntities[:idx], rep.InvolvedEntities[idx+1:]...)
		for i := range rep.PihakTerlibat {
			if rep.PihakTerlibat[i].InvolvedEntityID == entityID {
				rep.PihakTerlibat[i].InvolvedEntityID = ""
			}
		}
		return nil
	})
	if err != nil {
		config.ErrorStatus("failed to delete entity", http.StatusNotFound, w, err)
		return
	}

	BroadcastReportUpdate("report_updated", *report)
	writeReportJSON(w, http.StatusOK, report)
}

func writeReportJSON(w http.ResponseWriter, status int, report *models.AccidentReport) {
	b, err := json.Marshal(report)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(status)
	w.Write(b)
}
