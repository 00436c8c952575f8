package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motomeet/mm/internal/models"
	"github.com/motomeet/mm/internal/services"
)

func CreateGarage(g *services.GarageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}

		var input models.CreateGarageInput
		if !bindJSON(c, &input) {
			return
		}

		garage, err := g.CreateGarage(c.Request.Context(), identity.ID, &input)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusCreated, garage)
	}
}

func GetMyGarage(g *services.GarageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}

		garage, err := g.GetMyGarage(c.Request.Context(), identity.ID)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, garage)
	}
}

func UpdateGarage(g *services.GarageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		var input models.UpdateGarageInput
		if !bindJSON(c, &input) {
			return
		}

		garage, err := g.UpdateGarage(c.Request.Context(), identity, id, &input)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, garage)
	}
}

// GarageDashboard serves the aggregated garage view; the underlying
// reads run in parallel.
func GarageDashboard(g *services.GarageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		dashboard, err := g.Dashboard(c.Request.Context(), identity, id)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, dashboard)
	}
}

func AddMotorcycle(g *services.GarageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		garageID, ok := pathID(c, "id")
		if !ok {
			return
		}

		var input models.CreateMotorcycleInput
		if !bindJSON(c, &input) {
			return
		}

		moto, err := g.AddMotorcycle(c.Request.Context(), identity, garageID, &input)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusCreated, moto)
	}
}

func ListMotorcycles(g *services.GarageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		garageID, ok := pathID(c, "id")
		if !ok {
			return
		}

		motos, err := g.ListMotorcycles(c.Request.Context(), identity, garageID)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, motos)
	}
}

func GetMotorcycle(g *services.GarageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		moto, err := g.GetMotorcycle(c.Request.Context(), identity, id)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, moto)
	}
}

func UpdateMotorcycle(g *services.GarageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		var input models.UpdateMotorcycleInput
		if !bindJSON(c, &input) {
			return
		}

		moto, err := g.UpdateMotorcycle(c.Request.Context(), identity, id, &input)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, moto)
	}
}

func DeleteMotorcycle(g *services.GarageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		if err := g.DeleteMotorcycle(c.Request.Context(), identity, id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func AddMaintenanceLog(g *services.GarageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		motorcycleID, ok := pathID(c, "id")
		if !ok {
			return
		}

		var input models.CreateMaintenanceInput
		if !bindJSON(c, &input) {
			return
		}

		log, err := g.AddMaintenanceLog(c.Request.Context(), identity, motorcycleID, &input)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusCreated, log)
	}
}

func ListMaintenanceLogs(g *services.GarageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		motorcycleID, ok := pathID(c, "id")
		if !ok {
			return
		}

		logs, err := g.ListMaintenanceLogs(c.Request.Context(), identity, motorcycleID)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, logs)
	}
}

func AddGarageTask(g *services.GarageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		garageID, ok := pathID(c, "id")
		if !ok {
			return
		}

		var input models.CreateGarageTaskInput
		if !bindJSON(c, &input) {
			return
		}

		task, err := g.AddTask(c.Request.Context(), identity, garageID, &input)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusCreated, task)
	}
}

func ListGarageTasks(g *services.GarageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		garageID, ok := pathID(c, "id")
		if !ok {
			return
		}

		tasks, err := g.ListTasks(c.Request.Context(), identity, garageID)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, tasks)
	}
}

func DeleteGarageTask(g *services.GarageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		garageID, ok := pathID(c, "id")
		if !ok {
			return
		}
		taskID, ok := pathID(c, "taskId")
		if !ok {
			return
		}

		if err := g.DeleteTask(c.Request.Context(), identity, garageID, taskID); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func AddGarageDocument(g *services.GarageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		garageID, ok := pathID(c, "id")
		if !ok {
			return
		}

		var input models.CreateGarageDocumentInput
		if !bindJSON(c, &input) {
			return
		}

		doc, err := g.AddDocument(c.Request.Context(), identity, garageID, &input)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusCreated, doc)
	}
}

func ListGarageDocuments(g *services.GarageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		garageID, ok := pathID(c, "id")
		if !ok {
			return
		}

		docs, err := g.ListDocuments(c.Request.Context(), identity, garageID)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, docs)
	}
}

func DeleteGarageDocument(g *services.GarageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		garageID, ok := pathID(c, "id")
		if !ok {
			return
		}
		docID, ok := pathID(c, "docId")
		if !ok {
			return
		}

		if err := g.DeleteDocument(c.Request.Context(), identity, garageID, docID); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
