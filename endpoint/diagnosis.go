package endpoint

import (
	"github.com/ariebrainware/medi-help/model"
	"github.com/ariebrainware/medi-help/util"
	"github.com/gin-gonic/gin"
)

type MedicineQuery struct {
	Query string `json:"query" binding:"required,notblank" example:"Napa"`
}

// Diagnose godoc
// @Summary      Request an AI prescription
// @Description  Sends the medical record to the AI and stores the prescription as the newest of at most five
// @Tags         Diagnosis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.MedicalRecord true "Medical record"
// @Success      200 {object} util.APIResponse{data=model.Prescription} "Prescription created"
// @Failure      400 {object} util.APIResponse "No symptoms given"
// @Failure      409 {object} util.APIResponse "A diagnosis is already running"
// @Failure      502 {object} util.APIResponse "AI service failed"
// @Router       /diagnosis [post]
func Diagnose(c *gin.Context) {
	var record model.MedicalRecord
	if !bindJSONOrRespond(c, &record, "Invalid medical record") {
		return
	}
	ctrl, userID, ok := callerOrRespond(c)
	if !ok {
		return
	}
	p, err := ctrl.Diagnose(c.Request.Context(), userID, record)
	if err != nil {
		respondError(c, err, "Diagnosis failed")
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Prescription created", Data: p})
}

func ListPrescriptions(c *gin.Context) {
	ctrl, userID, ok := callerOrRespond(c)
	if !ok {
		return
	}
	list, err := ctrl.Prescriptions(userID)
	if err != nil {
		respondError(c, err, "Prescriptions not found")
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Prescriptions retrieved", Data: list})
}

// MedicineInfo answers 200 even when the lookup failed; the text says so.
func MedicineInfo(c *gin.Context) {
	var req MedicineQuery
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}
	ctrl, ok := getControllerOrRespond(c)
	if !ok {
		return
	}
	info := ctrl.MedicineInfo(c.Request.Context(), req.Query)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Medicine info", Data: map[string]interface{}{"query": req.Query, "info": info}})
}

// MedicineAlternatives answers an empty list when the lookup failed.
func MedicineAlternatives(c *gin.Context) {
	var req MedicineQuery
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}
	ctrl, ok := getControllerOrRespond(c)
	if !ok {
		return
	}
	alts := ctrl.Alternatives(c.Request.Context(), req.Query)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Alternative brands", Data: map[string]interface{}{"query": req.Query, "alternatives": alts}})
}
