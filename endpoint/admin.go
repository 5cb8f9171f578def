package endpoint

import (
	"github.com/ariebrainware/medi-help/model"
	"github.com/ariebrainware/medi-help/util"
	"github.com/gin-gonic/gin"
)

// Dashboard godoc
// @Summary      Admin dashboard counts
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse{data=repository.Stats} "Dashboard"
// @Router       /admin/dashboard [get]
func Dashboard(c *gin.Context) {
	ctrl, ok := getControllerOrRespond(c)
	if !ok {
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Dashboard retrieved", Data: ctrl.Dashboard()})
}

func ListUsers(c *gin.Context) {
	ctrl, ok := getControllerOrRespond(c)
	if !ok {
		return
	}
	users := publicUsers(ctrl.Users())
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Users retrieved",
		Data: map[string]interface{}{"total": len(users), "users": users},
	})
}

// UpdateSettings replaces the whole settings record. The body is decoded over
// the current settings, so fields it omits keep their stored value.
func UpdateSettings(c *gin.Context) {
	ctrl, ok := getControllerOrRespond(c)
	if !ok {
		return
	}
	s := ctrl.Settings()
	if !bindJSONOrRespond(c, &s, "Invalid settings payload") {
		return
	}
	saved, err := ctrl.UpdateSettings(c.Request.Context(), s)
	if err != nil {
		respondError(c, err, "Failed to update settings")
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Settings updated", Data: saved})
}

func AddPrice(c *gin.Context) {
	var p model.MedicinePrice
	if !bindJSONOrRespond(c, &p, "Invalid price payload") {
		return
	}
	ctrl, ok := getControllerOrRespond(c)
	if !ok {
		return
	}
	saved, err := ctrl.AddPrice(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, "Failed to add price")
		return
	}
	util.CallCreated(c, util.APISuccessParams{Msg: "Price added", Data: saved})
}

// ReplacePrices swaps the whole price list.
func ReplacePrices(c *gin.Context) {
	var prices []model.MedicinePrice
	if !bindJSONOrRespond(c, &prices, "Invalid price list") {
		return
	}
	ctrl, ok := getControllerOrRespond(c)
	if !ok {
		return
	}
	saved, err := ctrl.ReplacePrices(c.Request.Context(), prices)
	if err != nil {
		respondError(c, err, "Failed to replace prices")
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Prices replaced", Data: saved})
}

func DeletePrice(c *gin.Context) {
	ctrl, ok := getControllerOrRespond(c)
	if !ok {
		return
	}
	if err := ctrl.DeletePrice(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete price")
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Price deleted", Data: map[string]interface{}{}})
}
