package endpoint

import (
	"github.com/ariebrainware/medi-help/model"
	"github.com/ariebrainware/medi-help/util"
	"github.com/gin-gonic/gin"
)

type CatalogResponse struct {
	Symptoms           []string      `json:"symptoms"`
	PrevIllnesses      []string      `json:"prevIllnesses"`
	Tests              []string      `json:"tests"`
	Themes             []model.Theme `json:"themes"`
	PrescriptionThemes []string      `json:"prescriptionThemes"`
}

// Catalog returns the pick lists the diagnosis form and profile page offer.
func Catalog(c *gin.Context) {
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Catalog retrieved",
		Data: CatalogResponse{
			Symptoms:           model.DefaultSymptoms,
			PrevIllnesses:      model.PrevIllnesses,
			Tests:              model.DefaultTests,
			Themes:             model.Themes,
			PrescriptionThemes: model.PrescriptionThemes,
		},
	})
}

func GetSettings(c *gin.Context) {
	ctrl, ok := getControllerOrRespond(c)
	if !ok {
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Settings retrieved", Data: ctrl.Settings()})
}

func ListPrices(c *gin.Context) {
	ctrl, ok := getControllerOrRespond(c)
	if !ok {
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Prices retrieved", Data: ctrl.Prices()})
}
