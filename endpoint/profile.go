package endpoint

import (
	"github.com/ariebrainware/medi-help/controller"
	"github.com/ariebrainware/medi-help/model"
	"github.com/ariebrainware/medi-help/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ProfileRequest struct {
	ID         string `json:"id" binding:"required,notblank" example:"rahim01"`
	Name       string `json:"name" example:"Rahim Uddin"`
	Password   string `json:"password" binding:"required,notblank" example:"secret"`
	Age        string `json:"age" example:"42"`
	Gender     string `json:"gender" example:"পুরুষ"`
	BloodGroup string `json:"bloodGroup" example:"B+"`
	Address    string `json:"address" example:"Mirpur, Dhaka"`
	Mobile     string `json:"mobile" example:"01700000000"`
	ProfilePic string `json:"profilePic"`
	ThemeIndex int    `json:"themeIndex" binding:"min=0,max=9" example:"0"`
}

// GetProfile returns the logged-in patient without the password.
func GetProfile(c *gin.Context) {
	ctrl, userID, ok := callerOrRespond(c)
	if !ok {
		return
	}
	u, err := ctrl.User(userID)
	if err != nil {
		respondError(c, err, "Profile not found")
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Profile retrieved", Data: publicUser(u)})
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Replace the profile. A new id re-keys the patient's orders and returns a new token.
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ProfileRequest true "Full profile"
// @Success      200 {object} util.APIResponse "Profile updated"
// @Failure      400 {object} util.APIResponse "Blank credentials, bad theme or id taken"
// @Router       /me [patch]
func UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}
	ctrl, oldID, ok := callerOrRespond(c)
	if !ok {
		return
	}

	u, err := ctrl.UpdateProfile(c.Request.Context(), oldID, controller.ProfileUpdate{
		ID:         req.ID,
		Name:       req.Name,
		Password:   req.Password,
		Age:        req.Age,
		Gender:     req.Gender,
		BloodGroup: req.BloodGroup,
		Address:    req.Address,
		Mobile:     req.Mobile,
		ProfilePic: req.ProfilePic,
		ThemeIndex: req.ThemeIndex,
	})
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}

	data := map[string]interface{}{"user": publicUser(u)}
	if u.ID != oldID {
		if err := util.InvalidateUserSessions(c.Request.Context(), oldID); err != nil {
			log.Warn().Err(err).Str("user_id", oldID).Msg("invalidate sessions after id change")
		}
		util.LogIDChanged(oldID, u.ID, c.ClientIP())
		resp, ok := issueSession(c, controller.Session{UserID: u.ID, Role: model.RolePatient, User: &u})
		if !ok {
			return
		}
		data["token"] = resp.Token
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Profile updated", Data: data})
}
