package endpoint

import (
	"github.com/ariebrainware/medi-help/controller"
	"github.com/ariebrainware/medi-help/middleware"
	"github.com/ariebrainware/medi-help/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type RegisterRequest struct {
	ID       string `json:"id" binding:"required,notblank" example:"rahim01"`
	Name     string `json:"name" binding:"required,notblank" example:"Rahim Uddin"`
	Password string `json:"password" binding:"required,notblank" example:"secret"`
}

type LoginRequest struct {
	ID       string `json:"id" binding:"required" example:"rahim01"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// Register godoc
// @Summary      Register a patient
// @Description  Create a patient account and log in as that patient
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "New account"
// @Success      200 {object} util.APIResponse{data=SessionResponse} "Registered"
// @Failure      400 {object} util.APIResponse "Invalid payload or id already taken"
// @Router       /register [post]
func Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}
	ctrl, ok := getControllerOrRespond(c)
	if !ok {
		return
	}

	session, err := ctrl.Register(c.Request.Context(), controller.RegisterInput{ID: req.ID, Name: req.Name, Password: req.Password})
	if err != nil {
		respondError(c, err, "Registration failed")
		return
	}
	resp, ok := issueSession(c, session)
	if !ok {
		return
	}
	util.LogSignup(session.UserID, c.ClientIP(), c.Request.UserAgent())
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Registration successful", Data: resp})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate a patient, or the admin with the reserved credentials
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} util.APIResponse{data=SessionResponse} "Login successful"
// @Failure      400 {object} util.APIResponse "Invalid request payload"
// @Failure      401 {object} util.APIResponse "Invalid credentials"
// @Failure      429 {object} util.APIResponse "Too many attempts"
// @Router       /login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}
	ctrl, ok := getControllerOrRespond(c)
	if !ok {
		return
	}

	session, err := ctrl.Login(c.Request.Context(), req.ID, req.Password)
	if err != nil {
		util.LogLoginFailure(req.ID, c.ClientIP(), c.Request.UserAgent(), "invalid credentials")
		respondError(c, err, "Invalid id or password")
		return
	}
	resp, ok := issueSession(c, session)
	if !ok {
		return
	}
	if err := middleware.ResetRateLimit(c.Request.Context(), c.ClientIP(), c.Request.URL.Path); err != nil {
		log.Debug().Err(err).Msg("reset login rate limit")
	}
	util.LogLoginSuccess(session.UserID, session.Role, c.ClientIP(), c.Request.UserAgent())
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Login successful", Data: resp})
}

// Logout godoc
// @Summary      Log out
// @Description  Revoke the current session
// @Tags         Authentication
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse "Logout successful"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Router       /logout [delete]
func Logout(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetRole(c)
	sessionID, _ := middleware.GetSessionID(c)

	if err := util.RemoveSession(c.Request.Context(), userID, sessionID); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("remove session from redis")
	}
	util.LogLogout(userID, role, c.ClientIP(), c.Request.UserAgent())
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Logout successful", Data: map[string]interface{}{}})
}
