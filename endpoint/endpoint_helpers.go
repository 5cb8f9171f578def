package endpoint

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ariebrainware/medi-help/ai"
	"github.com/ariebrainware/medi-help/controller"
	"github.com/ariebrainware/medi-help/middleware"
	"github.com/ariebrainware/medi-help/model"
	"github.com/ariebrainware/medi-help/repository"
	"github.com/ariebrainware/medi-help/util"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/rs/zerolog/log"
)

var validatorsOnce sync.Once

// registerValidators adds the custom binding rules used by request structs.
func registerValidators() {
	validatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
				log.Error().Err(err).Msg("register notblank validator")
			}
		}
	})
}

func bindJSONOrRespond(c *gin.Context, dst interface{}, msg string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: msg, Err: err})
		return false
	}
	return true
}

func getControllerOrRespond(c *gin.Context) (*controller.Controller, bool) {
	ctrl := middleware.GetController(c)
	if ctrl == nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Service not available", Err: fmt.Errorf("controller is nil")})
		return nil, false
	}
	return ctrl, true
}

// callerOrRespond returns the controller and the authenticated user id.
func callerOrRespond(c *gin.Context) (*controller.Controller, string, bool) {
	ctrl, ok := getControllerOrRespond(c)
	if !ok {
		return nil, "", false
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: "Login required", Err: fmt.Errorf("user id missing from context")})
		return nil, "", false
	}
	return ctrl, userID, true
}

// respondError maps domain errors onto HTTP statuses.
func respondError(c *gin.Context, err error, msg string) {
	var aiErr *ai.Error
	switch {
	case errors.As(err, &aiErr):
		// Malformed detail stays in the log.
		params := util.APIErrorParams{Msg: aiErr.UserMessage(), Err: errors.New(aiErr.Kind.String())}
		if aiErr.Kind == ai.KindConfiguration {
			util.CallServerError(c, params)
			return
		}
		util.CallBadGateway(c, params)
	case errors.Is(err, controller.ErrInvalidCredentials):
		util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: msg, Err: err})
	case errors.Is(err, repository.ErrDuplicateID),
		errors.Is(err, controller.ErrBlankCredentials),
		errors.Is(err, controller.ErrReservedID),
		errors.Is(err, controller.ErrInvalidTheme),
		errors.Is(err, controller.ErrNoSymptoms):
		util.CallUserError(c, util.APIErrorParams{Msg: msg, Err: err})
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrPriceNotFound):
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: msg, Err: err})
	case errors.Is(err, controller.ErrDiagnosisInProgress),
		errors.Is(err, repository.ErrOrderAlreadyReplied),
		errors.Is(err, repository.ErrOrderNotReplied):
		util.CallConflict(c, util.APIErrorParams{Msg: msg, Err: err})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(msg)
		util.CallServerError(c, util.APIErrorParams{Msg: msg, Err: err})
	}
}

// publicUser strips the password before a user leaves the service.
func publicUser(u model.User) model.User {
	u.Password = ""
	return u
}

func publicUsers(users []model.User) []model.User {
	out := make([]model.User, len(users))
	for i, u := range users {
		out[i] = publicUser(u)
	}
	return out
}

type SessionResponse struct {
	Token string      `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Role  string      `json:"role" example:"patient"`
	User  *model.User `json:"user,omitempty"`
}

// issueSession signs a token for s and records it in Redis when available.
func issueSession(c *gin.Context, s controller.Session) (SessionResponse, bool) {
	token, claims, err := util.CreateToken(s.UserID, s.Role)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Could not generate token", Err: err})
		return SessionResponse{}, false
	}
	if err := util.StoreSession(c.Request.Context(), claims.ID, s.UserID, s.Role, util.SessionTTL); err != nil {
		log.Warn().Err(err).Str("user_id", s.UserID).Msg("store session in redis")
	}
	resp := SessionResponse{Token: token, Role: s.Role}
	if s.User != nil {
		u := publicUser(*s.User)
		resp.User = &u
	}
	return resp, true
}
