package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PIG208/Airbook/api/middleware"
	model2 "github.com/PIG208/Airbook/api/model"
	"github.com/PIG208/Airbook/config"
	"github.com/PIG208/Airbook/internal/auth"
)

// Register creates an account of the type named in the route and logs
// the new account in.
func (a Api) Register(c *gin.Context) {
	registerType, _ := c.Params.Get("register_type")
	role, ok := auth.ParseRole(registerType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"result": "error", "message": "Invalid registration method!"})
		return
	}

	switch role {
	case auth.RoleCustomer:
		var req model2.RegisterCustomer
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		if err := req.ValidateRegisterCustomer(); err != nil {
			badRequest(c, err)
			return
		}
		if err := a.airbook.RegisterCustomer(c.Request.Context(), req.ToCustomer(), req.Password); err != nil {
			errorResponse(c, err)
			return
		}
		a.establishSession(c, &auth.Session{Role: auth.RoleCustomer, Email: req.Email}, nil)
	case auth.RoleStaff:
		var req model2.RegisterStaff
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		if err := req.ValidateRegisterStaff(); err != nil {
			badRequest(c, err)
			return
		}
		if err := a.airbook.RegisterStaff(c.Request.Context(), req.ToStaff(), req.Password); err != nil {
			errorResponse(c, err)
			return
		}
		a.establishSession(c, &auth.Session{Role: auth.RoleStaff, Username: req.Username}, nil)
	case auth.RoleAgent:
		var req model2.RegisterAgent
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		if err := req.ValidateRegisterAgent(); err != nil {
			badRequest(c, err)
			return
		}
		id, err := a.airbook.RegisterAgent(c.Request.Context(), req.ToAgent(), req.Password)
		if err != nil {
			errorResponse(c, err)
			return
		}
		a.establishSession(c,
			&auth.Session{Role: auth.RoleAgent, AgentEmail: req.Email, AgentID: id},
			gin.H{"booking_agent_id": id})
	}
}

// Login checks the credentials for the role named in the route and sets
// the session cookie.
func (a Api) Login(c *gin.Context) {
	loginType, _ := c.Params.Get("login_type")
	role, ok := auth.ParseRole(loginType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"result": "error", "message": "Invalid login method!"})
		return
	}

	var session *auth.Session
	var err error
	switch role {
	case auth.RoleCustomer:
		var req model2.LoginCustomer
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			badRequest(c, bindErr)
			return
		}
		if err := req.ValidateLoginCustomer(); err != nil {
			badRequest(c, err)
			return
		}
		session, err = a.airbook.LoginCustomer(c.Request.Context(), req.Email, req.Password)
	case auth.RoleStaff:
		var req model2.LoginStaff
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			badRequest(c, bindErr)
			return
		}
		if err := req.ValidateLoginStaff(); err != nil {
			badRequest(c, err)
			return
		}
		session, err = a.airbook.LoginStaff(c.Request.Context(), req.Username, req.Password)
	case auth.RoleAgent:
		var req model2.LoginAgent
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			badRequest(c, bindErr)
			return
		}
		if err := req.ValidateLoginAgent(); err != nil {
			badRequest(c, err)
			return
		}
		session, err = a.airbook.LoginAgent(c.Request.Context(), req.Email, req.BookingAgentID, req.Password)
	}
	if err != nil {
		errorResponse(c, err)
		return
	}
	a.establishSession(c, session, nil)
}

// Logout clears the session cookie.
func (a Api) Logout(c *gin.Context) {
	conf, err := config.Fetch()
	secure := err == nil && conf.Server.Secure
	c.SetCookie(auth.CookieName, "", -1, "/", "", secure, true)
	successResponse(c, nil)
}

// SessionFetch returns the identity behind the session cookie. Anonymous
// callers get an empty user_type rather than an error so clients can
// poll it cheaply.
func (a Api) SessionFetch(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		successResponse(c, gin.H{"user_type": ""})
		return
	}
	successResponse(c, session)
}

// establishSession issues the session token, sets the cookie and renders
// the success envelope.
func (a Api) establishSession(c *gin.Context, session *auth.Session, data interface{}) {
	conf, err := config.Fetch()
	if err != nil {
		errorResponse(c, err)
		return
	}
	token, err := auth.IssueToken(*session, []byte(conf.Server.SecretKey), auth.DefaultTokenTTL)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.SetCookie(auth.CookieName, token,
		int(auth.DefaultTokenTTL.Seconds()), "/", "", conf.Server.Secure, true)
	successResponse(c, data)
}
