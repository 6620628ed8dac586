package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"record-tracker/internal/auth"
	"record-tracker/internal/models"
	"record-tracker/internal/services"
)

// AuthController serves registration, login and logout plus the role-aware
// root redirect.
type AuthController struct {
	userService services.UserService
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(userService services.UserService) *AuthController {
	return &AuthController{userService: userService}
}

// Root sends the visitor to whatever their role entitles them to see.
func (ac *AuthController) Root(c *gin.Context) {
	user := auth.CurrentUser(c)
	switch {
	case user == nil:
		c.Redirect(http.StatusFound, "/login")
	case user.IsAdmin:
		c.Redirect(http.StatusFound, "/admin")
	default:
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

// ShowRegister renders the empty registration form.
func (ac *AuthController) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"Error": nil, "Name": "", "Email": ""})
}

// Register handles the registration form. New accounts are always non-admin;
// admin accounts only come from seeding or the create_admin script.
func (ac *AuthController) Register(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")

	_, err := ac.userService.Register(name, email, password)
	if err != nil {
		message := models.MsgRegistrationFailed
		switch {
		case errors.Is(err, models.ErrMissingFields):
			message = models.MsgAllFieldsRequired
		case errors.Is(err, models.ErrEmailTaken):
			message = models.MsgEmailTaken
		default:
			log.WithError(err).Error("registration failed")
		}
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"Error": message,
			"Name":  name,
			"Email": email,
		})
		return
	}

	// No auto-login after registration; the user proves the password once more.
	c.Redirect(http.StatusFound, "/login")
}

// ShowLogin renders the empty login form.
func (ac *AuthController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Error": nil})
}

// Login authenticates the submitted credentials and establishes a session.
func (ac *AuthController) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if email == "" || password == "" {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"Error": models.MsgEmailPasswordReq})
		return
	}

	user, err := ac.userService.Authenticate(email, password)
	if err != nil {
		// Unknown email and wrong password render identically.
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": models.MsgInvalidCredentials})
		return
	}

	if err := auth.SetUser(c, user); err != nil {
		log.WithError(err).Error("saving session failed")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": models.MsgServerError})
		return
	}

	if user.IsAdmin {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout destroys the server-side session and expires the cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	if err := auth.ClearUser(c); err != nil {
		log.WithError(err).Warn("clearing session failed")
	}
	c.Redirect(http.StatusFound, "/login")
}
