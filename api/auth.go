package api

import (
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tadeyemo32/persona-backend/models"
	"github.com/tadeyemo32/persona-backend/services"
)

// The demo deployment has a single configurable user instead of a user
// table. DEMO_USER_EMAIL / DEMO_USER_PASSWORD override the defaults.
var demoUser = struct {
	once         sync.Once
	email        string
	passwordHash string
}{}

func loadDemoUser() {
	demoUser.once.Do(func() {
		demoUser.email = os.Getenv("DEMO_USER_EMAIL")
		if demoUser.email == "" {
			demoUser.email = "demo@example.com"
		}
		password := os.Getenv("DEMO_USER_PASSWORD")
		if password == "" {
			password = "persona-demo"
		}
		hash, err := services.HashPassword(password)
		if err != nil {
			log.Error().Err(err).Msg("could not hash demo user password")
			return
		}
		demoUser.passwordHash = hash
	})
}

// loginHandler exchanges demo-user credentials for a JWT. The frontend
// works unauthenticated too; a token just replaces the stub identity.
func loginHandler(c *gin.Context) {
	loadDemoUser()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, http.StatusBadRequest, "email and password are required")
		return
	}

	if req.Email != demoUser.email || !services.CheckPasswordHash(req.Password, demoUser.passwordHash) {
		bad(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := services.GenerateJWT(demoUser.email)
	if err != nil {
		log.Error().Err(err).Msg("could not sign token")
		bad(c, http.StatusInternalServerError, "Could not complete login.")
		return
	}

	ok(c, gin.H{"token": token})
}
