package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-agenda/internal/httperr"
)

const ContextAdminUser = "adminUser"

type TokenVerifier interface {
	Verify(token string) (string, error)
}

func AdminOnly(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Autenticação obrigatória.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Cabeçalho de autenticação inválido.")
			return
		}

		user, err := verifier.Verify(parts[1])
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Sessão inválida ou expirada.")
			return
		}

		c.Set(ContextAdminUser, user)
		c.Next()
	}
}

func AdminUser(c *gin.Context) string {
	return c.GetString(ContextAdminUser)
}
