package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"
	"os"

	"fibra_vendas/pkg"

	"github.com/gin-gonic/gin"
)

const internalKeyHeader = "x-internal-key"

// RequireInternalKey gates provider-facing routes behind a shared secret.
// The key comes from INTERNAL_KEY; the dev default keeps local setups
// working without a .env file.
func RequireInternalKey() gin.HandlerFunc {
	expected := os.Getenv("INTERNAL_KEY")
	if expected == "" {
		expected = "dev-key"
		log.Printf("[middleware][internal-key] INTERNAL_KEY not set, using dev default")
	}

	return func(c *gin.Context) {
		got := c.GetHeader(internalKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid internal key", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
