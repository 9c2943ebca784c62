package middleware

import (
	"go-canvas/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DevUserID is the fixed identity injected when SKIP_AUTH is enabled, so
// every dev-mode request acts as the same user and ownership/quota paths
// behave like production.
const DevUserID = "000000000000000000000001"

// AuthMiddleware validates JWT tokens and injects user claims into context.
// The token comes from the Authorization header, or from a "token" query
// parameter for websocket clients that cannot set headers before upgrade.
func AuthMiddleware(skipAuth bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if skipAuth {
			// Inject dummy context for dev
			dummyClaims := &utils.UserClaims{
				UserID: DevUserID,
			}
			c.Locals(utils.UserClaimsKey, dummyClaims)
			return c.Next()
		}

		var token string
		authHeader := c.Get("Authorization")
		switch {
		case authHeader != "":
			// Extract token from "Bearer <token>"
			if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid authorization header format",
				})
			}
			token = authHeader[7:]
		case c.Query("token") != "":
			token = c.Query("token")
		default:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Locals(utils.UserClaimsKey, claims)
		return c.Next()
	}
}

// CallerID extracts the authenticated user's ObjectID from Locals.
// Returns the zero ObjectID when no valid claims are present.
func CallerID(c *fiber.Ctx) primitive.ObjectID {
	claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
	if !ok {
		return primitive.NilObjectID
	}
	oid, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}
