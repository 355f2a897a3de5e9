package middlewares

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/smartpos_backend/pos"
	"github.com/mmdatafocus/smartpos_backend/utils"
)

type SessionSource interface {
	Session(ctx context.Context) pos.SessionInfo
}

// SessionMiddleware stamps the acting user, organization and location on the request
// context so log lines written further down carry them.
func SessionMiddleware(source SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		info := source.Session(ctx)
		if info.User != nil {
			ctx = utils.SetUserIdInContext(ctx, info.User.Id)
			ctx = utils.SetIsSuperAdminInContext(ctx, info.User.IsSuperAdmin())
		}
		if info.Organization != nil {
			ctx = utils.SetOrganizationIdInContext(ctx, info.Organization.Id)
		}
		if info.LocationId != "" {
			ctx = utils.SetLocationIdInContext(ctx, info.LocationId)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
