package utils

import (
	"context"

	"github.com/mmdatafocus/smartpos_backend/appctx"
)

type contextKey = appctx.ContextKey

var (
	ContextKeyCorrelationId  = appctx.ContextKeyCorrelationId
	ContextKeyUserId         = appctx.ContextKeyUserId
	ContextKeyOrganizationId = appctx.ContextKeyOrganizationId
	ContextKeyLocationId     = appctx.ContextKeyLocationId
	ContextKeyIsSuperAdmin   = appctx.ContextKeyIsSuperAdmin
)

func GetCorrelationIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyCorrelationId)
}

func SetCorrelationIdInContext(ctx context.Context, correlationId string) context.Context {
	return appctx.Set(ctx, ContextKeyCorrelationId, correlationId)
}

func GetUserIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyUserId)
}

func SetUserIdInContext(ctx context.Context, userId string) context.Context {
	return appctx.Set(ctx, ContextKeyUserId, userId)
}

func GetOrganizationIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyOrganizationId)
}

func SetOrganizationIdInContext(ctx context.Context, organizationId string) context.Context {
	return appctx.Set(ctx, ContextKeyOrganizationId, organizationId)
}

func GetLocationIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyLocationId)
}

func SetLocationIdInContext(ctx context.Context, locationId string) context.Context {
	return appctx.Set(ctx, ContextKeyLocationId, locationId)
}

func GetIsSuperAdminFromContext(ctx context.Context) (bool, bool) {
	return appctx.GetBool(ctx, ContextKeyIsSuperAdmin)
}

func SetIsSuperAdminInContext(ctx context.Context, isSuperAdmin bool) context.Context {
	return appctx.Set(ctx, ContextKeyIsSuperAdmin, isSuperAdmin)
}

// LogFieldsFromContext collects the request-scoped identifiers worth attaching to a log line.
func LogFieldsFromContext(ctx context.Context) map[string]interface{} {
	fields := map[string]interface{}{}
	if cid, ok := GetCorrelationIdFromContext(ctx); ok && cid != "" {
		fields["correlation_id"] = cid
	}
	if orgId, ok := GetOrganizationIdFromContext(ctx); ok && orgId != "" {
		fields["organization_id"] = orgId
	}
	if locId, ok := GetLocationIdFromContext(ctx); ok && locId != "" {
		fields["location_id"] = locId
	}
	return fields
}
