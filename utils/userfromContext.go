package utils

import (
	"context"

	"ayurchain/globals"
	"ayurchain/models"
)

func GetUserIDFromContext(ctx context.Context) string {
	requestingUserID, ok := ctx.Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		return ""
	}
	return requestingUserID
}

func GetRoleFromContext(ctx context.Context) models.Role {
	role, ok := ctx.Value(globals.RoleKey).(models.Role)
	if !ok {
		return ""
	}
	return role
}
