package service

import (
	"context"

	"talentsync/internal/core"
	cErr "talentsync/internal/pkg/error"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// authorizeOrg auth 停用時 context 沒有 claims，一律放行
func authorizeOrg(ctx context.Context, orgID primitive.ObjectID) error {
	claims := core.ClaimsFrom(ctx)
	if claims == nil {
		return nil
	}
	if !claims.CanAccessOrg(orgID.Hex()) {
		return cErr.OrganizationForbidden("no access to organization " + orgID.Hex())
	}
	return nil
}
