// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package shared

import (
	"github.com/pkg/errors"
	"github.com/rootlockdefense/defectrix/database/models"
)

const actorContextKey = "actor"

// SetActor stores the authenticated user on the request context.
func SetActor(ctx Context, user models.User) {
	ctx.Set(actorContextKey, user)
}

// GetActor returns the authenticated user resolved by the session middleware.
func GetActor(ctx Context) (models.User, error) {
	user, ok := ctx.Get(actorContextKey).(models.User)
	if !ok {
		return models.User{}, errors.New("no actor on context")
	}
	return user, nil
}
