// common.go
//
// Plant care data service for the Greenloop gardening dashboard.
// Copyright (c) 2026 Greenloop Labs
//
// This file is part of plantcare.
// plantcare is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// plantcare is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.

package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/plantcare/internal/types"
)

// getUserID extracts the user id set by the auth middleware.
func getUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals("userID").(string)
	if !ok || userID == "" {
		return "", &types.AppError{
			Code:    fiber.StatusUnauthorized,
			Message: "user not found in context",
			Kind:    types.KindUnauthorized,
		}
	}
	return userID, nil
}

// parseID parses a numeric path parameter.
func parseID(c *fiber.Ctx, name string) (uint64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, types.NewValidation(name + " must be a numeric id")
	}
	return id, nil
}
