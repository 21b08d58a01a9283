package main

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"github.com/sicko7947/carlist"
	"github.com/sicko7947/carlist/auth"
)

// statusFromError translates the service error taxonomy to HTTP status codes
func statusFromError(err error) int {
	switch {
	case errors.Is(err, carlist.ErrInvalidCredential):
		return fiber.StatusUnauthorized
	case errors.Is(err, carlist.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, carlist.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c fiber.Ctx, err error) error {
	return c.Status(statusFromError(err)).JSON(fiber.Map{
		"error": carlist.ErrorCode(err),
	})
}

// ownerID resolves the caller's owner id from the Authorization header
func ownerID(c fiber.Ctx) (string, error) {
	return auth.OwnerID(c.Get("Authorization"))
}

// handleListRecords returns all of the caller's listings
func handleListRecords(c fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return errorResponse(c, err)
	}

	records, err := svc.ListMine(c.Context(), owner)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list records")
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"items": records,
	})
}

// handleCreateRecord creates a new listing for the caller
func handleCreateRecord(c fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return errorResponse(c, err)
	}

	var fields carlist.RecordFields
	if err := c.Bind().JSON(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	record, err := svc.CreateMine(c.Context(), owner, fields)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create record")
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"item": record,
	})
}

// handleUpdateRecord rewrites the mutable fields of one of the caller's listings
func handleUpdateRecord(c fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return errorResponse(c, err)
	}

	recordID := c.Params("recordId")

	var fields carlist.RecordFields
	if err := c.Bind().JSON(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := svc.UpdateMine(c.Context(), owner, recordID, fields); err != nil {
		log.Error().Err(err).Str("record_id", recordID).Msg("Failed to update record")
		return errorResponse(c, err)
	}

	return c.JSON(true)
}

// handleDeleteRecord removes one of the caller's listings and its attachment
func handleDeleteRecord(c fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return errorResponse(c, err)
	}

	recordID := c.Params("recordId")

	if err := svc.DeleteMine(c.Context(), owner, recordID); err != nil {
		log.Error().Err(err).Str("record_id", recordID).Msg("Failed to delete record")
		return errorResponse(c, err)
	}

	return c.JSON(true)
}

// handleRequestUploadURL issues a presigned upload URL for a listing's attachment
func handleRequestUploadURL(c fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return errorResponse(c, err)
	}

	recordID := c.Params("recordId")

	grant, err := svc.RequestUploadURL(c.Context(), owner, recordID)
	if err != nil {
		log.Error().Err(err).Str("record_id", recordID).Msg("Failed to issue upload URL")
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(grant)
}
