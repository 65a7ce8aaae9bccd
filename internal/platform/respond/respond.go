// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses. Success
// payloads are endpoint-shaped (the resource keyed by its name, list endpoints
// adding count/total/pagination), while every failure goes through the single
// [Error] translator that maps error kinds to status codes and a uniform
// `{"message": ...}` envelope.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/minhanhvo/plume/internal/platform/apperr"
	"github.com/minhanhvo/plume/internal/platform/ctxutil"
	"github.com/minhanhvo/plume/pkg/pagination"
)

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the payload as-is.
func OK(writer http.ResponseWriter, payload interface{}) {
	JSON(writer, http.StatusOK, payload)
}

// Created writes a 201 Created response with the payload as-is.
func Created(writer http.ResponseWriter, payload interface{}) {
	JSON(writer, http.StatusCreated, payload)
}

// List writes a 200 OK paginated list response.
//
// The envelope is {"count": n, "total": m, "pagination": {...}, "<itemsKey>": [...]}
// with count being the number of items on this page and total the collection size.
func List(writer http.ResponseWriter, itemsKey string, items interface{}, count, total int, links pagination.Links) {
	JSON(writer, http.StatusOK, map[string]interface{}{
		"count":      count,
		"total":      total,
		"pagination": links,
		itemsKey:     items,
	})
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error converts any Go error into a standardized JSON API error response.
//
// Validation errors join all field messages into a single string; everything
// else uses the error's client-safe message directly.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client for security.
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{Message: flatten(appError)})
}

// flatten renders an AppError as the single human-readable message the wire
// contract expects, folding field-level details into one string.
func flatten(appError *apperr.AppError) string {
	if len(appError.Details) == 0 {
		return appError.Message
	}

	messages := make([]string, 0, len(appError.Details))
	for _, detail := range appError.Details {
		messages = append(messages, detail.Field+": "+detail.Message)
	}
	return strings.Join(messages, ", ")
}
