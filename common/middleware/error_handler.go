package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	apierrors "github.com/narender/vending-machine/common/apierrors"
	apiresponses "github.com/narender/vending-machine/common/apiresponses"
	"github.com/narender/vending-machine/common/telemetry/trace"
)

const genericErrorMessage = "An unexpected error occurred. Please try again later."

// StatusFor maps an AppError to its HTTP status code.
func StatusFor(appErr *apierrors.AppError) int {
	if appErr.Category == apierrors.CategoryBusiness {
		switch appErr.Code {
		case apierrors.ErrCodeProductNotFound:
			return http.StatusNotFound
		default:
			return http.StatusBadRequest
		}
	}

	switch appErr.Code {
	case apierrors.ErrCodeRequestValidation,
		apierrors.ErrCodeMalformedData:
		return http.StatusBadRequest
	case apierrors.ErrCodeRouteNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeRequestTimeout:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler creates the Fiber error handler writing the flat error body.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr := classify(err)
		statusCode := StatusFor(appErr)
		ctx := c.UserContext()

		if appErr.Category == apierrors.CategoryBusiness && statusCode < http.StatusInternalServerError {
			logger.WarnContext(ctx, "Business rule violation",
				slog.String("error_code", appErr.Code),
				slog.String("message", appErr.Message),
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
			)
		} else {
			logger.ErrorContext(ctx, "Error occurred",
				slog.String("error_code", appErr.Code),
				slog.String("category", string(appErr.Category)),
				slog.String("message", appErr.Message),
				slog.Any("cause", appErr.Unwrap()),
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
			)
		}

		span := oteltrace.SpanFromContext(ctx)
		if span.IsRecording() {
			trace.RecordSpanError(span, err,
				attribute.String("error.code", appErr.Code),
				attribute.String("error.category", string(appErr.Category)),
			)
		}

		return c.Status(statusCode).JSON(apiresponses.NewErrorResponse(appErr.Code, appErr.Message, appErr.Details))
	}
}

// classify turns any error reaching the handler into an AppError.
func classify(err error) *apierrors.AppError {
	var appErr *apierrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var fiberErr *fiber.Error
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &fiberErr):
		switch {
		case fiberErr.Code == fiber.StatusNotFound:
			return apierrors.NewApplicationError(apierrors.ErrCodeRouteNotFound, fiberErr.Message, err)
		case fiberErr.Code == fiber.StatusRequestTimeout:
			return apierrors.NewApplicationError(apierrors.ErrCodeRequestTimeout, fiberErr.Message, err)
		case fiberErr.Code < fiber.StatusInternalServerError:
			return apierrors.NewApplicationError(apierrors.ErrCodeRequestValidation, fiberErr.Message, err)
		}
		return apierrors.NewApplicationError(apierrors.ErrCodeInternalProcessing, genericErrorMessage, err)

	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return apierrors.NewApplicationError(apierrors.ErrCodeMalformedData, "Invalid data format in request", err)

	case errors.Is(err, context.DeadlineExceeded):
		return apierrors.NewApplicationError(apierrors.ErrCodeRequestTimeout, "Request processing timed out", err)

	case errors.Is(err, context.Canceled):
		return apierrors.NewApplicationError(apierrors.ErrCodeRequestTimeout, "Request was canceled", err)

	default:
		return apierrors.NewApplicationError(apierrors.ErrCodeUnknown, genericErrorMessage, err)
	}
}
