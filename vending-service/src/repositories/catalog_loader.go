package repositories

import (
	"context"
	"errors"
	"log/slog"
	"os"

	apierrors "github.com/narender/vending-machine/common/apierrors"
	"github.com/narender/vending-machine/common/db"
	"github.com/narender/vending-machine/common/telemetry"
	commontrace "github.com/narender/vending-machine/common/telemetry/trace"
	"github.com/narender/vending-machine/vending-service/src/models"
)

const (
	catalogSourceFile    = "file"
	catalogSourceDefault = "default"
)

// LoadCatalog reads the catalog template from database. A nil database or a
// missing file yields the default catalog; unreadable or invalid data is an error.
func LoadCatalog(ctx context.Context, database *db.FileDatabase, logger *slog.Logger) (catalog *models.Catalog, err error) {
	ctx, span := commontrace.StartSpan(ctx)
	defer commontrace.EndSpan(span, &err, nil)

	if database == nil || database.FilePath() == "" {
		logger.InfoContext(ctx, "No catalog file configured, using default catalog")
		span.SetAttributes(telemetry.VendingCatalogSourceKey.String(catalogSourceDefault))
		return models.DefaultCatalog(), nil
	}

	var products []models.Product
	if readErr := database.Read(ctx, &products); readErr != nil {
		if errors.Is(readErr, os.ErrNotExist) {
			logger.WarnContext(ctx, "Catalog file not found, using default catalog", slog.String("file_path", database.FilePath()))
			span.SetAttributes(telemetry.VendingCatalogSourceKey.String(catalogSourceDefault))
			return models.DefaultCatalog(), nil
		}
		return nil, apierrors.NewApplicationError(apierrors.ErrCodeDataAccess, "Failed to read catalog file", readErr)
	}

	catalog, err = models.NewCatalog(products)
	if err != nil {
		logger.ErrorContext(ctx, "Catalog file rejected", slog.String("file_path", database.FilePath()), slog.Any("error", err))
		return nil, apierrors.NewApplicationError(apierrors.ErrCodeMalformedData, "Catalog file contains invalid products", err)
	}

	span.SetAttributes(
		telemetry.VendingCatalogSourceKey.String(catalogSourceFile),
		telemetry.VendingCatalogEntriesKey.Int(catalog.Len()),
	)
	logger.InfoContext(ctx, "Catalog loaded", slog.String("file_path", database.FilePath()), slog.Int(telemetry.LogFieldCount, catalog.Len()))
	return catalog, nil
}
