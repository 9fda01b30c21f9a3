package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/narender/vending-machine/common/telemetry"
	commontrace "github.com/narender/vending-machine/common/telemetry/trace"
)

// FileDatabase reads JSON documents from a single file.
type FileDatabase struct {
	filePath string
	logger   *slog.Logger
}

// NewFileDatabase creates a new instance of FileDatabase.
func NewFileDatabase(filePath string, logger *slog.Logger) *FileDatabase {
	return &FileDatabase{
		filePath: filePath,
		logger:   logger,
	}
}

// Read loads data from the JSON file into dest.
func (db *FileDatabase) Read(ctx context.Context, dest any) (opErr error) {
	ctx, span := commontrace.StartSpan(ctx,
		telemetry.DBSystemJSONFile,
		telemetry.DBOperationRead,
		telemetry.FilePathKey.String(db.filePath),
	)
	defer commontrace.EndSpan(span, &opErr, nil)

	db.logger.DebugContext(ctx, "FileDB: Reading data from file", slog.String("file_path", db.filePath))

	fileContent, err := os.ReadFile(db.filePath)
	if err != nil {
		db.logger.ErrorContext(ctx, "FileDB: Failed to read data file", slog.String("file_path", db.filePath), slog.Any("error", err))
		return fmt.Errorf("read %s: %w", db.filePath, err)
	}

	if err := json.Unmarshal(fileContent, dest); err != nil {
		db.logger.ErrorContext(ctx, "FileDB: Failed to unmarshal JSON data", slog.String("file_path", db.filePath), slog.Any("error", err))
		return fmt.Errorf("decode %s: %w", db.filePath, err)
	}

	db.logger.DebugContext(ctx, "FileDB: Data read and unmarshalled successfully", slog.String("file_path", db.filePath))
	return nil
}

// FilePath returns the path to the database file.
func (db *FileDatabase) FilePath() string {
	return db.filePath
}
