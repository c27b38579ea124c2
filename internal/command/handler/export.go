package command

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"talentsync/config"
	"talentsync/internal/service"
	"talentsync/pkg/scheduling"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ExportHandler 把某日摘要輸出成 CSV 檔，檔名與下載端點相同
type ExportHandler struct {
	logger       *zap.Logger
	config       *config.Configuration
	boardService *service.BoardService
}

func NewExportHandler(logger *zap.Logger, config *config.Configuration, boardService *service.BoardService) *ExportHandler {
	return &ExportHandler{
		logger:       logger,
		config:       config,
		boardService: boardService,
	}
}

type ExportOptions struct {
	OrgID string
	Date  string
	Out   string
}

func ExportFlags(cmd *cobra.Command, opts *ExportOptions) {
	cmd.Flags().StringVar(&opts.OrgID, "org", "", "organization id")
	cmd.Flags().StringVar(&opts.Date, "date", "", "day to export, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&opts.Out, "out", "", "output directory (default schedule.exportDir)")
	_ = cmd.MarkFlagRequired("org")
}

func (handler *ExportHandler) Export(cmd *cobra.Command, opts *ExportOptions) error {
	orgID, err := primitive.ObjectIDFromHex(opts.OrgID)
	if err != nil {
		return err
	}
	day := opts.Date
	if day == "" {
		day = scheduling.DayKey(time.Now())
	}
	dir := opts.Out
	if dir == "" {
		dir = handler.config.Schedule.ExportDir
	}
	if dir == "" {
		dir = "."
	}

	filename, body, err := handler.boardService.Export(context.Background(), orgID, day)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return err
	}
	handler.logger.Info("schedule summary exported", zap.String("orgID", opts.OrgID), zap.String("path", path))
	cmd.Println(path)
	return nil
}
