package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pantrystack/pantry-tracker/internal/apperr"
	"github.com/pantrystack/pantry-tracker/internal/qr"
	"github.com/pantrystack/pantry-tracker/internal/repository"
)

// BatchRenderResult reports the outcome of a batch pre-generation pass.
type BatchRenderResult struct {
	Rendered int
	Skipped  int
	Failed   int
}

// CodeService projects container identifiers into scannable QR codes.
// Codes are never stored; rendering is always recomputed from the
// container's uuid.
type CodeService interface {
	// RenderContainerCode streams the container's QR code PNG to w.
	RenderContainerCode(ctx context.Context, id int64, w io.Writer) error

	// RenderAllContainerCodes writes one <uuid>.png per container into dir,
	// creating it if absent. Existing files are skipped unless overwrite is
	// set. A failure on one container does not abort the rest; the pass
	// fails at the end if any container failed.
	RenderAllContainerCodes(ctx context.Context, dir string, overwrite bool) (BatchRenderResult, error)
}

type codeService struct {
	logger        *slog.Logger
	containerRepo repository.ContainerRepository
	renderer      *qr.Renderer
}

func NewCodeService(
	logger *slog.Logger,
	containerRepo repository.ContainerRepository,
	renderer *qr.Renderer,
) CodeService {
	return &codeService{
		logger:        logger.With(slog.String("service", "code")),
		containerRepo: containerRepo,
		renderer:      renderer,
	}
}

func (s *codeService) RenderContainerCode(ctx context.Context, id int64, w io.Writer) error {
	container, err := s.containerRepo.GetContainerByID(ctx, id)
	if err != nil {
		return fmt.Errorf("container repository get container by id: %w", err)
	}

	if err := s.renderer.EncodeTo(w, container.UUID.String()); err != nil {
		return apperr.QRCodeRenderErr.WrapParent(err)
	}

	return nil
}

func (s *codeService) RenderAllContainerCodes(ctx context.Context, dir string, overwrite bool) (BatchRenderResult, error) {
	containers, err := s.containerRepo.ListAllContainers(ctx)
	if err != nil {
		return BatchRenderResult{}, fmt.Errorf("container repository list all containers: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return BatchRenderResult{}, fmt.Errorf("create output dir: %w", err)
	}

	var result BatchRenderResult
	for _, container := range containers {
		file := filepath.Join(dir, container.UUID.String()+".png")

		if !overwrite {
			if _, err := os.Stat(file); err == nil {
				result.Skipped++
				continue
			}
		}

		if err := s.renderToFile(file, container.UUID.String()); err != nil {
			s.logger.ErrorContext(ctx, "error rendering container code",
				slog.String("container_uuid", container.UUID.String()),
				slog.Any("error", err))
			result.Failed++
			continue
		}

		s.logger.InfoContext(ctx, "rendered container code",
			slog.String("container_uuid", container.UUID.String()),
			slog.String("file", file))
		result.Rendered++
	}

	if result.Failed > 0 {
		return result, apperr.QRCodeRenderErr.WrapParent(
			errors.New("one or more containers failed to render"))
	}

	return result, nil
}

func (s *codeService) renderToFile(file, content string) error {
	png, err := s.renderer.Encode(content)
	if err != nil {
		return err
	}

	if err := os.WriteFile(file, png, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
