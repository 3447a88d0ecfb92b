package impl

import (
	"context"
	"log/slog"

	deliverycontext "linkup/internal/delivery/context"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/domain/repository"
	"linkup/internal/domain/service"
	"linkup/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// resumeService implements the ResumeUsecase interface.
type resumeService struct {
	userRepo repository.UserRepository
	parser   service.ResumeParser
	logger   *slog.Logger
}

// ResumeServiceParams holds dependencies for resumeService, injected by Fx.
type ResumeServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Parser   service.ResumeParser
	Logger   *slog.Logger
}

// NewResumeService is the constructor for resumeService.
func NewResumeService(params ResumeServiceParams) usecase.ResumeUsecase {
	return &resumeService{
		userRepo: params.UserRepo,
		parser:   params.Parser,
		logger:   params.Logger,
	}
}

func (srv *resumeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ParseResume forwards the uploaded document to the parsing provider and
// consumes one credit on success. The credit decrement carries its own
// balance guard, so concurrent parses cannot overdraw.
func (srv *resumeService) ParseResume(ctx context.Context, input *usecase.ParseResumeInput) (*usecase.ParseResumeOutput, error) {
	if len(input.Document) == 0 {
		return nil, domainerrors.ErrBadRequest.WrapMessage("resume document is empty")
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no user for id")
		}

		return nil, errors.Wrap(err, "failed to load user for resume parse")
	}

	if user.Credits <= 0 {
		srv.log(ctx).Warn("Resume parse rejected: no credits", slog.Int64("userID", user.ID))

		return nil, domainerrors.ErrInsufficientCredits.WrapMessage("credit balance is zero")
	}

	contentType := mimetype.Detect(input.Document).String()

	srv.log(ctx).Info("Parsing resume",
		slog.Int64("userID", user.ID),
		slog.String("fileName", input.FileName),
		slog.String("contentType", contentType),
		slog.Int("documentBytes", len(input.Document)))

	parsed, err := srv.parser.Parse(ctx, input.Document, contentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse resume")
	}

	if err := srv.userRepo.DecrementCredits(ctx, user.ID); err != nil {
		return nil, errors.Wrap(err, "failed to consume parse credit")
	}

	return &usecase.ParseResumeOutput{
		Parsed:           parsed.Raw,
		ContentType:      contentType,
		RemainingCredits: user.Credits - 1,
	}, nil
}
