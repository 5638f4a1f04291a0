package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Ning0612/ecorp/internal/adapter"
	"github.com/Ning0612/ecorp/internal/adapter/local"
	"github.com/Ning0612/ecorp/internal/config"
	"github.com/Ning0612/ecorp/internal/display"
	"github.com/Ning0612/ecorp/internal/domain"
	"github.com/Ning0612/ecorp/internal/fingerprint"
	"github.com/Ning0612/ecorp/internal/identity"
	"github.com/Ning0612/ecorp/internal/logger"
	"github.com/Ning0612/ecorp/internal/remote"
)

const (
	loginName     = "Elliot Alderson"
	mailBanner    = "Welcome to the E corp's mail service."
	shareBanner   = "Welcome to the share system of the company, Mr Alderson."
	fallbackTitle = "You have 1 email:"
)

// Remote is the slice of the remote service the handlers need
type Remote interface {
	Fetch(ctx context.Context, id domain.Sciper) (string, error)
	Submit(ctx context.Context, id domain.Sciper, document string) (string, error)
}

// Options wires a MailService
type Options struct {
	Identity    *identity.Store
	Remote      Remote
	FS          adapter.Adapter
	Fingerprint *fingerprint.Builder
	Display     display.Displayer
	Stdout      io.Writer

	// EmailFile and ExerciseDir are resolved by FS
	EmailFile   string
	ExerciseDir string
}

// MailService implements the get-email and share commands
type MailService struct {
	ids          *identity.Store
	remote       Remote
	fs           adapter.Adapter
	fingerprints *fingerprint.Builder
	displayer    display.Displayer
	out          io.Writer
	typewriter   *display.Typewriter
	emailFile    string
	exerciseDir  string
}

// New creates a MailService from explicit collaborators
func New(opts Options) (*MailService, error) {
	switch {
	case opts.Identity == nil:
		return nil, fmt.Errorf("identity store cannot be nil")
	case opts.Remote == nil:
		return nil, fmt.Errorf("remote client cannot be nil")
	case opts.FS == nil:
		return nil, fmt.Errorf("filesystem adapter cannot be nil")
	case opts.Display == nil:
		return nil, fmt.Errorf("displayer cannot be nil")
	case opts.Stdout == nil:
		return nil, fmt.Errorf("stdout cannot be nil")
	}

	fp := opts.Fingerprint
	if fp == nil {
		fp = fingerprint.NewBuilder(opts.FS, nil)
	}

	return &MailService{
		ids:          opts.Identity,
		remote:       opts.Remote,
		fs:           opts.FS,
		fingerprints: fp,
		displayer:    opts.Display,
		out:          opts.Stdout,
		typewriter:   display.NewTypewriter(opts.Stdout),
		emailFile:    opts.EmailFile,
		exerciseDir:  opts.ExerciseDir,
	}, nil
}

// NewFromConfig wires the production collaborators: the identity file,
// the HTTP client, the working directory and the configured editor.
// A nil displayer uses the configured editor.
func NewFromConfig(cfg *config.Config, stdout io.Writer, displayer display.Displayer) (*MailService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	fs, err := local.New(".")
	if err != nil {
		return nil, fmt.Errorf("failed to open working directory: %w", err)
	}

	if displayer == nil {
		displayer = display.NewEditor(cfg.Editor)
	}

	return New(Options{
		Identity:    identity.NewStore(cfg.SciperFile),
		Remote:      remote.NewClient(cfg.BaseURI, cfg.Timeout),
		FS:          fs,
		Display:     displayer,
		Stdout:      stdout,
		EmailFile:   cfg.EmailFile,
		ExerciseDir: cfg.ExerciseDir,
	})
}

// Retrieve fetches the email for id, stores it in the email file and
// shows it. Display failures fall back to printing the email.
func (s *MailService) Retrieve(ctx context.Context, id domain.Sciper) error {
	fmt.Fprintln(s.out, mailBanner)
	fmt.Fprint(s.out, "Login: ")
	s.typewriter.Type(loginName)
	fmt.Fprintln(s.out)

	if err := id.Validate(); err != nil {
		return err
	}

	if err := s.ids.Save(id); err != nil {
		return err
	}

	email, err := s.remote.Fetch(ctx, id)
	if err != nil {
		return err
	}

	if err := s.fs.Write(ctx, s.emailFile, strings.NewReader(email)); err != nil {
		if errors.Is(err, domain.ErrFileConflict) {
			return domain.NewError(domain.KindFileConflict,
				fmt.Sprintf("Can not save email as %s already exists!", s.emailFile), err)
		}
		return fmt.Errorf("failed to save email: %w", err)
	}
	logger.Get().Info("email saved", "path", s.emailFile, "bytes", len(email))

	if err := s.displayer.Display(ctx, s.emailFile); err != nil {
		logger.Get().Debug("display failed, printing instead", "error", err)
		fmt.Fprintln(s.out, fallbackTitle)
		fmt.Fprintln(s.out, email)
	}

	return nil
}

// Share fingerprints the exercise directory and submits it under the
// identifier saved by Retrieve, printing the server's answer.
func (s *MailService) Share(ctx context.Context) error {
	fmt.Fprintln(s.out, shareBanner)

	id, err := s.ids.Load()
	if err != nil {
		if errors.Is(err, domain.ErrMissingState) {
			return domain.NewError(domain.KindMissingState, "First check your mail!", err)
		}
		return err
	}
	if err := id.Validate(); err != nil {
		return err
	}

	document, err := s.fingerprints.Build(ctx, s.exerciseDir)
	if err != nil {
		return err
	}

	response, err := s.remote.Submit(ctx, id, document)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, response)
	return nil
}
