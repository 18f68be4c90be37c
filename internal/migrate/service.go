package migrate

import (
	"bytes"
	"context"
	"io"
	"os"

	domainerrors "github.com/wp2ghost/wp2ghost/internal/errors"
	"github.com/wp2ghost/wp2ghost/internal/ghost"
	"github.com/wp2ghost/wp2ghost/internal/logger"
	"github.com/wp2ghost/wp2ghost/internal/wxr"
)

// Options configures a conversion.
type Options struct {
	GenerateMissingSlugs bool
	IncludeUsers         bool
}

// Paths names the files of a file-to-file conversion. An empty Redirects
// skips the redirects file.
type Paths struct {
	Input     string
	Output    string
	Redirects string
}

// Service runs conversions.
type Service struct {
	extractor *wxr.Extractor
	opts      Options
	logger    *logger.Logger
}

// NewService creates a conversion service around a content converter.
func NewService(converter wxr.ContentConverter, opts Options, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		extractor: wxr.NewExtractor(converter, wxr.Options{GenerateMissingSlugs: opts.GenerateMissingSlugs}, log),
		opts:      opts,
		logger:    log,
	}
}

// Convert reads a whole export from r and assembles the result.
func (s *Service) Convert(ctx context.Context, r io.Reader) (*Result, error) {
	x, err := s.extractor.Extract(ctx, r)
	if err != nil {
		return nil, err
	}

	res := Assemble(x, AssembleOptions{IncludeUsers: s.opts.IncludeUsers}, s.logger)
	s.logger.Info("conversion finished",
		"posts", res.Summary.Posts,
		"pages", res.Summary.Pages,
		"drafts", res.Summary.Drafts,
		"tags", res.Summary.Tags,
		"users", res.Summary.Users,
		"featured_images", res.Summary.FeaturedImages,
		"renamed", res.Summary.Renamed,
		"dropped", res.Summary.Dropped,
	)
	return res, nil
}

// ConvertFile converts paths.Input and writes the outputs. Nothing is
// written unless the whole conversion succeeded.
func (s *Service) ConvertFile(ctx context.Context, paths Paths) (*Result, error) {
	f, err := os.Open(paths.Input)
	if err != nil {
		return nil, domainerrors.Wrapf(err, domainerrors.CodeIO, "open %s", paths.Input)
	}
	defer f.Close() //nolint:errcheck // read-only

	res, err := s.Convert(ctx, f)
	if err != nil {
		return nil, err
	}
	log := s.logger.WithField("input", paths.Input)

	// Encode both outputs before touching the filesystem.
	var doc, redirects bytes.Buffer
	if err := ghost.WriteDocument(&doc, res.Document); err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "encode ghost document")
	}
	if paths.Redirects != "" {
		if err := ghost.WriteRedirects(&redirects, res.Redirects); err != nil {
			return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "encode redirects")
		}
	}

	if err := writeFile(paths.Output, doc.Bytes()); err != nil {
		return nil, err
	}
	log.Info("ghost import written", "path", paths.Output)

	if paths.Redirects != "" {
		if err := writeFile(paths.Redirects, redirects.Bytes()); err != nil {
			return nil, err
		}
		log.Info("redirects written", "path", paths.Redirects, "count", len(res.Redirects))
	}

	return res, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // output is meant to be shared
		return domainerrors.Wrapf(err, domainerrors.CodeIO, "write %s", path)
	}
	return nil
}
