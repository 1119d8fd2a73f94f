package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-notes/internal/usecase/extract"
	"github.com/johnquangdev/meeting-notes/internal/usecase/page"
	"github.com/johnquangdev/meeting-notes/internal/usecase/resolve"
	"github.com/johnquangdev/meeting-notes/internal/usecase/transcriptfile"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	"github.com/johnquangdev/meeting-notes/pkg/notion"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: update-meeting <notion-page-url> [transcript-filename]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Appends an AI-processed summary of a meeting transcript to the given")
	fmt.Fprintln(os.Stderr, "Notion page. Without a filename the transcript is picked from the")
	fmt.Fprintln(os.Stderr, "transcript directory, interactively when several exist.")
}

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		usage()
		os.Exit(2)
	}

	pageURL := os.Args[1]
	fileName := ""
	if len(os.Args) == 3 {
		fileName = os.Args[2]
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	if err := run(context.Background(), logger, pageURL, fileName); err != nil {
		logger.Error("❌ run failed", zap.Error(err))
		var appErr apperrors.AppError
		if errors.As(err, &appErr) {
			for k, v := range appErr.Details {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", k, v)
			}
			if appErr.ExitCode != 0 {
				os.Exit(appErr.ExitCode)
			}
			os.Exit(1)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *zap.Logger, pageURL, fileName string) error {
	cfg, err := config.Load()
	if err != nil {
		var appErr apperrors.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return apperrors.ErrConfiguration(err)
	}

	pageID, err := notion.ExtractPageID(pageURL)
	if err != nil {
		return apperrors.ErrURLParse(pageURL)
	}
	logger.Info("🔗 resolved target page", zap.String("page_id", pageID))

	transcript, sourcePath, err := loadTranscript(ctx, logger, cfg, fileName)
	if err != nil {
		return err
	}
	logger.Info("📄 transcript loaded",
		zap.String("path", sourcePath),
		zap.Int("chars", len(transcript)),
	)

	notionClient := notion.NewClient(&cfg.Notion)

	// Reference data and schema lookups are best effort. A failure here
	// degrades linking to plain text instead of aborting the run.
	meetingTypes := fetchMeetingTypes(ctx, logger, notionClient, cfg.Notion.DatabaseID)
	people := fetchReferences(ctx, logger, "people", func() ([]entities.ReferenceEntity, error) {
		if cfg.Notion.PeopleDatabaseID == "" {
			return nil, nil
		}
		return resolve.FetchPeople(ctx, notionClient, cfg.Notion.PeopleDatabaseID)
	})
	projects := fetchReferences(ctx, logger, "projects", func() ([]entities.ReferenceEntity, error) {
		if cfg.Notion.ProjectsDatabaseID == "" {
			return nil, nil
		}
		return resolve.FetchProjects(ctx, notionClient, cfg.Notion.ProjectsDatabaseID)
	})

	extractor := extract.NewService(pkgai.NewOpenAIClient(&cfg.OpenAI), logger)
	meeting, err := extractor.Process(ctx, transcript, resolve.Names(people), meetingTypes)
	if err != nil {
		return err
	}

	refs := append(append([]entities.ReferenceEntity{}, people...), projects...)
	resolver := resolve.NewResolver(refs)
	linker := resolve.NewLinker(refs)

	updater := page.NewUpdater(notionClient, logger)
	content, err := updater.Update(ctx, pageID, meeting, transcript, resolver, linker)
	if err != nil {
		return err
	}

	archiveTranscript(ctx, logger, cfg, sourcePath)

	fmt.Printf("✅ Meeting summary appended to %s\n", notion.PageURL(pageID))
	fmt.Printf("   %d characters added\n", len(content.Appended))
	return nil
}

// loadTranscript picks and reads the transcript. An audio candidate is sent
// through transcription when an AssemblyAI key is configured.
func loadTranscript(ctx context.Context, logger *zap.Logger, cfg *config.Config, fileName string) (text, sourcePath string, err error) {
	candidates, err := transcriptfile.List(cfg.Transcript.Dir, cfg.Assembly.Enabled())
	if err != nil {
		return "", "", apperrors.ErrTranscriptNotFound(cfg.Transcript.Dir)
	}

	policy := transcriptfile.Policy(cfg.Transcript.Select)
	if fileName != "" {
		policy = transcriptfile.PolicyExplicit
	}

	chooser := transcriptfile.StdinChooser(os.Stdin, os.Stdout)
	candidate, err := transcriptfile.Select(candidates, policy, fileName, chooser)
	if err != nil {
		if errors.Is(err, entities.ErrNoTranscriptFiles) {
			return "", "", apperrors.ErrTranscriptNotFound(cfg.Transcript.Dir)
		}
		return "", "", apperrors.ErrTranscriptRead(fileName, err)
	}

	if pkgai.IsAudioFile(candidate.Name) {
		logger.Info("🎙️ transcribing audio recording", zap.String("file", candidate.Name))
		f, err := os.Open(candidate.Path)
		if err != nil {
			return "", "", apperrors.ErrTranscriptRead(candidate.Path, err)
		}
		defer f.Close()

		text, err := pkgai.NewTranscriber(&cfg.Assembly).Transcribe(ctx, f)
		if err != nil {
			return "", "", apperrors.ErrTranscription(err)
		}
		return text, candidate.Path, nil
	}

	t, err := transcriptfile.Read(candidate.Path)
	if err != nil {
		return "", "", apperrors.ErrTranscriptRead(candidate.Path, err)
	}
	return t.Text, t.SourcePath, nil
}

// fetchMeetingTypes reads the meeting database schema for the Meeting Type
// select options. Failures fall back to the built-in type list.
func fetchMeetingTypes(ctx context.Context, logger *zap.Logger, client *notion.Client, databaseID string) []string {
	db, err := client.GetDatabase(ctx, databaseID)
	if err != nil {
		logger.Warn("⚠️ could not read meeting database schema, using default meeting types", zap.Error(err))
		return nil
	}
	return db.SelectOptions("Meeting Type")
}

// fetchReferences runs one reference database fetch, logging instead of
// failing when it cannot be served.
func fetchReferences(ctx context.Context, logger *zap.Logger, kind string, fetch func() ([]entities.ReferenceEntity, error)) []entities.ReferenceEntity {
	refs, err := fetch()
	if err != nil {
		logger.Warn("⚠️ reference fetch failed, names will not be linked",
			zap.String("kind", kind),
			zap.Error(apperrors.ErrEntityLink(kind, err)),
		)
		return nil
	}
	logger.Info("📇 reference entities loaded", zap.String("kind", kind), zap.Int("count", len(refs)))
	return refs
}

// archiveTranscript copies the processed transcript into object storage when
// configured. Archive failures only warn; the page update already succeeded.
func archiveTranscript(ctx context.Context, logger *zap.Logger, cfg *config.Config, sourcePath string) {
	if !cfg.Storage.Enabled() {
		return
	}
	archiver, err := storage.NewArchiver(ctx, &cfg.Storage)
	if err != nil {
		logger.Warn("⚠️ transcript archive unavailable", zap.Error(apperrors.ErrStorage("connect", err)))
		return
	}
	object, err := archiver.ArchiveTranscript(ctx, sourcePath)
	if err != nil {
		logger.Warn("⚠️ transcript archive failed", zap.Error(apperrors.ErrStorage("upload", err)))
		return
	}
	logger.Info("🗄️ transcript archived", zap.String("object", object))

	if names, err := archiver.ListArchived(ctx); err == nil {
		logger.Info("📦 archive status", zap.Int("total_transcripts", len(names)))
	}
}
