package page

import (
	"context"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/pkg/notion"
)

// NotionAPI is the slice of the Notion client the updater needs.
type NotionAPI interface {
	GetPage(ctx context.Context, pageID string) (*notion.Page, error)
	UpdatePageRichText(ctx context.Context, pageID, property string, rt []notion.RichText) error
	AppendBlocks(ctx context.Context, pageID string, blocks []notion.Block) error
}

// Updater appends a processed meeting section to a Notion page. Existing page
// content is read once and written back unchanged with the new section after
// it; nothing is ever overwritten or truncated.
type Updater struct {
	api    NotionAPI
	logger *zap.Logger
}

// NewUpdater constructs a page updater.
func NewUpdater(api NotionAPI, logger *zap.Logger) *Updater {
	return &Updater{api: api, logger: logger}
}

// Update composes the meeting section and writes it to the page in two steps:
// the target rich text property gets the combined body, then the rendered
// content blocks are appended to the page body. A combined body over the size
// limit fails before either write happens.
func (u *Updater) Update(ctx context.Context, pageID string, meeting *entities.ExtractedMeeting, transcript string, resolver NameResolver, linker TextLinker) (entities.PageContent, error) {
	remote, err := u.api.GetPage(ctx, pageID)
	if err != nil {
		return entities.PageContent{}, apperrors.ErrNotionAPI("get page", err)
	}

	property, current, ok := remote.FirstRichTextProperty()
	if !ok {
		return entities.PageContent{}, apperrors.ErrNotionAPI("get page", entities.ErrNoRichTextProperty)
	}
	existing := notion.PlainText(current.RichText)

	section := ComposeSection(meeting, transcript)
	content := Append(existing, section)

	spans, err := Chunks(content.Combined())
	if err != nil {
		return entities.PageContent{}, err
	}

	if u.logger != nil {
		u.logger.Info("📝 appending meeting section to page",
			zap.String("page_id", pageID),
			zap.String("property", property),
			zap.Int("existing_chars", len(existing)),
			zap.Int("appended_chars", len(content.Appended)),
			zap.Int("spans", len(spans)),
		)
	}

	if err := u.api.UpdatePageRichText(ctx, pageID, property, spans); err != nil {
		return entities.PageContent{}, apperrors.ErrNotionAPI("update page property", err)
	}

	blocks := BuildBlocks(meeting, transcript, resolver, linker)
	if err := u.api.AppendBlocks(ctx, pageID, blocks); err != nil {
		return entities.PageContent{}, apperrors.ErrNotionAPI("append blocks", err)
	}

	if u.logger != nil {
		u.logger.Info("✅ page updated",
			zap.String("page_id", pageID),
			zap.Int("blocks", len(blocks)),
		)
	}
	return content, nil
}
