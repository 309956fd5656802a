package notion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jomei/notionapi"
	"go.uber.org/zap"

	"takubot/model"
)

// CommitSession は確定した下書きを卓一覧データベースに書き込む。
// スレッド内からの登録で募集スレッド側に対応ページがあれば関連付けし、
// そのページのステータスを「卓予定」に進め、代表画像を本文の先頭に埋め込む。
// 戻り値は作成したページの URL。
func (s *Service) CommitSession(ctx context.Context, draft model.Draft, chCtx model.ChannelContext, gmNames, plNames []string) (string, error) {
	if missing := s.MissingConfig(); len(missing) > 0 {
		return "", errors.New(MissingConfigMessage(missing))
	}

	props, err := buildSessionProperties(draft, chCtx, gmNames, plNames)
	if err != nil {
		return "", err
	}

	var children []notionapi.Block

	// 募集スレッドとの関連付けは見つからなくてもエラーにしない
	if chCtx.InThread() && s.HasThreadDatabase() {
		threadURL := model.CanonicalThreadURL(chCtx.GuildID, chCtx.ThreadID)
		page, err := s.FindThreadPageByURL(ctx, threadURL)
		if err != nil {
			return "", fmt.Errorf("募集スレッドの検索に失敗: %w", err)
		}
		if page != nil {
			props[propRelation] = &notionapi.RelationProperty{
				Relation: []notionapi.Relation{{ID: notionapi.PageID(page.ID.String())}},
			}

			// ステータス更新は付帯処理。失敗しても登録自体は続ける
			if err := s.MarkPlanned(ctx, notionapi.PageID(page.ID.String())); err != nil {
				zap.S().Warnw("募集スレッドのステータス更新に失敗", "page", page.ID.String(), "error", err)
			}

			if img := ExtractImageURL(page.Properties, s.cfg.ImageProperties); img != "" {
				children = append(children, externalImageBlock(img))
			}
		}
	}

	page, err := s.client.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(s.cfg.SessionDatabaseID),
		},
		Properties: props,
		Children:   children,
	})
	if err != nil {
		return "", fmt.Errorf("卓ページの作成に失敗: %w", err)
	}
	return page.URL, nil
}

// buildSessionProperties は下書きをプロパティ集合に変換する。
// 日程未定のときは日付プロパティ自体を付けない（空で書かない）。
func buildSessionProperties(draft model.Draft, chCtx model.ChannelContext, gmNames, plNames []string) (notionapi.Properties, error) {
	props := notionapi.Properties{
		propTableName: &notionapi.TitleProperty{
			Title: richText(draft.TableName),
		},
		propGM: &notionapi.MultiSelectProperty{
			MultiSelect: options(gmNames),
		},
		propPL: &notionapi.MultiSelectProperty{
			MultiSelect: options(plNames),
		},
	}

	if draft.HasDate() {
		t, err := time.Parse("2006-01-02", draft.SessionDate)
		if err != nil {
			return nil, fmt.Errorf("日程の形式が不正: %q", draft.SessionDate)
		}
		d := notionapi.Date(t)
		props[propDate] = &notionapi.DateProperty{
			Date: &notionapi.DateObject{Start: &d},
		}
	}

	if chCtx.ChannelName != "" {
		props[propChannel] = &notionapi.RichTextProperty{
			RichText: richText(chCtx.ChannelName),
		}
	}
	if chCtx.InThread() {
		props[propThread] = &notionapi.RichTextProperty{
			RichText: richText(chCtx.ThreadName),
		}
	}

	return props, nil
}

func richText(content string) []notionapi.RichText {
	return []notionapi.RichText{
		{Text: &notionapi.Text{Content: content}},
	}
}

func richTextLink(content, url string) []notionapi.RichText {
	return []notionapi.RichText{
		{Text: &notionapi.Text{Content: content, Link: &notionapi.Link{Url: url}}},
	}
}

func options(names []string) []notionapi.Option {
	opts := make([]notionapi.Option, 0, len(names))
	for _, name := range names {
		opts = append(opts, notionapi.Option{Name: name})
	}
	return opts
}

func externalImageBlock(url string) notionapi.Block {
	return &notionapi.ImageBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: notionapi.ObjectTypeBlock,
			Type:   notionapi.BlockTypeImage,
		},
		Image: notionapi.Image{
			Type:     notionapi.FileTypeExternal,
			External: &notionapi.FileObject{URL: url},
		},
	}
}
