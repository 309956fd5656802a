package notion

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"

	"takubot/model"
)

// FindThreadPageByURL は URL プロパティに正規 URL を含むページを1件探す。
// 見つからなければ (nil, nil)。
func (s *Service) FindThreadPageByURL(ctx context.Context, threadURL string) (*notionapi.Page, error) {
	resp, err := s.client.Database.Query(ctx, notionapi.DatabaseID(s.cfg.ThreadDatabaseID), &notionapi.DatabaseQueryRequest{
		Filter: notionapi.PropertyFilter{
			Property: propThreadURL,
			RichText: &notionapi.TextFilterCondition{Contains: threadURL},
		},
		PageSize: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}
	return &resp.Results[0], nil
}

// HasThreadPage は同じ正規 URL のページが既にあるかどうか。
// 存在確認→作成の2段構えなので、同時実行では重複しうる（許容している）
func (s *Service) HasThreadPage(ctx context.Context, threadURL string) (bool, error) {
	page, err := s.FindThreadPageByURL(ctx, threadURL)
	if err != nil {
		return false, err
	}
	return page != nil, nil
}

// CreateThreadPage は募集スレッド1件分のページを作成して URL を返す
func (s *Service) CreateThreadPage(ctx context.Context, rec model.ThreadRecord) (string, error) {
	props := buildThreadProperties(rec, s.imagePropertyName())

	page, err := s.client.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(s.cfg.ThreadDatabaseID),
		},
		Properties: props,
		Children:   buildThreadBlocks(rec),
	})
	if err != nil {
		return "", fmt.Errorf("募集スレッドページの作成に失敗: %w", err)
	}
	return page.URL, nil
}

// MarkPlanned は募集スレッドページのステータスを「卓予定」に進める
func (s *Service) MarkPlanned(ctx context.Context, pageID notionapi.PageID) error {
	_, err := s.client.Page.Update(ctx, pageID, &notionapi.PageUpdateRequest{
		Properties: notionapi.Properties{
			propStatus: &notionapi.StatusProperty{
				Status: notionapi.Option{Name: StatusPlanned},
			},
		},
	})
	return err
}

// imagePropertyName は書き込みに使うファイルプロパティ名（候補の先頭）
func (s *Service) imagePropertyName() string {
	if len(s.cfg.ImageProperties) > 0 {
		return s.cfg.ImageProperties[0]
	}
	return "画像"
}

func buildThreadProperties(rec model.ThreadRecord, imageProp string) notionapi.Properties {
	createdAt := notionapi.Date(rec.CreatedAt)
	props := notionapi.Properties{
		propThreadTitle: &notionapi.TitleProperty{
			Title: richText(rec.Title),
		},
		propThreadURL: &notionapi.RichTextProperty{
			RichText: richText(rec.URL),
		},
		propCreatedAt: &notionapi.DateProperty{
			Date: &notionapi.DateObject{Start: &createdAt},
		},
		propStatus: &notionapi.StatusProperty{
			Status: notionapi.Option{Name: StatusUntouched},
		},
	}

	if rec.MarketplaceURL != "" {
		props[propItemURL] = &notionapi.URLProperty{URL: rec.MarketplaceURL}
	}

	switch {
	case rec.ImageURL != "":
		props[imageProp] = &notionapi.FilesProperty{
			Files: []notionapi.File{{
				Name:     rec.Title,
				Type:     notionapi.FileTypeExternal,
				External: &notionapi.FileObject{URL: rec.ImageURL},
			}},
		}
	case rec.FileURL != "":
		props[imageProp] = &notionapi.FilesProperty{
			Files: []notionapi.File{{
				Name:     rec.FileName,
				Type:     notionapi.FileTypeExternal,
				External: &notionapi.FileObject{URL: rec.FileURL},
			}},
		}
	}

	return props
}

func buildThreadBlocks(rec model.ThreadRecord) []notionapi.Block {
	blocks := []notionapi.Block{
		&notionapi.Heading2Block{
			BasicBlock: notionapi.BasicBlock{
				Object: notionapi.ObjectTypeBlock,
				Type:   notionapi.BlockTypeHeading2,
			},
			Heading2: notionapi.Heading{RichText: richText(rec.Title)},
		},
		&notionapi.ParagraphBlock{
			BasicBlock: notionapi.BasicBlock{
				Object: notionapi.ObjectTypeBlock,
				Type:   notionapi.BlockTypeParagraph,
			},
			Paragraph: notionapi.Paragraph{RichText: richTextLink(rec.URL, rec.URL)},
		},
	}

	switch {
	case rec.ImageURL != "":
		blocks = append(blocks, externalImageBlock(rec.ImageURL))
	case rec.FileURL != "":
		blocks = append(blocks, &notionapi.ParagraphBlock{
			BasicBlock: notionapi.BasicBlock{
				Object: notionapi.ObjectTypeBlock,
				Type:   notionapi.BlockTypeParagraph,
			},
			Paragraph: notionapi.Paragraph{RichText: richTextLink("添付ファイル: "+rec.FileName, rec.FileURL)},
		})
	}

	if rec.Body != "" {
		blocks = append(blocks, &notionapi.QuoteBlock{
			BasicBlock: notionapi.BasicBlock{
				Object: notionapi.ObjectTypeBlock,
				Type:   notionapi.BlockTypeQuote,
			},
			Quote: notionapi.Quote{RichText: richText(rec.Body)},
		})
	}

	return blocks
}
